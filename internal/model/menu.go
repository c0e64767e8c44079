// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

type MenuCategory string

const (
	MenuCategoryAppetizer MenuCategory = "appetizer"
	MenuCategorySoup      MenuCategory = "soup"
	MenuCategoryEntree    MenuCategory = "entree"
	MenuCategoryNoodle    MenuCategory = "noodle"
	MenuCategoryRice      MenuCategory = "rice"
	MenuCategoryDessert   MenuCategory = "dessert"
	MenuCategoryBeverage  MenuCategory = "beverage"
)

// MenuCategoryOrder fixes the display order of categories.
var MenuCategoryOrder = []MenuCategory{
	MenuCategoryAppetizer,
	MenuCategorySoup,
	MenuCategoryEntree,
	MenuCategoryNoodle,
	MenuCategoryRice,
	MenuCategoryDessert,
	MenuCategoryBeverage,
}

type MenuItem struct {
	Name        string       `json:"name" form:"name"`
	Description string       `json:"description,omitempty" form:"description"`
	Category    MenuCategory `json:"category" form:"category"`
	Price       float64      `json:"price,omitempty" form:"price"`
}
