// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package content

import "github.com/jaythomasv29/tablego-sub001/internal/model"

// DefaultMenu is the seed list used when no items are supplied.
// Seeding skips names that already exist, so repeated runs are safe.
func DefaultMenu() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Spring Rolls", Description: "Crispy rolls with glass noodles and vegetables", Category: model.MenuCategoryAppetizer, Price: 7.95},
		{Name: "Chicken Satay", Description: "Grilled skewers with peanut sauce and cucumber salad", Category: model.MenuCategoryAppetizer, Price: 9.95},
		{Name: "Fresh Rolls", Description: "Rice paper rolls with shrimp, mint and vermicelli", Category: model.MenuCategoryAppetizer, Price: 8.5},
		{Name: "Tom Yum", Description: "Hot and sour soup with lemongrass, galangal and lime leaf", Category: model.MenuCategorySoup, Price: 6.95},
		{Name: "Tom Kha", Description: "Coconut milk soup with galangal and mushroom", Category: model.MenuCategorySoup, Price: 6.95},
		{Name: "Green Curry", Description: "Bamboo shoots, bell pepper and basil in green curry", Category: model.MenuCategoryEntree, Price: 14.95},
		{Name: "Panang Curry", Description: "Thick red curry with kaffir lime and bell pepper", Category: model.MenuCategoryEntree, Price: 14.95},
		{Name: "Cashew Chicken", Description: "Stir-fried with roasted cashews and chili jam", Category: model.MenuCategoryEntree, Price: 13.95},
		{Name: "Pad Thai", Description: "Rice noodles with egg, tofu, bean sprouts and tamarind", Category: model.MenuCategoryNoodle, Price: 13.5},
		{Name: "Pad See Ew", Description: "Flat noodles with egg, broccoli and sweet soy", Category: model.MenuCategoryNoodle, Price: 13.5},
		{Name: "Drunken Noodles", Description: "Spicy flat noodles with basil and chili", Category: model.MenuCategoryNoodle, Price: 13.95},
		{Name: "Pineapple Fried Rice", Description: "With cashews, raisins and curry powder", Category: model.MenuCategoryRice, Price: 13.95},
		{Name: "Basil Fried Rice", Description: "With chili, bell pepper and Thai basil", Category: model.MenuCategoryRice, Price: 12.95},
		{Name: "Mango Sticky Rice", Description: "Sweet coconut rice with fresh mango", Category: model.MenuCategoryDessert, Price: 8.5},
		{Name: "Fried Banana", Description: "With honey and sesame", Category: model.MenuCategoryDessert, Price: 6.95},
		{Name: "Thai Iced Tea", Description: "Brewed black tea with condensed milk", Category: model.MenuCategoryBeverage, Price: 4.5},
		{Name: "Thai Iced Coffee", Description: "Sweetened iced coffee with cream", Category: model.MenuCategoryBeverage, Price: 4.5},
	}
}
