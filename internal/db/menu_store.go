// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

type MenuStore interface {
	CreateMenuItem(context.Context, *model.MenuItem) error
	ListMenuItems(context.Context) ([]*model.MenuItem, error)
}
