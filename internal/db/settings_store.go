// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import (
	"context"

	"github.com/jaythomasv29/tablego-sub001/internal/model"
)

// SettingsStore holds the banner and general settings singletons.
type SettingsStore interface {
	GetBanner(context.Context) (*model.Banner, error)
	SetBanner(context.Context, *model.Banner) error
	GetSettings(context.Context) (*model.Settings, error)
	SetSettings(context.Context, *model.Settings) error
}
