// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

// Banner is the singleton banner document, overwritten in place.
type Banner struct {
	Text    string `json:"text" form:"text"`
	Link    string `json:"link,omitempty" form:"link"`
	Enabled bool   `json:"enabled" form:"enabled"`
}

// Settings is the singleton general settings document.
type Settings struct {
	Timezone string `json:"timezone" form:"timezone"`
}
