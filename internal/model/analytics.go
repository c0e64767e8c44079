// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package model

// Analytics maps page name to per-day visit counters, keyed by
// calendar date in YYYY-MM-DD form.
type Analytics map[string]map[string]int

func (a Analytics) Increment(page, date string) {
	if a[page] == nil {
		a[page] = make(map[string]int)
	}
	a[page][date]++
}
