// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package db

import "context"

type AnalyticsStore interface {
	RecordVisit(ctx context.Context, page, date string) error
	VisitCounts(context.Context) (map[string]map[string]int, error)
}
