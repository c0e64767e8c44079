// Copyright (C) 2025 the tablego maintainers
// See root-dir/LICENSE for more information

package notify

import (
	"regexp"
	"time"
)

var bareDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatLongDate renders a reservation date for email display.
//
// Bare YYYY-MM-DD strings are pinned to UTC noon and rendered in UTC so
// the calendar day never shifts with the host's timezone offset. Any
// other representation is parsed and rendered in the ambient timezone.
func FormatLongDate(date string) string {
	if bareDate.MatchString(date) {
		t, err := time.Parse("2006-01-02", date)
		if err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
			return t.Format("Monday, January 2, 2006")
		}
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Local().Format("Monday, January 2, 2006")
}

// FormatClock renders a wall-clock HH:MM string as 12-hour time.
// Unparseable input is echoed back unchanged.
func FormatClock(clock string) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Format("3:04 PM")
}
