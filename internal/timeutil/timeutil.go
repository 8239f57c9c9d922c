// ABOUTME: Time utility functions for calendar-date comparisons
// ABOUTME: Provides the today/yesterday helpers used to split records by publish date

package timeutil

import "time"

// StartOfToday returns midnight (00:00:00) of the current day in local time
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// StartOfYesterday returns midnight (00:00:00) of yesterday in local time
func StartOfYesterday() time.Time {
	return StartOfToday().AddDate(0, 0, -1)
}

// SameDay reports whether a and b fall on the same calendar date.
// Each value is read in its own location; no zone conversion happens.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
