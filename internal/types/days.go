package types

import "time"

// DaysBetween returns the number of whole days from one instant to
// another, comparing dates only. Ignoring the time of day gives a single
// canonical "overdue" definition that cannot flip around midnight.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(t.Sub(f) / (24 * time.Hour))
}
