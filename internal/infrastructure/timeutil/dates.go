package timeutil

import "time"

// FormatDate formats a time as YYYY-MM-DD, the wire format every
// supplier feed expects.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
