package engine

import "time"

// Day truncates t to midnight UTC so day arithmetic is stable regardless of
// the wall-clock time or zone the caller passed in.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b. Negative when b
// precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}

// NextDay and PrevDay step one calendar day.
func NextDay(t time.Time) time.Time { return Day(t).AddDate(0, 0, 1) }
func PrevDay(t time.Time) time.Time { return Day(t).AddDate(0, 0, -1) }
