package engine

import "time"

// AnchoredStreak measures a streak as elapsed days since a mutable anchor
// date rather than by replaying history: day count from anchor to today,
// inclusive of both ends. If today's flag is off the streak is 0 regardless
// of the anchor, and an anchor in the future (a broken streak waiting to
// restart) also yields 0.
func AnchoredStreak(anchor, today time.Time, todayFlag bool) int {
	if !todayFlag {
		return 0
	}
	days := DaysBetween(anchor, today) + 1
	if days < 0 {
		return 0
	}
	return days
}

// BreakAnchor returns the anchor for a broken streak: tomorrow, so the next
// day becomes day 1 only once it is actually flagged.
func BreakAnchor(today time.Time) time.Time {
	return NextDay(today)
}

// RestoreAnchor returns the anchor for a restored streak: today, clamped to
// the configured minimum start date when today precedes it.
func RestoreAnchor(today, minStart time.Time) time.Time {
	today = Day(today)
	if !minStart.IsZero() && today.Before(Day(minStart)) {
		return Day(minStart)
	}
	return today
}
