// Package engine holds the pure scoring core: streak computation, habit XP
// tiers, the compound multiplier, and anchored streaks. Every function takes
// its reference day as a parameter; nothing in this package reads the clock.
package engine

import (
	"time"

	"github.com/mleone/ironwill/internal/models"
)

// FlagDay is one recorded day of a boolean habit flag. Days with no sample
// at all are treated as clean; only an explicit false breaks a streak.
type FlagDay struct {
	Date  time.Time
	Value bool
}

// Streaks computes the current and longest consecutive-day streaks for a
// boolean flag under the absence-means-clean policy.
//
// The current streak walks backward day-by-day from today (inclusive) and
// stops at the first explicitly-false day. The longest streak replays every
// day from the earliest sample to today, resetting on explicit falses.
func Streaks(samples []FlagDay, today time.Time) models.StreakResult {
	if len(samples) == 0 {
		return models.StreakResult{}
	}

	today = Day(today)
	earliest := Day(samples[0].Date)
	broken := make(map[time.Time]bool, len(samples))
	for _, s := range samples {
		d := Day(s.Date)
		if d.Before(earliest) {
			earliest = d
		}
		// Last write wins when a date somehow repeats.
		broken[d] = !s.Value
	}

	current := 0
	for d := today; !d.Before(earliest); d = PrevDay(d) {
		if broken[d] {
			break
		}
		current++
	}

	longest, run := 0, 0
	for d := earliest; !d.After(today); d = NextDay(d) {
		if broken[d] {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}

	return models.StreakResult{Current: current, Longest: longest}
}
