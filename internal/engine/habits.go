package engine

import (
	"time"

	"github.com/mleone/ironwill/internal/models"
)

// HabitStats replays the full entry history for one habit: streak of
// consecutive days with activity plus the lifetime XP total.
//
// Unlike the sobriety flag, a habit day only counts when it was actually
// logged with a positive value, so here a missing day does break the streak.
func HabitStats(tiers TierTable, entries []models.DailyEntry, habit string, today time.Time) models.HabitStats {
	if len(entries) == 0 {
		return models.HabitStats{}
	}

	today = Day(today)
	values := make(map[time.Time]int, len(entries))
	earliest := today
	for _, e := range entries {
		d, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		d = Day(d)
		if d.Before(earliest) {
			earliest = d
		}
		values[d] = HabitValue(e.Habits, habit)
	}

	stats := models.HabitStats{}
	for d := today; !d.Before(earliest); d = PrevDay(d) {
		if values[d] <= 0 {
			break
		}
		stats.Current++
	}

	run := 0
	for d := earliest; !d.After(today); d = NextDay(d) {
		v := values[d]
		stats.TotalXP += tiers.HabitXP(habit, v)
		if v > 0 {
			run++
			if run > stats.Longest {
				stats.Longest = run
			}
		} else {
			run = 0
		}
	}

	return stats
}
