package stats

import (
	"math"

	"github.com/mleone/ironwill/internal/models"
)

// WellnessSummary averages the recorded sleep and mood values and reports
// how often mobility work got done. Days without a recorded value are left
// out of the averages rather than dragging them to zero.
type WellnessSummary struct {
	AvgSleepHours   float64 `json:"avg_sleep_hours"`
	AvgSleepQuality float64 `json:"avg_sleep_quality"`
	AvgMood         float64 `json:"avg_mood"`
	MobilityRate    int     `json:"mobility_rate"` // percent of entry days
}

// ComputeWellnessSummary derives the summary from the full entry history.
func ComputeWellnessSummary(entries []models.DailyEntry) WellnessSummary {
	var s WellnessSummary
	if len(entries) == 0 {
		return s
	}

	sleepDays, moodDays, mobilityDays := 0, 0, 0
	var hours, quality, mood float64
	for _, e := range entries {
		if e.SleepHours > 0 {
			hours += e.SleepHours
			quality += float64(e.SleepQuality)
			sleepDays++
		}
		if e.Mood > 0 {
			mood += float64(e.Mood)
			moodDays++
		}
		if e.Habits.MobilityMinutes > 0 {
			mobilityDays++
		}
	}

	if sleepDays > 0 {
		s.AvgSleepHours = round1(hours / float64(sleepDays))
		s.AvgSleepQuality = round1(quality / float64(sleepDays))
	}
	if moodDays > 0 {
		s.AvgMood = round1(mood / float64(moodDays))
	}
	s.MobilityRate = int(math.Round(float64(mobilityDays) / float64(len(entries)) * 100))
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
