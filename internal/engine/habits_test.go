package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/models"
)

func entryFor(date string, habits models.Habits) models.DailyEntry {
	return models.DailyEntry{Date: date, Habits: habits}
}

func TestHabitStats_Empty(t *testing.T) {
	stats := engine.HabitStats(engine.DefaultTiers(), nil, engine.HabitReading, day("2026-03-10"))
	assert.Equal(t, models.HabitStats{}, stats)
}

func TestHabitStats_MissingDayBreaksStreak(t *testing.T) {
	tiers := engine.DefaultTiers()
	today := day("2026-03-10")
	entries := []models.DailyEntry{
		entryFor("2026-03-07", models.Habits{ReadingPages: 5}),
		// no entry for the 8th
		entryFor("2026-03-09", models.Habits{ReadingPages: 10}),
		entryFor("2026-03-10", models.Habits{ReadingPages: 1}),
	}

	stats := engine.HabitStats(tiers, entries, engine.HabitReading, today)
	assert.Equal(t, 2, stats.Current, "unlogged days do not count for habit streaks")
	assert.Equal(t, 2, stats.Longest)
	assert.Equal(t, 20+30+10, stats.TotalXP)
}

func TestHabitStats_ZeroValueBreaks(t *testing.T) {
	tiers := engine.DefaultTiers()
	today := day("2026-03-10")
	entries := []models.DailyEntry{
		entryFor("2026-03-09", models.Habits{MeditationMinutes: 10}),
		entryFor("2026-03-10", models.Habits{MeditationMinutes: 0}),
	}

	stats := engine.HabitStats(tiers, entries, engine.HabitMeditation, today)
	assert.Equal(t, 0, stats.Current)
	assert.Equal(t, 1, stats.Longest)
	assert.Equal(t, 30, stats.TotalXP)
}

func TestHabitStats_BooleanJournaling(t *testing.T) {
	tiers := engine.DefaultTiers()
	today := day("2026-03-10")
	entries := []models.DailyEntry{
		entryFor("2026-03-09", models.Habits{Journaling: true}),
		entryFor("2026-03-10", models.Habits{Journaling: true}),
	}

	stats := engine.HabitStats(tiers, entries, engine.HabitJournaling, today)
	assert.Equal(t, 2, stats.Current)
	assert.Equal(t, 60, stats.TotalXP)
}
