package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/models"
)

func TestDefaultTiers(t *testing.T) {
	tiers := engine.DefaultTiers()
	assert.Equal(t, 120, tiers.MaxDailyXP)
	assert.Len(t, tiers.Habits, 4)
	assert.Equal(t, 30, tiers.MaxHabitXP(engine.HabitMeditation))
	assert.Equal(t, 30, tiers.MaxHabitXP(engine.HabitReading))
}

func TestHabitXP_TierLookup(t *testing.T) {
	tiers := engine.DefaultTiers()

	cases := []struct {
		habit string
		value int
		want  int
	}{
		{engine.HabitMeditation, 0, 0},
		{engine.HabitMeditation, 4, 0},
		{engine.HabitMeditation, 5, 15},
		{engine.HabitMeditation, 9, 15},
		{engine.HabitMeditation, 10, 30},
		{engine.HabitMeditation, 90, 30},
		{engine.HabitReading, 1, 10},
		{engine.HabitReading, 5, 20},
		{engine.HabitReading, 10, 30},
		{engine.HabitJournaling, 1, 30},
		{engine.HabitMobility, 5, 15},
		{engine.HabitMobility, -3, 0},
		{"sleep", 8, 0}, // untracked habit never scores
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tiers.HabitXP(tc.habit, tc.value),
			"habit=%s value=%d", tc.habit, tc.value)
	}
}

func TestHabitXP_MonotonicInValue(t *testing.T) {
	tiers := engine.DefaultTiers()
	for habit := range tiers.Habits {
		prev := 0
		for v := 0; v <= 60; v++ {
			xp := tiers.HabitXP(habit, v)
			assert.GreaterOrEqual(t, xp, prev, "habit=%s value=%d", habit, v)
			prev = xp
		}
	}
}

func TestDailyXP(t *testing.T) {
	tiers := engine.DefaultTiers()

	xp := tiers.DailyXP(models.Habits{
		MeditationMinutes: 10,
		ReadingPages:      1,
		Journaling:        true,
		MobilityMinutes:   0,
	})
	assert.Equal(t, 70, xp)

	perfect := tiers.DailyXP(models.Habits{
		MeditationMinutes: 10,
		ReadingPages:      10,
		Journaling:        true,
		MobilityMinutes:   10,
	})
	assert.Equal(t, tiers.MaxDailyXP, perfect)

	assert.Equal(t, 0, tiers.DailyXP(models.Habits{}))
}

func TestLoadTiers(t *testing.T) {
	doc := `
max_daily_xp: 50
habits:
  pushups:
    - { min: 20, xp: 25 }
    - { min: 10, xp: 10 }
`
	tiers, err := engine.LoadTiers(strings.NewReader(doc))
	require.NoError(t, err)

	// Out-of-order tiers are normalized on load.
	assert.Equal(t, 10, tiers.HabitXP("pushups", 15))
	assert.Equal(t, 25, tiers.HabitXP("pushups", 20))
}

func TestLoadTiers_RejectsMissingMax(t *testing.T) {
	_, err := engine.LoadTiers(strings.NewReader("habits: {}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_daily_xp")
}
