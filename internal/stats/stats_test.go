package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/stats"
)

func trainingEntry(date, kind string, distance float64, unit string) models.DailyEntry {
	return models.DailyEntry{
		Date: date,
		Training: models.Training{
			Type:         kind,
			Distance:     distance,
			DistanceUnit: unit,
		},
	}
}

func TestDistanceMiles(t *testing.T) {
	assert.InDelta(t, 1.0, stats.DistanceMiles(models.Training{Distance: 1609.34, DistanceUnit: "meters"}), 1e-6)
	assert.InDelta(t, 5.0, stats.DistanceMiles(models.Training{Distance: 5, DistanceUnit: "miles"}), 1e-9)
	assert.InDelta(t, 5.0, stats.DistanceMiles(models.Training{Distance: 5}), 1e-9, "legacy entries default to miles")
	assert.Zero(t, stats.DistanceMiles(models.Training{}))
}

func TestComputeTrainingTotals(t *testing.T) {
	entries := []models.DailyEntry{
		trainingEntry("2026-01-01", stats.TrainingSwim, 1609.34, "meters"),
		trainingEntry("2026-01-02", stats.TrainingBike, 20, "miles"),
		trainingEntry("2026-01-03", stats.TrainingRun, 6.2, "miles"),
		trainingEntry("2026-01-04", stats.TrainingStrength, 0, ""),
		trainingEntry("2026-01-05", stats.TrainingRest, 0, ""),
	}

	totals := stats.ComputeTrainingTotals(entries)
	assert.InDelta(t, 1.0, totals.SwimMiles, 1e-6)
	assert.InDelta(t, 20, totals.BikeMiles, 1e-9)
	assert.InDelta(t, 6.2, totals.RunMiles, 1e-9)
	assert.Equal(t, 1, totals.StrengthDays)
	assert.Equal(t, 1, totals.RestDays)
}

func TestComputeIronmanProgress(t *testing.T) {
	// Two full Ironmans of swimming, one-plus of biking and running: the
	// limiting discipline caps completed Ironmans at one.
	entries := []models.DailyEntry{
		trainingEntry("2026-01-01", stats.TrainingSwim, 4.8, "miles"),
		trainingEntry("2026-01-02", stats.TrainingBike, 150, "miles"),
		trainingEntry("2026-01-03", stats.TrainingRun, 30, "miles"),
	}

	p := stats.ComputeIronmanProgress(entries)
	assert.Equal(t, 1, p.FullIronmans)
	assert.InDelta(t, 2.4, p.Swim.Current, 1e-9, "leftover after one completed Ironman")
	assert.InDelta(t, 38, p.Bike.Current, 1e-9)
	assert.InDelta(t, 100, p.Swim.Percentage, 1e-6)
}

func TestComputeWeeklyVolume(t *testing.T) {
	// 2026-03-11 is a Wednesday; its week runs Monday 03-09 through Sunday 03-15.
	wednesday := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)
	entries := []models.DailyEntry{
		trainingEntry("2026-03-08", stats.TrainingRun, 10, "miles"), // previous week
		trainingEntry("2026-03-09", stats.TrainingRun, 5, "miles"),
		trainingEntry("2026-03-11", stats.TrainingBike, 25, "miles"),
		trainingEntry("2026-03-15", stats.TrainingStrength, 0, ""),
		trainingEntry("2026-03-16", stats.TrainingSwim, 1, "miles"), // next week
	}

	vol := stats.ComputeWeeklyVolume(entries, wednesday)
	assert.Equal(t, "2026-03-09", vol.WeekStart)
	assert.Equal(t, "2026-03-15", vol.WeekEnd)
	assert.InDelta(t, 5, vol.RunMiles, 1e-9)
	assert.InDelta(t, 25, vol.BikeMiles, 1e-9)
	assert.InDelta(t, 30, vol.TotalMiles, 1e-9)
	assert.Equal(t, 1, vol.StrengthDays)
	assert.Zero(t, vol.SwimMiles)
}

func TestComputeCumulativePnL(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: "2026-01-03", TradingPnL: -50},
		{Date: "2026-01-01", TradingPnL: 100},
		{Date: "2026-01-02", TradingPnL: 25},
	}

	points := stats.ComputeCumulativePnL(entries)
	require.Len(t, points, 3)
	assert.Equal(t, "2026-01-01", points[0].Date)
	assert.InDelta(t, 100, points[0].Cumulative, 1e-9)
	assert.InDelta(t, 125, points[1].Cumulative, 1e-9)
	assert.InDelta(t, 75, points[2].Cumulative, 1e-9)
}

func TestComputeMonthlyPnL(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: "2026-01-05", TradingPnL: 100},
		{Date: "2026-01-06", TradingPnL: -40},
		{Date: "2026-01-07", TradingPnL: 0},
		{Date: "2026-02-01", TradingPnL: 10},
	}

	months := stats.ComputeMonthlyPnL(entries)
	require.Len(t, months, 2)

	jan := months[0]
	assert.Equal(t, "2026-01", jan.Month)
	assert.InDelta(t, 60, jan.Total, 1e-9)
	assert.Equal(t, 3, jan.Days)
	assert.Equal(t, 1, jan.PositiveDays)
	assert.Equal(t, 1, jan.NegativeDays)

	assert.Equal(t, "2026-02", months[1].Month)
}

func TestComputeWellnessSummary(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: "2026-01-01", SleepHours: 8, SleepQuality: 4, Mood: 7, Habits: models.Habits{MobilityMinutes: 10}},
		{Date: "2026-01-02", SleepHours: 6, SleepQuality: 3, Mood: 5},
		{Date: "2026-01-03"}, // nothing recorded, excluded from averages
		{Date: "2026-01-04", Mood: 6, Habits: models.Habits{MobilityMinutes: 5}},
	}

	s := stats.ComputeWellnessSummary(entries)
	assert.InDelta(t, 7.0, s.AvgSleepHours, 1e-9)
	assert.InDelta(t, 3.5, s.AvgSleepQuality, 1e-9)
	assert.InDelta(t, 6.0, s.AvgMood, 1e-9)
	assert.Equal(t, 50, s.MobilityRate)
}

func TestComputeWellnessSummary_Empty(t *testing.T) {
	assert.Equal(t, stats.WellnessSummary{}, stats.ComputeWellnessSummary(nil))
}
