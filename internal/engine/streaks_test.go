package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mleone/ironwill/internal/engine"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestStreaks_Empty(t *testing.T) {
	result := engine.Streaks(nil, day("2026-03-10"))
	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 0, result.Longest)
}

func TestStreaks_BreakInMiddle(t *testing.T) {
	today := day("2026-03-10")
	samples := []engine.FlagDay{
		{Date: day("2026-03-06"), Value: true},
		{Date: day("2026-03-07"), Value: true},
		{Date: day("2026-03-08"), Value: false},
		{Date: day("2026-03-09"), Value: true},
		{Date: day("2026-03-10"), Value: true},
	}

	result := engine.Streaks(samples, today)
	assert.Equal(t, 2, result.Current, "streak restarts the day after the break")
	assert.Equal(t, 2, result.Longest)
}

func TestStreaks_AbsenceIsClean(t *testing.T) {
	today := day("2026-03-10")

	// Only two samples, five days apart. The missing days in between count
	// as clean, so they extend the streak just like explicit trues.
	sparse := []engine.FlagDay{
		{Date: day("2026-03-04"), Value: true},
		{Date: day("2026-03-09"), Value: true},
	}
	explicit := []engine.FlagDay{
		{Date: day("2026-03-04"), Value: true},
		{Date: day("2026-03-05"), Value: true},
		{Date: day("2026-03-06"), Value: true},
		{Date: day("2026-03-07"), Value: true},
		{Date: day("2026-03-08"), Value: true},
		{Date: day("2026-03-09"), Value: true},
	}

	assert.Equal(t, engine.Streaks(explicit, today), engine.Streaks(sparse, today))
	assert.Equal(t, 7, engine.Streaks(sparse, today).Current, "six sampled days plus today")
}

func TestStreaks_SingleBreakResetsCurrentKeepsLongest(t *testing.T) {
	today := day("2026-03-20")
	samples := []engine.FlagDay{
		{Date: day("2026-03-01"), Value: true},
	}
	// Clean run March 1-17, explicit break on the 18th.
	samples = append(samples, engine.FlagDay{Date: day("2026-03-18"), Value: false})

	result := engine.Streaks(samples, today)
	assert.Equal(t, 2, result.Current, "two days since the break")
	assert.Equal(t, 17, result.Longest, "pre-break run survives as longest")
}

func TestStreaks_UnbrokenReachesEarliestDate(t *testing.T) {
	today := day("2026-03-10")
	samples := []engine.FlagDay{
		{Date: day("2026-03-01"), Value: true},
	}

	result := engine.Streaks(samples, today)
	assert.Equal(t, 10, result.Current)
	assert.Equal(t, 10, result.Longest)
}

func TestStreaks_BrokenToday(t *testing.T) {
	today := day("2026-03-10")
	samples := []engine.FlagDay{
		{Date: day("2026-03-08"), Value: true},
		{Date: day("2026-03-10"), Value: false},
	}

	result := engine.Streaks(samples, today)
	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 2, result.Longest)
}

func TestStreaks_LongestNeverBelowCurrent(t *testing.T) {
	today := day("2026-03-31")
	cases := [][]engine.FlagDay{
		{{Date: day("2026-03-01"), Value: true}},
		{{Date: day("2026-03-01"), Value: false}},
		{
			{Date: day("2026-03-05"), Value: false},
			{Date: day("2026-03-15"), Value: false},
			{Date: day("2026-03-30"), Value: true},
		},
		{
			{Date: day("2026-03-31"), Value: false},
			{Date: day("2026-03-01"), Value: true},
		},
	}

	for _, samples := range cases {
		result := engine.Streaks(samples, today)
		assert.GreaterOrEqual(t, result.Longest, result.Current)
	}
}
