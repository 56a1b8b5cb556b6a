package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/models"
)

func TestDailyMultiplier(t *testing.T) {
	assert.InDelta(t, 0.99, engine.DailyMultiplier(0, 120), 1e-9)
	assert.InDelta(t, 1.00, engine.DailyMultiplier(60, 120), 1e-9)
	assert.InDelta(t, 1.01, engine.DailyMultiplier(120, 120), 1e-9)

	// Out-of-range XP clamps instead of escaping the [0.99, 1.01] band.
	assert.InDelta(t, 0.99, engine.DailyMultiplier(-10, 120), 1e-9)
	assert.InDelta(t, 1.01, engine.DailyMultiplier(500, 120), 1e-9)
}

func TestAdvance_SeedsAtOne(t *testing.T) {
	point := engine.Advance(day("2026-01-05"), 0, 120, nil)

	assert.Equal(t, "2026-01-05", point.Date)
	assert.Equal(t, 0, point.DailyXP)
	assert.InDelta(t, 0.99, point.Multiplier, 1e-9)
	assert.InDelta(t, 0.99, point.CompoundScore, 1e-9, "1.0 seed times the zero-day multiplier")
}

func TestAdvance_CompoundsOnPrior(t *testing.T) {
	prior := models.CompoundPoint{
		Date:          "2026-01-05",
		CompoundScore: 1.2,
	}
	point := engine.Advance(day("2026-01-06"), 120, 120, &prior)

	assert.InDelta(t, 1.2*1.01, point.CompoundScore, 1e-9)
}

func TestReferenceCurve_Exactness(t *testing.T) {
	points := engine.ReferenceCurve(day("2026-01-01"), day("2026-01-10"), engine.RateBetter)
	require.Len(t, points, 10)

	assert.Equal(t, "2026-01-01", points[0].Date)
	assert.InDelta(t, 1.0, points[0].Value, 1e-9)
	assert.Equal(t, "2026-01-10", points[9].Date)
	assert.InDelta(t, math.Pow(1.01, 9), points[9].Value, 1e-9)
	assert.InDelta(t, 1.0937, points[9].Value, 1e-4)
}

func TestReferenceCurve_NeutralStaysFlat(t *testing.T) {
	points := engine.ReferenceCurve(day("2026-01-01"), day("2026-03-01"), engine.RateNeutral)
	for _, p := range points {
		assert.InDelta(t, 1.0, p.Value, 1e-9)
	}
}

func TestReferenceCurve_EndBeforeStart(t *testing.T) {
	assert.Nil(t, engine.ReferenceCurve(day("2026-01-10"), day("2026-01-01"), engine.RateWorse))
}

func TestReferenceCurve_SingleDay(t *testing.T) {
	points := engine.ReferenceCurve(day("2026-01-01"), day("2026-01-01"), engine.RateWorse)
	require.Len(t, points, 1)
	assert.InDelta(t, 1.0, points[0].Value, 1e-9)
}
