package engine

import (
	"math"
	"time"

	"github.com/mleone/ironwill/internal/models"
)

// Compound multiplier constants: a perfect 120 XP day compounds at 1.01, a
// zero day at 0.99, so the multiplier models "1% better or worse per day".
const (
	MultiplierBase   = 0.99
	MultiplierSpread = 0.02
)

// Fixed comparison curve rates rendered alongside the user's series.
const (
	RateBetter  = 1.01
	RateNeutral = 1.00
	RateWorse   = 0.99
)

// DailyMultiplier converts a daily XP score into that day's compounding
// factor: base + spread*xp/max. XP outside [0, max] is clamped so the
// multiplier stays within [0.99, 1.01].
func DailyMultiplier(dailyXP, maxDailyXP int) float64 {
	if maxDailyXP <= 0 {
		return MultiplierBase
	}
	if dailyXP < 0 {
		dailyXP = 0
	}
	if dailyXP > maxDailyXP {
		dailyXP = maxDailyXP
	}
	return MultiplierBase + MultiplierSpread*float64(dailyXP)/float64(maxDailyXP)
}

// Advance computes the compound point for date given the immediately
// preceding tracked point, or nil when the series is empty. The running
// score is a plain float64 geometric product; representational drift over
// long series is accepted, not corrected.
func Advance(date time.Time, dailyXP, maxDailyXP int, prior *models.CompoundPoint) models.CompoundPoint {
	prev := 1.0
	if prior != nil {
		prev = prior.CompoundScore
	}
	m := DailyMultiplier(dailyXP, maxDailyXP)
	return models.CompoundPoint{
		Date:          models.FormatDate(date),
		DailyXP:       dailyXP,
		Multiplier:    m,
		CompoundScore: prev * m,
	}
}

// ReferenceCurve produces rate^n for each day from start to end inclusive,
// n being the zero-based day offset. An end before start yields nil.
func ReferenceCurve(start, end time.Time, rate float64) []models.CurvePoint {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}
	points := make([]models.CurvePoint, 0, DaysBetween(start, end)+1)
	n := 0
	for d := start; !d.After(end); d = NextDay(d) {
		points = append(points, models.CurvePoint{
			Date:  models.FormatDate(d),
			Value: math.Pow(rate, float64(n)),
		})
		n++
	}
	return points
}
