// Package stats derives display aggregates from the daily-entry history:
// training mileage, Ironman progress, trading P&L series and wellness
// averages. Like the engine package it is pure and takes its reference day
// as a parameter.
package stats

import (
	"time"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/models"
)

// Training entry types.
const (
	TrainingSwim     = "swim"
	TrainingBike     = "bike"
	TrainingRun      = "run"
	TrainingStrength = "strength"
	TrainingRest     = "rest"
)

const metersPerMile = 1609.34

// Full-Ironman distances in miles.
const (
	IronmanSwimMiles = 2.4
	IronmanBikeMiles = 112
	IronmanRunMiles  = 26.2
)

// TrainingTotals accumulates swim/bike/run mileage and strength/rest day
// counts across the whole history.
type TrainingTotals struct {
	SwimMiles    float64 `json:"swim_miles"`
	BikeMiles    float64 `json:"bike_miles"`
	RunMiles     float64 `json:"run_miles"`
	StrengthDays int     `json:"strength_days"`
	RestDays     int     `json:"rest_days"`
}

// DisciplineProgress is the distance toward the next full Ironman in one
// discipline.
type DisciplineProgress struct {
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
}

// IronmanProgress reports completed full Ironmans (limited by the weakest
// discipline) and per-discipline progress toward the next one.
type IronmanProgress struct {
	FullIronmans int                `json:"full_ironmans"`
	Totals       TrainingTotals     `json:"totals"`
	Swim         DisciplineProgress `json:"swim"`
	Bike         DisciplineProgress `json:"bike"`
	Run          DisciplineProgress `json:"run"`
}

// WeeklyVolume is the Monday-anchored training volume for one week.
type WeeklyVolume struct {
	WeekStart    string  `json:"week_start"`
	WeekEnd      string  `json:"week_end"`
	SwimMiles    float64 `json:"swim_miles"`
	BikeMiles    float64 `json:"bike_miles"`
	RunMiles     float64 `json:"run_miles"`
	StrengthDays int     `json:"strength_days"`
	RestDays     int     `json:"rest_days"`
	TotalMiles   float64 `json:"total_miles"`
}

// DistanceMiles converts a training entry's distance to miles. Entries
// recorded in meters divide by 1609.34; anything else is already miles.
func DistanceMiles(t models.Training) float64 {
	if t.Distance <= 0 {
		return 0
	}
	if t.DistanceUnit == "meters" {
		return t.Distance / metersPerMile
	}
	return t.Distance
}

// ComputeTrainingTotals sums the full history in miles.
func ComputeTrainingTotals(entries []models.DailyEntry) TrainingTotals {
	var totals TrainingTotals
	for _, e := range entries {
		switch e.Training.Type {
		case TrainingSwim:
			totals.SwimMiles += DistanceMiles(e.Training)
		case TrainingBike:
			totals.BikeMiles += DistanceMiles(e.Training)
		case TrainingRun:
			totals.RunMiles += DistanceMiles(e.Training)
		case TrainingStrength:
			totals.StrengthDays++
		case TrainingRest:
			totals.RestDays++
		}
	}
	return totals
}

// ComputeIronmanProgress derives completed Ironmans and progress toward the
// next from lifetime totals. The limiting discipline decides how many full
// Ironmans count.
func ComputeIronmanProgress(entries []models.DailyEntry) IronmanProgress {
	totals := ComputeTrainingTotals(entries)

	completed := min(
		int(totals.SwimMiles/IronmanSwimMiles),
		min(int(totals.BikeMiles/IronmanBikeMiles), int(totals.RunMiles/IronmanRunMiles)),
	)

	progress := func(total, target float64) DisciplineProgress {
		current := total - float64(completed)*target
		return DisciplineProgress{
			Current:    current,
			Target:     target,
			Percentage: current / target * 100,
		}
	}

	return IronmanProgress{
		FullIronmans: completed,
		Totals:       totals,
		Swim:         progress(totals.SwimMiles, IronmanSwimMiles),
		Bike:         progress(totals.BikeMiles, IronmanBikeMiles),
		Run:          progress(totals.RunMiles, IronmanRunMiles),
	}
}

// ComputeWeeklyVolume sums training volume for the Monday-to-Sunday week
// containing the given day.
func ComputeWeeklyVolume(entries []models.DailyEntry, dayInWeek time.Time) WeeklyVolume {
	start := weekStart(dayInWeek)
	end := start.AddDate(0, 0, 6)

	vol := WeeklyVolume{
		WeekStart: models.FormatDate(start),
		WeekEnd:   models.FormatDate(end),
	}

	for _, e := range entries {
		d, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		d = engine.Day(d)
		if d.Before(start) || d.After(end) {
			continue
		}
		switch e.Training.Type {
		case TrainingSwim:
			miles := DistanceMiles(e.Training)
			vol.SwimMiles += miles
			vol.TotalMiles += miles
		case TrainingBike:
			miles := DistanceMiles(e.Training)
			vol.BikeMiles += miles
			vol.TotalMiles += miles
		case TrainingRun:
			miles := DistanceMiles(e.Training)
			vol.RunMiles += miles
			vol.TotalMiles += miles
		case TrainingStrength:
			vol.StrengthDays++
		case TrainingRest:
			vol.RestDays++
		}
	}
	return vol
}

// weekStart returns the Monday of t's week.
func weekStart(t time.Time) time.Time {
	t = engine.Day(t)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return t.AddDate(0, 0, -offset)
}
