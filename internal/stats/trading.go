package stats

import (
	"sort"

	"github.com/mleone/ironwill/internal/models"
)

// PnLPoint is one day of the cumulative P&L series.
type PnLPoint struct {
	Date       string  `json:"date"`
	PnL        float64 `json:"pnl"`
	Cumulative float64 `json:"cumulative"`
}

// MonthlyPnL aggregates trading results for one calendar month.
type MonthlyPnL struct {
	Month        string  `json:"month"` // YYYY-MM
	Total        float64 `json:"total"`
	Days         int     `json:"days"`
	PositiveDays int     `json:"positive_days"`
	NegativeDays int     `json:"negative_days"`
}

// ComputeCumulativePnL returns the chronological running P&L total.
func ComputeCumulativePnL(entries []models.DailyEntry) []PnLPoint {
	sorted := make([]models.DailyEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	points := make([]PnLPoint, 0, len(sorted))
	cumulative := 0.0
	for _, e := range sorted {
		cumulative += e.TradingPnL
		points = append(points, PnLPoint{
			Date:       e.Date,
			PnL:        e.TradingPnL,
			Cumulative: cumulative,
		})
	}
	return points
}

// ComputeMonthlyPnL buckets trading results by calendar month, sorted
// chronologically.
func ComputeMonthlyPnL(entries []models.DailyEntry) []MonthlyPnL {
	byMonth := map[string]*MonthlyPnL{}
	for _, e := range entries {
		if len(e.Date) < 7 {
			continue
		}
		month := e.Date[:7]
		m, ok := byMonth[month]
		if !ok {
			m = &MonthlyPnL{Month: month}
			byMonth[month] = m
		}
		m.Total += e.TradingPnL
		m.Days++
		if e.TradingPnL > 0 {
			m.PositiveDays++
		}
		if e.TradingPnL < 0 {
			m.NegativeDays++
		}
	}

	months := make([]MonthlyPnL, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}
