package services

import (
	"context"
	"time"

	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
	"github.com/mleone/ironwill/internal/stats"
)

// StatsService derives training, trading and wellness aggregates from the
// entry history.
type StatsService interface {
	IronmanProgress(ctx context.Context, profileID int64) (*stats.IronmanProgress, error)
	WeeklyVolume(ctx context.Context, profileID int64, dayInWeek time.Time) (*stats.WeeklyVolume, error)
	CumulativePnL(ctx context.Context, profileID int64) ([]stats.PnLPoint, error)
	MonthlyPnL(ctx context.Context, profileID int64) ([]stats.MonthlyPnL, error)
	WellnessSummary(ctx context.Context, profileID int64) (*stats.WellnessSummary, error)
}

type statsService struct {
	entryRepo repository.EntryRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(entryRepo repository.EntryRepository) StatsService {
	return &statsService{entryRepo: entryRepo}
}

func (s *statsService) entries(ctx context.Context, profileID int64) ([]models.DailyEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := s.entryRepo.List(ctx, models.EntryFilter{ProfileID: profileID})
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entries, nil
}

func (s *statsService) IronmanProgress(ctx context.Context, profileID int64) (*stats.IronmanProgress, error) {
	entries, err := s.entries(ctx, profileID)
	if err != nil {
		return nil, err
	}
	progress := stats.ComputeIronmanProgress(entries)
	return &progress, nil
}

func (s *statsService) WeeklyVolume(ctx context.Context, profileID int64, dayInWeek time.Time) (*stats.WeeklyVolume, error) {
	entries, err := s.entries(ctx, profileID)
	if err != nil {
		return nil, err
	}
	vol := stats.ComputeWeeklyVolume(entries, dayInWeek)
	return &vol, nil
}

func (s *statsService) CumulativePnL(ctx context.Context, profileID int64) ([]stats.PnLPoint, error) {
	entries, err := s.entries(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return stats.ComputeCumulativePnL(entries), nil
}

func (s *statsService) MonthlyPnL(ctx context.Context, profileID int64) ([]stats.MonthlyPnL, error) {
	entries, err := s.entries(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return stats.ComputeMonthlyPnL(entries), nil
}

func (s *statsService) WellnessSummary(ctx context.Context, profileID int64) (*stats.WellnessSummary, error) {
	entries, err := s.entries(ctx, profileID)
	if err != nil {
		return nil, err
	}
	summary := stats.ComputeWellnessSummary(entries)
	return &summary, nil
}
