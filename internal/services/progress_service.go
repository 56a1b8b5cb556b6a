package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

// Anchored streak names. Sobriety counts days since the anchor as long as
// today is clean; the reading streak only resets through an explicit break.
const (
	StreakSobriety = "sobriety"
	StreakReading  = "reading"
)

// AnchoredStreakStatus is the API view of one anchored streak.
type AnchoredStreakStatus struct {
	Habit     string `json:"habit"`
	StartDate string `json:"start_date"`
	Current   int    `json:"current"`
	Best      int    `json:"best"`
}

// StreakDefaults carries the configured fallback anchors used before any
// anchor row exists. ReadingMinStart is also the floor a restored reading
// streak gets clamped to.
type StreakDefaults struct {
	SobrietyStart   time.Time
	ReadingMinStart time.Time
}

// ProgressService handles streak and habit-progress business logic.
type ProgressService interface {
	AnchoredStreak(ctx context.Context, profileID int64, habit string, today time.Time) (*AnchoredStreakStatus, error)
	BreakStreak(ctx context.Context, profileID int64, habit string, today time.Time) (*AnchoredStreakStatus, error)
	RestoreStreak(ctx context.Context, profileID int64, habit string, today time.Time) (*AnchoredStreakStatus, error)
	FieldStreaks(ctx context.Context, profileID int64, field string, today time.Time) (models.StreakResult, error)
	HabitStats(ctx context.Context, profileID int64, habit string, today time.Time) (models.HabitStats, error)
}

type progressService struct {
	entryRepo  repository.EntryRepository
	anchorRepo repository.AnchorRepository
	tiers      engine.TierTable
	defaults   StreakDefaults
}

// NewProgressService creates a new ProgressService
func NewProgressService(entryRepo repository.EntryRepository, anchorRepo repository.AnchorRepository, tiers engine.TierTable, defaults StreakDefaults) ProgressService {
	return &progressService{
		entryRepo:  entryRepo,
		anchorRepo: anchorRepo,
		tiers:      tiers,
		defaults:   defaults,
	}
}

func (s *progressService) AnchoredStreak(ctx context.Context, profileID int64, habit string, today time.Time) (*AnchoredStreakStatus, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing anchored streak: profile_id=%d, habit=%s", profileID, habit)

	start, best, err := s.anchorState(ctx, profileID, habit)
	if err != nil {
		return nil, err
	}

	flag, err := s.todayFlag(ctx, profileID, habit, today)
	if err != nil {
		return nil, err
	}

	current := engine.AnchoredStreak(start, today, flag)
	if current > best {
		best = current
		if err := s.anchorRepo.SetBestStreak(ctx, profileID, habit, best); err != nil {
			log.Error("failed to update best streak: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}

	return &AnchoredStreakStatus{
		Habit:     habit,
		StartDate: models.FormatDate(start),
		Current:   current,
		Best:      best,
	}, nil
}

func (s *progressService) BreakStreak(ctx context.Context, profileID int64, habit string, today time.Time) (*AnchoredStreakStatus, error) {
	log := logger.FromContext(ctx)
	log.Info("breaking streak: profile_id=%d, habit=%s", profileID, habit)

	// Preserve the high-water mark before the anchor moves.
	status, err := s.AnchoredStreak(ctx, profileID, habit, today)
	if err != nil {
		return nil, err
	}

	anchor := engine.BreakAnchor(today)
	if err := s.anchorRepo.SetStartDate(ctx, profileID, habit, models.FormatDate(anchor)); err != nil {
		log.Error("failed to move anchor: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return &AnchoredStreakStatus{
		Habit:     habit,
		StartDate: models.FormatDate(anchor),
		Current:   0,
		Best:      status.Best,
	}, nil
}

func (s *progressService) RestoreStreak(ctx context.Context, profileID int64, habit string, today time.Time) (*AnchoredStreakStatus, error) {
	log := logger.FromContext(ctx)
	log.Info("restoring streak: profile_id=%d, habit=%s", profileID, habit)

	if habit != StreakSobriety && habit != StreakReading {
		return nil, errors.NewValidationError("habit", "unknown anchored streak")
	}

	var minStart time.Time
	if habit == StreakReading {
		minStart = s.defaults.ReadingMinStart
	}
	anchor := engine.RestoreAnchor(today, minStart)
	if err := s.anchorRepo.SetStartDate(ctx, profileID, habit, models.FormatDate(anchor)); err != nil {
		log.Error("failed to move anchor: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return s.AnchoredStreak(ctx, profileID, habit, today)
}

// FieldStreaks replays the full entry history for one boolean field under
// the absence-means-clean policy: only an explicitly false day breaks the
// run.
func (s *progressService) FieldStreaks(ctx context.Context, profileID int64, field string, today time.Time) (models.StreakResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing field streaks: profile_id=%d, field=%s", profileID, field)

	var value func(models.DailyEntry) bool
	switch field {
	case "weed_clean":
		value = func(e models.DailyEntry) bool { return e.WeedClean }
	case "journaling":
		value = func(e models.DailyEntry) bool { return e.Habits.Journaling }
	default:
		return models.StreakResult{}, errors.NewValidationError("field", "not a tracked boolean field")
	}

	entries, err := s.entryRepo.List(ctx, models.EntryFilter{ProfileID: profileID})
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return models.StreakResult{}, errors.NewInternalError(err)
	}

	samples := make([]engine.FlagDay, 0, len(entries))
	for _, e := range entries {
		d, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		samples = append(samples, engine.FlagDay{Date: d, Value: value(e)})
	}
	return engine.Streaks(samples, today), nil
}

func (s *progressService) HabitStats(ctx context.Context, profileID int64, habit string, today time.Time) (models.HabitStats, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing habit stats: profile_id=%d, habit=%s", profileID, habit)

	switch habit {
	case engine.HabitMeditation, engine.HabitReading, engine.HabitJournaling, engine.HabitMobility:
	default:
		return models.HabitStats{}, errors.NewValidationError("habit", "unknown habit")
	}

	entries, err := s.entryRepo.List(ctx, models.EntryFilter{ProfileID: profileID})
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return models.HabitStats{}, errors.NewInternalError(err)
	}
	return engine.HabitStats(s.tiers, entries, habit, today), nil
}

// anchorState resolves the stored anchor for a habit, falling back to the
// configured defaults when none has been set yet.
func (s *progressService) anchorState(ctx context.Context, profileID int64, habit string) (time.Time, int, error) {
	log := logger.FromContext(ctx)

	anchor, err := s.anchorRepo.Get(ctx, profileID, habit)
	if err != nil {
		log.Error("failed to get anchor: %v", err)
		return time.Time{}, 0, errors.NewInternalError(err)
	}

	var start time.Time
	best := 0
	if anchor != nil {
		best = anchor.BestStreak
		if anchor.StartDate != "" {
			start, err = models.ParseDate(anchor.StartDate)
			if err != nil {
				log.Error("corrupt anchor start date %q: %v", anchor.StartDate, err)
				return time.Time{}, 0, errors.NewInternalError(err)
			}
			return engine.Day(start), best, nil
		}
	}

	switch habit {
	case StreakSobriety:
		start = s.defaults.SobrietyStart
	case StreakReading:
		start = s.defaults.ReadingMinStart
	default:
		return time.Time{}, 0, errors.NewValidationError("habit", "unknown anchored streak")
	}
	return engine.Day(start), best, nil
}

// todayFlag decides whether today still counts for the streak. Sobriety reads
// today's entry (absence counts as clean); the reading streak only ends
// through an explicit break, so its flag is always on.
func (s *progressService) todayFlag(ctx context.Context, profileID int64, habit string, today time.Time) (bool, error) {
	if habit != StreakSobriety {
		return true, nil
	}

	entry, err := s.entryRepo.Get(ctx, profileID, models.FormatDate(today))
	if err != nil {
		if err == sql.ErrNoRows {
			return true, nil
		}
		return false, errors.NewInternalError(err)
	}
	return entry.WeedClean, nil
}
