package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/mleone/ironwill/internal/engine"
	"github.com/mleone/ironwill/internal/errors"
	"github.com/mleone/ironwill/internal/logger"
	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/repository"
)

// EntryService handles daily-entry business logic. Saving an entry also
// advances the year's compound-progress series; an edit behind the newest
// tracked day replays the year to keep the running score consistent.
type EntryService interface {
	GetEntry(ctx context.Context, profileID int64, date string) (*models.DailyEntry, error)
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.DailyEntry, int, error)
	SaveEntry(ctx context.Context, entry models.DailyEntry) (*models.DailyEntry, error)
	DeleteEntry(ctx context.Context, profileID int64, date string) error
}

type entryService struct {
	entryRepo    repository.EntryRepository
	compoundRepo repository.CompoundRepository
	tiers        engine.TierTable
}

// NewEntryService creates a new EntryService
func NewEntryService(entryRepo repository.EntryRepository, compoundRepo repository.CompoundRepository, tiers engine.TierTable) EntryService {
	return &entryService{
		entryRepo:    entryRepo,
		compoundRepo: compoundRepo,
		tiers:        tiers,
	}
}

func (s *entryService) GetEntry(ctx context.Context, profileID int64, date string) (*models.DailyEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting entry: profile_id=%d, date=%s", profileID, date)

	if _, err := models.ParseDate(date); err != nil {
		return nil, errors.NewValidationError("date", "must be YYYY-MM-DD")
	}

	entry, err := s.entryRepo.Get(ctx, profileID, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("entry", date)
		}
		log.Error("failed to get entry: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.DailyEntry, int, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing entries: profile_id=%d, from=%s, to=%s", filter.ProfileID, filter.From, filter.To)

	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, err := models.ParseDate(d); err != nil {
			return nil, 0, errors.NewValidationError("date range", "must be YYYY-MM-DD")
		}
	}

	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list entries: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	totalCount, err := s.entryRepo.Count(ctx, filter)
	if err != nil {
		log.Error("failed to count entries: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	return entries, totalCount, nil
}

func (s *entryService) SaveEntry(ctx context.Context, entry models.DailyEntry) (*models.DailyEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("saving entry: profile_id=%d, date=%s", entry.ProfileID, entry.Date)

	day, err := models.ParseDate(entry.Date)
	if err != nil {
		return nil, errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	saved, err := s.entryRepo.Upsert(ctx, entry)
	if err != nil {
		log.Error("failed to save entry: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if err := s.updateCompound(ctx, entry, day); err != nil {
		log.Error("failed to update compound points: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return saved, nil
}

// updateCompound writes the compound point for the saved day. Appending at
// the end of the series is the common case and needs no replay: the prior is
// the literal previous day's point, else the latest tracked point. An edit
// behind the newest point invalidates everything after it and falls back to
// replaying the year.
func (s *entryService) updateCompound(ctx context.Context, entry models.DailyEntry, day time.Time) error {
	latest, err := s.compoundRepo.LatestPoint(ctx, entry.ProfileID)
	if err != nil {
		if err != sql.ErrNoRows {
			return err
		}
		return s.upsertPoint(ctx, entry, day, nil)
	}

	if latest.Date > entry.Date {
		return s.rebuildCompoundYear(ctx, entry.ProfileID, day.Year())
	}

	prior, err := s.compoundRepo.Point(ctx, entry.ProfileID, models.FormatDate(engine.PrevDay(day)))
	if err != nil {
		if err != sql.ErrNoRows {
			return err
		}
		if latest.Date == entry.Date {
			// Rewriting the newest day with nothing on the literal previous
			// day: the prior sits somewhere earlier in the series.
			return s.rebuildCompoundYear(ctx, entry.ProfileID, day.Year())
		}
		prior = latest
	}

	// Every year's series seeds fresh at 1.0.
	if prior != nil && !sameYear(prior.Date, entry.Date) {
		prior = nil
	}
	return s.upsertPoint(ctx, entry, day, prior)
}

func (s *entryService) upsertPoint(ctx context.Context, entry models.DailyEntry, day time.Time, prior *models.CompoundPoint) error {
	point := engine.Advance(day, s.tiers.DailyXP(entry.Habits), s.tiers.MaxDailyXP, prior)
	point.ProfileID = entry.ProfileID
	return s.compoundRepo.UpsertPoint(ctx, point)
}

func sameYear(a, b string) bool {
	return len(a) >= 4 && len(b) >= 4 && a[:4] == b[:4]
}

func (s *entryService) DeleteEntry(ctx context.Context, profileID int64, date string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting entry: profile_id=%d, date=%s", profileID, date)

	day, err := models.ParseDate(date)
	if err != nil {
		return errors.NewValidationError("date", "must be YYYY-MM-DD")
	}

	if err := s.entryRepo.Delete(ctx, profileID, date); err != nil {
		if err == sql.ErrNoRows {
			return errors.NewNotFoundError("entry", date)
		}
		log.Error("failed to delete entry: %v", err)
		return errors.NewInternalError(err)
	}

	if err := s.rebuildCompoundYear(ctx, profileID, day.Year()); err != nil {
		log.Error("failed to rebuild compound points: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// rebuildCompoundYear replays the year's entries in date order and rewrites
// each tracked day's compound point. The series is seeded at 1.0 every year;
// archived years never feed into the next one.
func (s *entryService) rebuildCompoundYear(ctx context.Context, profileID int64, year int) error {
	filter := models.EntryFilter{
		ProfileID: profileID,
		From:      fmt.Sprintf("%04d-01-01", year),
		To:        fmt.Sprintf("%04d-12-31", year),
	}
	entries, err := s.entryRepo.List(ctx, filter)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	var prior *models.CompoundPoint
	for _, e := range entries {
		day, err := models.ParseDate(e.Date)
		if err != nil {
			continue
		}
		point := engine.Advance(day, s.tiers.DailyXP(e.Habits), s.tiers.MaxDailyXP, prior)
		point.ProfileID = profileID
		if err := s.compoundRepo.UpsertPoint(ctx, point); err != nil {
			return err
		}
		prior = &point
	}
	return nil
}

func validateEntry(entry models.DailyEntry) error {
	if entry.ProfileID <= 0 {
		return errors.NewValidationError("profile_id", "must be set")
	}
	if entry.SleepHours < 0 || entry.SleepHours > 24 {
		return errors.NewValidationError("sleep_hours", "must be between 0 and 24")
	}
	if entry.SleepQuality < 0 || entry.SleepQuality > 10 {
		return errors.NewValidationError("sleep_quality", "must be between 0 and 10")
	}
	if entry.Mood < 0 || entry.Mood > 10 {
		return errors.NewValidationError("mood", "must be between 0 and 10")
	}
	if entry.Habits.MeditationMinutes < 0 || entry.Habits.ReadingPages < 0 || entry.Habits.MobilityMinutes < 0 {
		return errors.NewValidationError("habits", "values cannot be negative")
	}
	if entry.Training.Distance < 0 {
		return errors.NewValidationError("training.distance", "cannot be negative")
	}
	return nil
}
