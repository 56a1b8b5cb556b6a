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

// CompoundTimeline is the API view of one year's compound progress: the
// tracked points plus the three fixed-rate comparison curves spanning the
// same date range.
type CompoundTimeline struct {
	Year    int                    `json:"year"`
	Points  []models.CompoundPoint `json:"points"`
	Better  []models.CurvePoint    `json:"better"`  // 1.01/day
	Neutral []models.CurvePoint    `json:"neutral"` // 1.00/day
	Worse   []models.CurvePoint    `json:"worse"`   // 0.99/day
}

// CompoundService handles the compound-progress timeline and year rollover.
type CompoundService interface {
	Timeline(ctx context.Context, profileID int64, year int) (*CompoundTimeline, error)
	// ArchiveYear freezes a year's points into an archive and clears them
	// from the active set. Returns nil without error when there is nothing
	// to archive, including on a repeat call for an already-archived year.
	ArchiveYear(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error)
	// RolloverIfNeeded archives the previous year once the calendar moves
	// into a new one. Safe to call on every request.
	RolloverIfNeeded(ctx context.Context, profileID int64, today time.Time) error
	GetArchive(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error)
	ListArchivedYears(ctx context.Context, profileID int64) ([]int, error)
}

type compoundService struct {
	compoundRepo repository.CompoundRepository
}

// NewCompoundService creates a new CompoundService
func NewCompoundService(compoundRepo repository.CompoundRepository) CompoundService {
	return &compoundService{compoundRepo: compoundRepo}
}

func (s *compoundService) Timeline(ctx context.Context, profileID int64, year int) (*CompoundTimeline, error) {
	log := logger.FromContext(ctx)
	log.Debug("building compound timeline: profile_id=%d, year=%d", profileID, year)

	if year < 2000 || year > 2200 {
		return nil, errors.NewValidationError("year", "out of range")
	}

	points, err := s.compoundRepo.PointsForYear(ctx, profileID, year)
	if err != nil {
		log.Error("failed to get compound points: %v", err)
		return nil, errors.NewInternalError(err)
	}

	timeline := &CompoundTimeline{Year: year, Points: points}
	if len(points) == 0 {
		return timeline, nil
	}

	start, err := models.ParseDate(points[0].Date)
	if err != nil {
		log.Error("corrupt compound point date %q: %v", points[0].Date, err)
		return nil, errors.NewInternalError(err)
	}
	end, err := models.ParseDate(points[len(points)-1].Date)
	if err != nil {
		log.Error("corrupt compound point date %q: %v", points[len(points)-1].Date, err)
		return nil, errors.NewInternalError(err)
	}

	timeline.Better = engine.ReferenceCurve(start, end, engine.RateBetter)
	timeline.Neutral = engine.ReferenceCurve(start, end, engine.RateNeutral)
	timeline.Worse = engine.ReferenceCurve(start, end, engine.RateWorse)
	return timeline, nil
}

func (s *compoundService) ArchiveYear(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error) {
	log := logger.FromContext(ctx)
	log.Debug("archiving compound year: profile_id=%d, year=%d", profileID, year)

	// Already archived: idempotent, nothing left to freeze.
	_, err := s.compoundRepo.Archive(ctx, profileID, year)
	if err == nil {
		log.Debug("year %d already archived", year)
		return nil, nil
	}
	if err != sql.ErrNoRows {
		log.Error("failed to check for existing archive: %v", err)
		return nil, errors.NewInternalError(err)
	}

	points, err := s.compoundRepo.PointsForYear(ctx, profileID, year)
	if err != nil {
		log.Error("failed to get compound points: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(points) == 0 {
		log.Debug("no points to archive for year %d", year)
		return nil, nil
	}

	archive := models.CompoundArchive{
		ProfileID:   profileID,
		Year:        year,
		FinalScore:  points[len(points)-1].CompoundScore,
		DaysTracked: len(points),
		Points:      points,
	}
	id, err := s.compoundRepo.InsertArchive(ctx, archive)
	if err != nil {
		log.Error("failed to insert archive: %v", err)
		return nil, errors.NewInternalError(err)
	}
	archive.ID = id

	log.Info("archived year %d: final_score=%.4f, days=%d", year, archive.FinalScore, archive.DaysTracked)
	return &archive, nil
}

func (s *compoundService) RolloverIfNeeded(ctx context.Context, profileID int64, today time.Time) error {
	_, err := s.ArchiveYear(ctx, profileID, today.Year()-1)
	return err
}

func (s *compoundService) GetArchive(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error) {
	log := logger.FromContext(ctx)

	archive, err := s.compoundRepo.Archive(ctx, profileID, year)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("archive", year)
		}
		log.Error("failed to get archive: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return archive, nil
}

func (s *compoundService) ListArchivedYears(ctx context.Context, profileID int64) ([]int, error) {
	log := logger.FromContext(ctx)

	years, err := s.compoundRepo.ArchivedYears(ctx, profileID)
	if err != nil {
		log.Error("failed to list archived years: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return years, nil
}
