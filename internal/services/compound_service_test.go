package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mleone/ironwill/internal/models"
	"github.com/mleone/ironwill/internal/testutil/mocks"
)

func TestTimeline_EmptyYear(t *testing.T) {
	repo := new(mocks.MockCompoundRepository)
	svc := NewCompoundService(repo)

	repo.On("PointsForYear", mock.Anything, int64(1), 2026).Return([]models.CompoundPoint{}, nil)

	timeline, err := svc.Timeline(context.Background(), 1, 2026)
	require.NoError(t, err)

	assert.Empty(t, timeline.Points)
	assert.Nil(t, timeline.Better)
}

func TestTimeline_ReferenceCurvesSpanTrackedRange(t *testing.T) {
	repo := new(mocks.MockCompoundRepository)
	svc := NewCompoundService(repo)

	repo.On("PointsForYear", mock.Anything, int64(1), 2026).Return([]models.CompoundPoint{
		{Date: "2026-01-01", DailyXP: 120, Multiplier: 1.01, CompoundScore: 1.01},
		{Date: "2026-01-05", DailyXP: 0, Multiplier: 0.99, CompoundScore: 0.9999},
	}, nil)

	timeline, err := svc.Timeline(context.Background(), 1, 2026)
	require.NoError(t, err)

	// Curves cover every calendar day between first and last tracked point.
	require.Len(t, timeline.Better, 5)
	require.Len(t, timeline.Neutral, 5)
	require.Len(t, timeline.Worse, 5)
	assert.Equal(t, "2026-01-01", timeline.Better[0].Date)
	assert.Equal(t, "2026-01-05", timeline.Better[4].Date)
	assert.InDelta(t, 1.0, timeline.Neutral[4].Value, 1e-9)
	assert.InDelta(t, 1.01*1.01*1.01*1.01, timeline.Better[4].Value, 1e-9)
}

func TestTimeline_RejectsAbsurdYear(t *testing.T) {
	svc := NewCompoundService(new(mocks.MockCompoundRepository))

	_, err := svc.Timeline(context.Background(), 1, 99)
	assert.Error(t, err)
}

func TestArchiveYear_Idempotent(t *testing.T) {
	repo := new(mocks.MockCompoundRepository)
	svc := NewCompoundService(repo)

	existing := &models.CompoundArchive{ID: 3, Year: 2025, FinalScore: 1.12, DaysTracked: 200}
	repo.On("Archive", mock.Anything, int64(1), 2025).Return(existing, nil)

	// A repeat call finds the archive in place and returns none.
	archive, err := svc.ArchiveYear(context.Background(), 1, 2025)
	require.NoError(t, err)

	assert.Nil(t, archive)
	repo.AssertNotCalled(t, "InsertArchive", mock.Anything, mock.Anything)
}

func TestArchiveYear_NothingToArchive(t *testing.T) {
	repo := new(mocks.MockCompoundRepository)
	svc := NewCompoundService(repo)

	repo.On("Archive", mock.Anything, int64(1), 2025).Return(nil, sql.ErrNoRows)
	repo.On("PointsForYear", mock.Anything, int64(1), 2025).Return([]models.CompoundPoint{}, nil)

	archive, err := svc.ArchiveYear(context.Background(), 1, 2025)
	require.NoError(t, err)
	assert.Nil(t, archive)
	repo.AssertNotCalled(t, "InsertArchive", mock.Anything, mock.Anything)
}

func TestArchiveYear_SnapshotsFinalScore(t *testing.T) {
	repo := new(mocks.MockCompoundRepository)
	svc := NewCompoundService(repo)

	points := []models.CompoundPoint{
		{Date: "2025-12-30", CompoundScore: 1.10},
		{Date: "2025-12-31", CompoundScore: 1.12},
	}
	repo.On("Archive", mock.Anything, int64(1), 2025).Return(nil, sql.ErrNoRows)
	repo.On("PointsForYear", mock.Anything, int64(1), 2025).Return(points, nil)
	repo.On("InsertArchive", mock.Anything, mock.MatchedBy(func(a models.CompoundArchive) bool {
		return a.Year == 2025 && a.DaysTracked == 2 && a.FinalScore == 1.12
	})).Return(int64(9), nil)

	archive, err := svc.ArchiveYear(context.Background(), 1, 2025)
	require.NoError(t, err)

	assert.Equal(t, int64(9), archive.ID)
	assert.InDelta(t, 1.12, archive.FinalScore, 1e-9)
	repo.AssertExpectations(t)
}

func TestRolloverIfNeeded_ArchivesPreviousYear(t *testing.T) {
	repo := new(mocks.MockCompoundRepository)
	svc := NewCompoundService(repo)

	existing := &models.CompoundArchive{ID: 1, Year: 2025}
	repo.On("Archive", mock.Anything, int64(1), 2025).Return(existing, nil)

	today := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, svc.RolloverIfNeeded(context.Background(), 1, today))
	repo.AssertExpectations(t)
}
