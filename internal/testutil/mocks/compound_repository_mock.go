package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mleone/ironwill/internal/models"
)

// MockCompoundRepository is a mock implementation of repository.CompoundRepository
type MockCompoundRepository struct {
	mock.Mock
}

func (m *MockCompoundRepository) Point(ctx context.Context, profileID int64, date string) (*models.CompoundPoint, error) {
	args := m.Called(ctx, profileID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompoundPoint), args.Error(1)
}

func (m *MockCompoundRepository) LatestPoint(ctx context.Context, profileID int64) (*models.CompoundPoint, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompoundPoint), args.Error(1)
}

func (m *MockCompoundRepository) PointsForYear(ctx context.Context, profileID int64, year int) ([]models.CompoundPoint, error) {
	args := m.Called(ctx, profileID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CompoundPoint), args.Error(1)
}

func (m *MockCompoundRepository) UpsertPoint(ctx context.Context, point models.CompoundPoint) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *MockCompoundRepository) InsertArchive(ctx context.Context, archive models.CompoundArchive) (int64, error) {
	args := m.Called(ctx, archive)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompoundRepository) Archive(ctx context.Context, profileID int64, year int) (*models.CompoundArchive, error) {
	args := m.Called(ctx, profileID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompoundArchive), args.Error(1)
}

func (m *MockCompoundRepository) ArchivedYears(ctx context.Context, profileID int64) ([]int, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}
