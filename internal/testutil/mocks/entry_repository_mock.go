package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mleone/ironwill/internal/models"
)

// MockEntryRepository is a mock implementation of repository.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Get(ctx context.Context, profileID int64, date string) (*models.DailyEntry, error) {
	args := m.Called(ctx, profileID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyEntry), args.Error(1)
}

func (m *MockEntryRepository) List(ctx context.Context, filter models.EntryFilter) ([]models.DailyEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyEntry), args.Error(1)
}

func (m *MockEntryRepository) Count(ctx context.Context, filter models.EntryFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockEntryRepository) Upsert(ctx context.Context, entry models.DailyEntry) (*models.DailyEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DailyEntry), args.Error(1)
}

func (m *MockEntryRepository) Delete(ctx context.Context, profileID int64, date string) error {
	args := m.Called(ctx, profileID, date)
	return args.Error(0)
}
