package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mleone/ironwill/internal/models"
)

// MockAnchorRepository is a mock implementation of repository.AnchorRepository
type MockAnchorRepository struct {
	mock.Mock
}

func (m *MockAnchorRepository) Get(ctx context.Context, profileID int64, habit string) (*models.Anchor, error) {
	args := m.Called(ctx, profileID, habit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Anchor), args.Error(1)
}

func (m *MockAnchorRepository) SetStartDate(ctx context.Context, profileID int64, habit, startDate string) error {
	args := m.Called(ctx, profileID, habit, startDate)
	return args.Error(0)
}

func (m *MockAnchorRepository) SetBestStreak(ctx context.Context, profileID int64, habit string, best int) error {
	args := m.Called(ctx, profileID, habit, best)
	return args.Error(0)
}
