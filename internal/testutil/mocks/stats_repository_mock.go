package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Overview(ctx context.Context) (*models.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stats), args.Error(1)
}

func (m *MockStatsRepository) AccuracyBySubcategory(ctx context.Context) (map[string]models.SubcategoryAccuracy, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.SubcategoryAccuracy), args.Error(1)
}

func (m *MockStatsRepository) DailyTrend(ctx context.Context, days int) ([]models.DailyTrendPoint, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyTrendPoint), args.Error(1)
}
