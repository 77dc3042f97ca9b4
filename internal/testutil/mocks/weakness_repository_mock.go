package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// MockWeaknessRepository is a mock implementation of repository.WeaknessRepository
type MockWeaknessRepository struct {
	mock.Mock
}

func (m *MockWeaknessRepository) All(ctx context.Context) ([]models.Weakness, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Weakness), args.Error(1)
}

func (m *MockWeaknessRepository) ByTag(ctx context.Context, tag string) (*models.Weakness, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Weakness), args.Error(1)
}

func (m *MockWeaknessRepository) Upsert(ctx context.Context, w models.Weakness) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
