package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// MockStudyLogRepository is a mock implementation of repository.StudyLogRepository
type MockStudyLogRepository struct {
	mock.Mock
}

func (m *MockStudyLogRepository) Insert(ctx context.Context, entry models.StudyLog) (int64, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudyLogRepository) Recent(ctx context.Context, limit int) ([]models.StudyLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyLog), args.Error(1)
}

func (m *MockStudyLogRepository) RecentByTag(ctx context.Context, tag string, days int) ([]models.StudyLog, error) {
	args := m.Called(ctx, tag, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyLog), args.Error(1)
}

func (m *MockStudyLogRepository) AttemptedQuestionIDs(ctx context.Context) (map[int64]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}
