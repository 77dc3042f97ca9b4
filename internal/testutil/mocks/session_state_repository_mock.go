package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSessionStateRepository is a mock implementation of repository.SessionStateRepository
type MockSessionStateRepository struct {
	mock.Mock
}

func (m *MockSessionStateRepository) Save(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSessionStateRepository) Load(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSessionStateRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockSessionStateRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
