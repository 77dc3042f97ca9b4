package services

import (
	"context"

	"github.com/yida7942-create/gmat-tutor/internal/errors"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

// SessionService persists opaque client session state across restarts
type SessionService interface {
	Save(ctx context.Context, key, value string) error
	Load(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type sessionService struct {
	store repository.SessionStateRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(store repository.SessionStateRepository) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) Save(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}
	if err := s.store.Save(ctx, key, value); err != nil {
		logger.FromContext(ctx).Error("failed to save session state: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *sessionService) Load(ctx context.Context, key string) (string, error) {
	value, found, err := s.store.Load(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load session state: %v", err)
		return "", errors.NewInternalError(err)
	}
	if !found {
		return "", errors.NewNotFoundError("session state", key)
	}
	return value, nil
}

func (s *sessionService) Delete(ctx context.Context, key string) error {
	if err := s.store.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Error("failed to delete session state: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
