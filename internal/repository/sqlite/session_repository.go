package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

type sessionStateRepository struct {
	db *sql.DB
}

// NewSessionStateRepository creates a new SessionStateRepository implementation
func NewSessionStateRepository(db *sql.DB) repository.SessionStateRepository {
	return &sessionStateRepository{db: db}
}

func (r *sessionStateRepository) Save(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("saving session state: key=%s", key)

	_, err := r.db.ExecContext(ctx, `
INSERT OR REPLACE INTO session_store (key, value, updated_at)
VALUES (?, ?, ?)
`, key, value, time.Now())
	if err != nil {
		log.Error("failed to save session state: %v", err)
	}
	return err
}

func (r *sessionStateRepository) Load(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("loading session state: key=%s", key)

	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Error("failed to load session state: %v", err)
		return "", false, err
	}
	return value, true, nil
}

func (r *sessionStateRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("deleting session state: key=%s", key)

	_, err := r.db.ExecContext(ctx, `DELETE FROM session_store WHERE key = ?`, key)
	if err != nil {
		log.Error("failed to delete session state: %v", err)
	}
	return err
}

func (r *sessionStateRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("clearing session state")

	_, err := r.db.ExecContext(ctx, `DELETE FROM session_store`)
	if err != nil {
		log.Error("failed to clear session state: %v", err)
	}
	return err
}
