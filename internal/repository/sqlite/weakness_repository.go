package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

type weaknessRepository struct {
	db *sql.DB
}

// NewWeaknessRepository creates a new WeaknessRepository implementation
func NewWeaknessRepository(db *sql.DB) repository.WeaknessRepository {
	return &weaknessRepository{db: db}
}

func (r *weaknessRepository) All(ctx context.Context) ([]models.Weakness, error) {
	log := logger.FromContext(ctx).WithPrefix("weakness_repo")
	log.Debug("fetching all weakness records")

	rows, err := r.db.QueryContext(ctx, `
SELECT tag, error_count, total_attempts, last_seen, weight
FROM user_weaknesses
ORDER BY weight DESC
`)
	if err != nil {
		log.Error("failed to query weaknesses: %v", err)
		return nil, err
	}
	defer rows.Close()

	var weaknesses []models.Weakness
	for rows.Next() {
		var w models.Weakness
		var lastSeen sql.NullTime
		if err := rows.Scan(&w.Tag, &w.ErrorCount, &w.TotalAttempts, &lastSeen, &w.Weight); err != nil {
			log.Error("failed to scan weakness row: %v", err)
			return nil, err
		}
		w.LastSeen = lastSeen.Time
		weaknesses = append(weaknesses, w)
	}
	log.Debug("found %d weakness records", len(weaknesses))
	return weaknesses, rows.Err()
}

func (r *weaknessRepository) ByTag(ctx context.Context, tag string) (*models.Weakness, error) {
	log := logger.FromContext(ctx).WithPrefix("weakness_repo")
	log.Debug("fetching weakness: tag=%s", tag)

	var w models.Weakness
	var lastSeen sql.NullTime
	err := r.db.QueryRowContext(ctx, `
SELECT tag, error_count, total_attempts, last_seen, weight
FROM user_weaknesses
WHERE tag = ?
`, tag).Scan(&w.Tag, &w.ErrorCount, &w.TotalAttempts, &lastSeen, &w.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("weakness not found: tag=%s", tag)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get weakness: %v", err)
		return nil, err
	}
	w.LastSeen = lastSeen.Time
	return &w, nil
}

func (r *weaknessRepository) Upsert(ctx context.Context, w models.Weakness) error {
	log := logger.FromContext(ctx).WithPrefix("weakness_repo")
	log.Debug("upserting weakness: tag=%s, errors=%d/%d, weight=%.2f", w.Tag, w.ErrorCount, w.TotalAttempts, w.Weight)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO user_weaknesses (tag, error_count, total_attempts, last_seen, weight)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(tag) DO UPDATE SET
    error_count = excluded.error_count,
    total_attempts = excluded.total_attempts,
    last_seen = excluded.last_seen,
    weight = excluded.weight
`, w.Tag, w.ErrorCount, w.TotalAttempts, w.LastSeen, w.Weight)
	if err != nil {
		log.Error("failed to upsert weakness: %v", err)
	}
	return err
}
