package sqlite

import (
	"context"
	"database/sql"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Overview(ctx context.Context) (*models.Stats, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching overview stats")

	var s models.Stats
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&s.TotalQuestions); err != nil {
		log.Error("failed to count questions: %v", err)
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_logs`).Scan(&s.TotalAttempts); err != nil {
		log.Error("failed to count attempts: %v", err)
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM study_logs WHERE is_correct = 1`).Scan(&s.CorrectAttempts); err != nil {
		log.Error("failed to count correct attempts: %v", err)
		return nil, err
	}
	if s.TotalAttempts > 0 {
		s.OverallAccuracy = roundPct(float64(s.CorrectAttempts) / float64(s.TotalAttempts) * 100)
	}
	return &s, nil
}

func (r *statsRepository) AccuracyBySubcategory(ctx context.Context) (map[string]models.SubcategoryAccuracy, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching accuracy by subcategory")

	rows, err := r.db.QueryContext(ctx, `
SELECT q.subcategory,
       COUNT(*) AS total,
       SUM(CASE WHEN sl.is_correct THEN 1 ELSE 0 END) AS correct
FROM study_logs sl
JOIN questions q ON q.id = sl.question_id
GROUP BY q.subcategory
`)
	if err != nil {
		log.Error("failed to query accuracy by subcategory: %v", err)
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]models.SubcategoryAccuracy)
	for rows.Next() {
		var sub string
		var acc models.SubcategoryAccuracy
		var correct sql.NullInt64
		if err := rows.Scan(&sub, &acc.Total, &correct); err != nil {
			log.Error("failed to scan subcategory accuracy: %v", err)
			return nil, err
		}
		acc.Correct = int(correct.Int64)
		if acc.Total > 0 {
			acc.Accuracy = roundPct(float64(acc.Correct) / float64(acc.Total) * 100)
		}
		result[sub] = acc
	}
	return result, rows.Err()
}

func (r *statsRepository) DailyTrend(ctx context.Context, days int) ([]models.DailyTrendPoint, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("fetching daily trend: days=%d", days)

	if days <= 0 {
		days = 7
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT DATE(timestamp) AS date,
       COUNT(*) AS total,
       SUM(CASE WHEN is_correct THEN 1 ELSE 0 END) AS correct
FROM study_logs
WHERE timestamp > datetime('now', ?)
GROUP BY DATE(timestamp)
ORDER BY date
`, formatDaysAgo(days))
	if err != nil {
		log.Error("failed to query daily trend: %v", err)
		return nil, err
	}
	defer rows.Close()

	var trend []models.DailyTrendPoint
	for rows.Next() {
		var p models.DailyTrendPoint
		var correct sql.NullInt64
		if err := rows.Scan(&p.Date, &p.Total, &correct); err != nil {
			log.Error("failed to scan trend row: %v", err)
			return nil, err
		}
		p.Correct = int(correct.Int64)
		if p.Total > 0 {
			p.Accuracy = roundPct(float64(p.Correct) / float64(p.Total) * 100)
		}
		trend = append(trend, p)
	}
	log.Debug("found %d trend points", len(trend))
	return trend, rows.Err()
}
