package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

type studyLogRepository struct {
	db *sql.DB
}

// NewStudyLogRepository creates a new StudyLogRepository implementation
func NewStudyLogRepository(db *sql.DB) repository.StudyLogRepository {
	return &studyLogRepository{db: db}
}

func (r *studyLogRepository) Insert(ctx context.Context, entry models.StudyLog) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("study_log_repo")
	log.Debug("inserting study log: question_id=%d, correct=%t", entry.QuestionID, entry.IsCorrect)

	errorCategory := sql.NullString{String: entry.ErrorCategory, Valid: entry.ErrorCategory != ""}
	errorDetail := sql.NullString{String: entry.ErrorDetail, Valid: entry.ErrorDetail != ""}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO study_logs (question_id, user_answer, is_correct, time_taken, error_category, error_detail, timestamp)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, entry.QuestionID, entry.UserAnswer, entry.IsCorrect, entry.TimeTakenSecs, errorCategory, errorDetail, entry.Timestamp)
	if err != nil {
		log.Error("failed to insert study log: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get study log id: %v", err)
		return 0, err
	}
	log.Debug("study log inserted: id=%d", id)
	return id, nil
}

func (r *studyLogRepository) Recent(ctx context.Context, limit int) ([]models.StudyLog, error) {
	log := logger.FromContext(ctx).WithPrefix("study_log_repo")
	log.Debug("fetching recent study logs: limit=%d", limit)

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, question_id, user_answer, is_correct, time_taken, error_category, error_detail, timestamp
FROM study_logs
ORDER BY timestamp DESC
LIMIT ?
`, limit)
	if err != nil {
		log.Error("failed to query study logs: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs, err := collectStudyLogs(rows)
	if err != nil {
		log.Error("failed to scan study log rows: %v", err)
		return nil, err
	}
	log.Debug("found %d study logs", len(logs))
	return logs, rows.Err()
}

func (r *studyLogRepository) RecentByTag(ctx context.Context, tag string, days int) ([]models.StudyLog, error) {
	log := logger.FromContext(ctx).WithPrefix("study_log_repo")
	log.Debug("fetching recent logs by tag: tag=%s, days=%d", tag, days)

	cutoff := time.Now().AddDate(0, 0, -days)
	rows, err := r.db.QueryContext(ctx, `
SELECT sl.id, sl.question_id, sl.user_answer, sl.is_correct, sl.time_taken, sl.error_category, sl.error_detail, sl.timestamp
FROM study_logs sl
JOIN questions q ON q.id = sl.question_id
WHERE q.skill_tags LIKE ? AND sl.timestamp > ?
ORDER BY sl.timestamp DESC
`, fmt.Sprintf(`%%"%s"%%`, tag), cutoff)
	if err != nil {
		log.Error("failed to query logs by tag: %v", err)
		return nil, err
	}
	defer rows.Close()

	logs, err := collectStudyLogs(rows)
	if err != nil {
		log.Error("failed to scan study log rows: %v", err)
		return nil, err
	}
	log.Debug("found %d logs for tag %s", len(logs), tag)
	return logs, rows.Err()
}

func (r *studyLogRepository) AttemptedQuestionIDs(ctx context.Context) (map[int64]bool, error) {
	log := logger.FromContext(ctx).WithPrefix("study_log_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT question_id FROM study_logs`)
	if err != nil {
		log.Error("failed to query attempted question ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan question id: %v", err)
			return nil, err
		}
		ids[id] = true
	}
	log.Debug("found %d attempted questions", len(ids))
	return ids, rows.Err()
}

func collectStudyLogs(rows *sql.Rows) ([]models.StudyLog, error) {
	var logs []models.StudyLog
	for rows.Next() {
		var entry models.StudyLog
		var errorCategory, errorDetail sql.NullString
		if err := rows.Scan(&entry.ID, &entry.QuestionID, &entry.UserAnswer, &entry.IsCorrect, &entry.TimeTakenSecs, &errorCategory, &errorDetail, &entry.Timestamp); err != nil {
			return nil, err
		}
		entry.ErrorCategory = errorCategory.String
		entry.ErrorDetail = errorDetail.String
		logs = append(logs, entry)
	}
	return logs, nil
}
