package repository

import (
	"context"

	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// QuestionRepository handles question-bank data access
type QuestionRepository interface {
	Get(ctx context.Context, id int64) (*models.Question, error)
	List(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error)
	ByTags(ctx context.Context, tags []string, limit int) ([]models.Question, error)
	Insert(ctx context.Context, q models.Question) (int64, error)
	InsertPassage(ctx context.Context, p models.Passage) (int64, error)
	Count(ctx context.Context) (int, error)
	CountBySubcategory(ctx context.Context) (map[string]int, error)
}

// StudyLogRepository handles attempt-log access. Logs are append-only;
// appending a log has no side effects on weakness records (the caller
// updates those explicitly through the weakness model).
type StudyLogRepository interface {
	Insert(ctx context.Context, entry models.StudyLog) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.StudyLog, error)
	RecentByTag(ctx context.Context, tag string, days int) ([]models.StudyLog, error)
	AttemptedQuestionIDs(ctx context.Context) (map[int64]bool, error)
}

// WeaknessRepository handles per-tag weakness record access
type WeaknessRepository interface {
	All(ctx context.Context) ([]models.Weakness, error)
	ByTag(ctx context.Context, tag string) (*models.Weakness, error)
	Upsert(ctx context.Context, w models.Weakness) error
}

// StatsRepository handles aggregate statistics queries
type StatsRepository interface {
	Overview(ctx context.Context) (*models.Stats, error)
	AccuracyBySubcategory(ctx context.Context) (map[string]models.SubcategoryAccuracy, error)
	DailyTrend(ctx context.Context, days int) ([]models.DailyTrendPoint, error)
}

// SessionStateRepository persists opaque practice state across restarts.
// The scheduling core never reads this; it exists for the presentation
// layer's crash recovery.
type SessionStateRepository interface {
	Save(ctx context.Context, key, value string) error
	Load(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
