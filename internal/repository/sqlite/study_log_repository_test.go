package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
	"github.com/yida7942-create/gmat-tutor/internal/repository/sqlite"
	"github.com/yida7942-create/gmat-tutor/internal/testutil"
)

func newLogRepos(t *testing.T) (repository.QuestionRepository, repository.StudyLogRepository) {
	db := testutil.NewTestDB(t)
	return sqlite.NewQuestionRepository(db.DB), sqlite.NewStudyLogRepository(db.DB)
}

func TestStudyLogRepository_InsertAndRecent(t *testing.T) {
	questions, logs := newLogRepos(t)
	ctx := context.Background()

	qID := insertQuestion(t, questions, "CR", "Assumption", 3)

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := logs.Insert(ctx, models.StudyLog{
			QuestionID:    qID,
			UserAnswer:    i,
			IsCorrect:     i == 1,
			TimeTakenSecs: 60 + i,
			ErrorCategory: "Reasoning",
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	recent, err := logs.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Newest first.
	assert.Equal(t, 2, recent[0].UserAnswer)
	assert.Equal(t, 1, recent[1].UserAnswer)
	assert.Equal(t, "Reasoning", recent[0].ErrorCategory)
	assert.Equal(t, 62, recent[0].TimeTakenSecs)
}

func TestStudyLogRepository_RecentByTag(t *testing.T) {
	questions, logs := newLogRepos(t)
	ctx := context.Background()

	tagged := insertQuestion(t, questions, "CR", "Weaken", 3)
	other := insertQuestion(t, questions, "CR", "Inference", 3)

	now := time.Now().UTC()
	_, err := logs.Insert(ctx, models.StudyLog{QuestionID: tagged, IsCorrect: false, Timestamp: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = logs.Insert(ctx, models.StudyLog{QuestionID: tagged, IsCorrect: true, Timestamp: now.AddDate(0, 0, -10)})
	require.NoError(t, err)
	_, err = logs.Insert(ctx, models.StudyLog{QuestionID: other, IsCorrect: true, Timestamp: now.Add(-time.Hour)})
	require.NoError(t, err)

	got, err := logs.RecentByTag(ctx, "Weaken", 7)
	require.NoError(t, err)
	require.Len(t, got, 1, "only logs for the tag within the window")
	assert.Equal(t, tagged, got[0].QuestionID)
	assert.False(t, got[0].IsCorrect)
}

func TestStudyLogRepository_AttemptedQuestionIDs(t *testing.T) {
	questions, logs := newLogRepos(t)
	ctx := context.Background()

	q1 := insertQuestion(t, questions, "CR", "Assumption", 3)
	q2 := insertQuestion(t, questions, "CR", "Weaken", 3)
	insertQuestion(t, questions, "CR", "Inference", 3) // never attempted

	now := time.Now().UTC()
	for i := 0; i < 2; i++ {
		_, err := logs.Insert(ctx, models.StudyLog{QuestionID: q1, IsCorrect: true, Timestamp: now})
		require.NoError(t, err)
	}
	_, err := logs.Insert(ctx, models.StudyLog{QuestionID: q2, IsCorrect: false, Timestamp: now})
	require.NoError(t, err)

	ids, err := logs.AttemptedQuestionIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{q1: true, q2: true}, ids)
}
