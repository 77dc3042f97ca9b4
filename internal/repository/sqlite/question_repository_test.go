package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
	"github.com/yida7942-create/gmat-tutor/internal/repository/sqlite"
	"github.com/yida7942-create/gmat-tutor/internal/testutil"
)

func newQuestionRepo(t *testing.T) repository.QuestionRepository {
	return sqlite.NewQuestionRepository(testutil.NewTestDB(t).DB)
}

func insertQuestion(t *testing.T, repo repository.QuestionRepository, subcategory, tag string, difficulty int) int64 {
	t.Helper()
	id, err := repo.Insert(context.Background(), models.Question{
		Category:      "Verbal",
		Subcategory:   subcategory,
		Content:       "sample question content",
		Options:       []string{"a", "b", "c", "d", "e"},
		CorrectAnswer: 1,
		SkillTags:     []string{tag},
		Difficulty:    difficulty,
		Explanation:   "because",
	})
	require.NoError(t, err)
	return id
}

func TestQuestionRepository_InsertAndGet(t *testing.T) {
	repo := newQuestionRepo(t)
	ctx := context.Background()

	id := insertQuestion(t, repo, "CR", "Assumption", 3)

	q, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, id, q.ID)
	assert.Equal(t, "CR", q.Subcategory)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, q.Options)
	assert.Equal(t, 1, q.CorrectAnswer)
	assert.Equal(t, []string{"Assumption"}, q.SkillTags)
	assert.Equal(t, "because", q.Explanation)
	assert.Nil(t, q.PassageID)
}

func TestQuestionRepository_GetMissingReturnsNil(t *testing.T) {
	repo := newQuestionRepo(t)

	q, err := repo.Get(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestQuestionRepository_InsertRejectsInvalid(t *testing.T) {
	repo := newQuestionRepo(t)

	_, err := repo.Insert(context.Background(), models.Question{
		Category:      "Verbal",
		Subcategory:   "CR",
		Content:       "broken",
		Options:       []string{"a", "b"},
		CorrectAnswer: 5,
		SkillTags:     []string{"Assumption"},
		Difficulty:    3,
	})
	assert.Error(t, err, "correct_answer outside the options must be rejected")
}

func TestQuestionRepository_ListFilters(t *testing.T) {
	repo := newQuestionRepo(t)
	ctx := context.Background()

	insertQuestion(t, repo, "CR", "Assumption", 3)
	insertQuestion(t, repo, "CR", "Weaken", 3)
	insertQuestion(t, repo, "RC", "Main Idea", 2)

	all, err := repo.List(ctx, models.QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cr, err := repo.List(ctx, models.QuestionFilter{Subcategory: "CR"})
	require.NoError(t, err)
	assert.Len(t, cr, 2)

	weaken, err := repo.List(ctx, models.QuestionFilter{SkillTag: "Weaken"})
	require.NoError(t, err)
	require.Len(t, weaken, 1)
	assert.Equal(t, []string{"Weaken"}, weaken[0].SkillTags)

	limited, err := repo.List(ctx, models.QuestionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestQuestionRepository_ByTags(t *testing.T) {
	repo := newQuestionRepo(t)
	ctx := context.Background()

	insertQuestion(t, repo, "CR", "Assumption", 3)
	insertQuestion(t, repo, "CR", "Weaken", 3)
	insertQuestion(t, repo, "CR", "Inference", 3)

	got, err := repo.ByTags(ctx, []string{"Assumption", "Inference"}, 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	none, err := repo.ByTags(ctx, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionRepository_PassageRoundTrip(t *testing.T) {
	repo := newQuestionRepo(t)
	ctx := context.Background()

	passageID, err := repo.InsertPassage(ctx, models.Passage{
		Content:   "a long passage about trade routes",
		Category:  "Business",
		WordCount: 220,
	})
	require.NoError(t, err)

	q := models.Question{
		PassageID:     &passageID,
		Category:      "Verbal",
		Subcategory:   "RC",
		Content:       "what is the main idea",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: 0,
		SkillTags:     []string{"Main Idea"},
		Difficulty:    2,
	}
	id, err := repo.Insert(ctx, q)
	require.NoError(t, err)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.PassageID)
	assert.Equal(t, passageID, *got.PassageID)
}

func TestQuestionRepository_CountBySubcategory(t *testing.T) {
	repo := newQuestionRepo(t)
	ctx := context.Background()

	insertQuestion(t, repo, "CR", "Assumption", 3)
	insertQuestion(t, repo, "CR", "Weaken", 3)
	insertQuestion(t, repo, "RC", "Main Idea", 2)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	counts, err := repo.CountBySubcategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"CR": 2, "RC": 1}, counts)
}
