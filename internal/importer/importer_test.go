package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yida7942-create/gmat-tutor/internal/importer"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository/sqlite"
	"github.com/yida7942-create/gmat-tutor/internal/testutil"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const flatSeed = `[
  {"subcategory": "CR", "content": "q1", "options": ["a","b","c"], "correct_answer": 0, "skill_tags": ["Assumption"], "difficulty": 2},
  {"content": "q2", "options": ["a","b","c"], "correct_answer": 1, "skill_tags": ["Weaken"]}
]`

func TestImportFile_FlatLayout(t *testing.T) {
	questions := sqlite.NewQuestionRepository(testutil.NewTestDB(t).DB)
	imp := importer.New(questions)

	count, err := imp.ImportFile(context.Background(), writeSeedFile(t, flatSeed))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := questions.List(context.Background(), models.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Verbal", all[0].Category, "missing category defaults")
	assert.Equal(t, "CR", all[1].Subcategory, "missing subcategory defaults")
	assert.Equal(t, 3, all[1].Difficulty, "missing difficulty defaults to medium")
}

func TestImportFile_PassageLayout(t *testing.T) {
	questions := sqlite.NewQuestionRepository(testutil.NewTestDB(t).DB)
	imp := importer.New(questions)

	seed := `{
  "passages": [{"content": "a passage", "category": "Science", "word_count": 150}],
  "questions": [
    {"passage_ref": 0, "subcategory": "RC", "content": "q1", "options": ["a","b"], "correct_answer": 0, "skill_tags": ["Main Idea"], "difficulty": 2},
    {"subcategory": "CR", "content": "q2", "options": ["a","b"], "correct_answer": 1, "skill_tags": ["Weaken"], "difficulty": 3}
  ]
}`

	count, err := imp.ImportFile(context.Background(), writeSeedFile(t, seed))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := questions.List(context.Background(), models.QuestionFilter{Subcategory: "RC"})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].PassageID, "passage_ref resolves to a stored passage id")
}

func TestImportFile_SkipsInvalidQuestions(t *testing.T) {
	questions := sqlite.NewQuestionRepository(testutil.NewTestDB(t).DB)
	imp := importer.New(questions)

	seed := `[
  {"subcategory": "CR", "content": "ok", "options": ["a","b"], "correct_answer": 0, "skill_tags": ["Assumption"], "difficulty": 2},
  {"subcategory": "CR", "content": "bad", "options": [], "correct_answer": 0, "skill_tags": ["Assumption"], "difficulty": 2}
]`

	count, err := imp.ImportFile(context.Background(), writeSeedFile(t, seed))
	require.NoError(t, err)
	assert.Equal(t, 1, count, "structurally invalid questions are skipped, not fatal")
}

func TestSeedIfEmpty(t *testing.T) {
	questions := sqlite.NewQuestionRepository(testutil.NewTestDB(t).DB)
	imp := importer.New(questions)
	ctx := context.Background()
	path := writeSeedFile(t, flatSeed)

	count, err := imp.SeedIfEmpty(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Already seeded: a second call is a no-op.
	count, err = imp.SeedIfEmpty(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSeedIfEmpty_MissingFile(t *testing.T) {
	questions := sqlite.NewQuestionRepository(testutil.NewTestDB(t).DB)
	imp := importer.New(questions)

	count, err := imp.SeedIfEmpty(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err, "a missing seed file is not an error")
	assert.Equal(t, 0, count)
}
