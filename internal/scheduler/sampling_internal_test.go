package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

func TestQuestionWeight_UsesMaxTagWeight(t *testing.T) {
	weaknesses := map[string]models.Weakness{
		"Assumption": {Tag: "Assumption", Weight: 2.0},
		"Weaken":     {Tag: "Weaken", Weight: 1.2},
	}

	q := models.Question{SkillTags: []string{"Assumption", "Weaken"}, Difficulty: 3}
	assert.Equal(t, 2.0, questionWeight(q, weaknesses), "the heaviest tag dominates")

	unknown := models.Question{SkillTags: []string{"Boldface"}, Difficulty: 3}
	assert.Equal(t, neutralWeight, questionWeight(unknown, weaknesses), "tags without a record are neutral")

	untagged := models.Question{Difficulty: 3}
	assert.Equal(t, neutralWeight, questionWeight(untagged, weaknesses))
}

func TestDifficultyBoost(t *testing.T) {
	// Weak areas lean toward easy questions.
	assert.Equal(t, 1.3, difficultyBoost(2.0, 1))
	assert.Equal(t, 1.3, difficultyBoost(2.0, 2))
	assert.Equal(t, 1.0, difficultyBoost(2.0, 3))
	assert.Equal(t, 0.7, difficultyBoost(2.0, 5))

	// Mastered areas lean toward hard questions.
	assert.Equal(t, 0.7, difficultyBoost(0.8, 1))
	assert.Equal(t, 1.0, difficultyBoost(0.8, 3))
	assert.Equal(t, 1.3, difficultyBoost(0.8, 4))

	// Middling weights get no bias.
	assert.Equal(t, 1.0, difficultyBoost(1.2, 1))
	assert.Equal(t, 1.0, difficultyBoost(1.2, 5))
}
