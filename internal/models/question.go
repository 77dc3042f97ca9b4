package models

import "github.com/yida7942-create/gmat-tutor/internal/errors"

// Question is a single multiple-choice item from the question bank.
// Questions are created once by the importer and never mutated afterwards.
type Question struct {
	ID            int64    `json:"id"`
	PassageID     *int64   `json:"passage_id,omitempty"`
	Category      string   `json:"category"`    // Verbal, Quant, DI
	Subcategory   string   `json:"subcategory"` // CR, RC, DS, PS, ...
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
	SkillTags     []string `json:"skill_tags"`
	Difficulty    int      `json:"difficulty"` // 1-5
	Explanation   string   `json:"explanation,omitempty"`
}

// Passage holds shared reading-comprehension text referenced by questions.
type Passage struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Category  string `json:"category"` // Science, Business, Social
	WordCount int    `json:"word_count"`
}

// QuestionFilter narrows question lookups.
type QuestionFilter struct {
	Subcategory string
	SkillTag    string
	Limit       int
}

// HasTag reports whether the question carries the given skill tag.
func (q Question) HasTag(tag string) bool {
	for _, t := range q.SkillTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants the scheduler cannot default around.
func (q Question) Validate() error {
	if len(q.Options) == 0 {
		return errors.NewValidationError("options", "must not be empty")
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return errors.NewValidationError("correct_answer", "index out of range")
	}
	return nil
}
