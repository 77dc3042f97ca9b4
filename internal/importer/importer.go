package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

// seedQuestion is one question in the seed file. PassageRef points into the
// file's passages array; the importer rewrites it to the stored passage id.
type seedQuestion struct {
	PassageRef    *int     `json:"passage_ref,omitempty"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	SkillTags     []string `json:"skill_tags"`
	Difficulty    int      `json:"difficulty"`
	Explanation   string   `json:"explanation"`
}

type seedFile struct {
	Passages  []models.Passage `json:"passages"`
	Questions []seedQuestion   `json:"questions"`
}

// Importer seeds the question bank from a JSON file.
type Importer struct {
	questions repository.QuestionRepository
}

func New(questions repository.QuestionRepository) *Importer {
	return &Importer{questions: questions}
}

// SeedIfEmpty imports the seed file when the question bank has no questions
// yet. A missing file is not an error; the server just starts with an empty
// bank. Returns the number of questions imported.
func (i *Importer) SeedIfEmpty(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("importer")

	count, err := i.questions.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Debug("question bank already seeded: %d questions", count)
		return 0, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info("no seed file at %s, starting with empty question bank", path)
		return 0, nil
	}

	return i.ImportFile(ctx, path)
}

// ImportFile loads questions (and passages, if present) from a JSON file.
// Two layouts are accepted: a bare array of questions, or an object with
// "passages" and "questions" arrays.
func (i *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("importer")

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		// Fall back to the flat layout used by exported question banks.
		var flat []seedQuestion
		if flatErr := json.Unmarshal(data, &flat); flatErr != nil {
			return 0, fmt.Errorf("parsing seed file: %w", err)
		}
		seed.Questions = flat
	}

	passageIDs := make([]int64, len(seed.Passages))
	for idx, p := range seed.Passages {
		id, err := i.questions.InsertPassage(ctx, p)
		if err != nil {
			return 0, fmt.Errorf("inserting passage %d: %w", idx, err)
		}
		passageIDs[idx] = id
	}

	imported := 0
	for idx, sq := range seed.Questions {
		q := models.Question{
			Category:      defaultString(sq.Category, "Verbal"),
			Subcategory:   defaultString(sq.Subcategory, "CR"),
			Content:       sq.Content,
			Options:       sq.Options,
			CorrectAnswer: sq.CorrectAnswer,
			SkillTags:     sq.SkillTags,
			Difficulty:    sq.Difficulty,
			Explanation:   sq.Explanation,
		}
		if q.Difficulty == 0 {
			q.Difficulty = 3
		}
		if sq.PassageRef != nil {
			ref := *sq.PassageRef
			if ref < 0 || ref >= len(passageIDs) {
				return 0, fmt.Errorf("question %d: passage_ref %d out of range", idx, ref)
			}
			q.PassageID = &passageIDs[ref]
		}
		if err := q.Validate(); err != nil {
			log.Warn("skipping invalid seed question %d: %v", idx, err)
			continue
		}
		if _, err := i.questions.Insert(ctx, q); err != nil {
			return 0, fmt.Errorf("inserting question %d: %w", idx, err)
		}
		imported++
	}

	log.Info("seeded question bank: %d questions, %d passages", imported, len(seed.Passages))
	return imported, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
