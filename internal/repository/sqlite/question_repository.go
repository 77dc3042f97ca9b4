package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const questionColumns = "id, passage_id, category, subcategory, content, options, correct_answer, skill_tags, difficulty, explanation"

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new QuestionRepository implementation
func NewQuestionRepository(db *sql.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Get(ctx context.Context, id int64) (*models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("getting question: id=%d", id)

	row := r.db.QueryRowContext(ctx, `
SELECT `+questionColumns+`
FROM questions
WHERE id = ?
`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("question not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get question: %v", err)
		return nil, err
	}
	return q, nil
}

func (r *questionRepository) List(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("listing questions: subcategory=%q, skill_tag=%q, limit=%d", filter.Subcategory, filter.SkillTag, filter.Limit)

	query := sqlBuilder.Select(questionColumns).From("questions")
	if filter.Subcategory != "" {
		query = query.Where(squirrel.Eq{"subcategory": filter.Subcategory})
	}
	if filter.SkillTag != "" {
		// Skill tags are stored as a JSON array, so match the quoted tag.
		query = query.Where(squirrel.Like{"skill_tags": fmt.Sprintf(`%%"%s"%%`, filter.SkillTag)})
	}
	query = query.OrderBy("id ASC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list questions: %v", err)
		return nil, err
	}
	defer rows.Close()

	questions, err := collectQuestions(rows)
	if err != nil {
		log.Error("failed to scan question rows: %v", err)
		return nil, err
	}
	log.Debug("found %d questions", len(questions))
	return questions, rows.Err()
}

func (r *questionRepository) ByTags(ctx context.Context, tags []string, limit int) ([]models.Question, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("fetching questions by tags: tags=%v, limit=%d", tags, limit)

	if len(tags) == 0 {
		return nil, nil
	}

	or := squirrel.Or{}
	for _, tag := range tags {
		or = append(or, squirrel.Like{"skill_tags": fmt.Sprintf(`%%"%s"%%`, tag)})
	}
	query := sqlBuilder.Select(questionColumns).From("questions").Where(or).OrderBy("id ASC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query questions by tags: %v", err)
		return nil, err
	}
	defer rows.Close()

	questions, err := collectQuestions(rows)
	if err != nil {
		log.Error("failed to scan question rows: %v", err)
		return nil, err
	}
	log.Debug("found %d questions for tags %v", len(questions), tags)
	return questions, rows.Err()
}

func (r *questionRepository) Insert(ctx context.Context, q models.Question) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("inserting question: subcategory=%s, difficulty=%d", q.Subcategory, q.Difficulty)

	if err := q.Validate(); err != nil {
		return 0, err
	}

	options, err := json.Marshal(q.Options)
	if err != nil {
		return 0, err
	}
	tags, err := json.Marshal(q.SkillTags)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO questions (passage_id, category, subcategory, content, options, correct_answer, skill_tags, difficulty, explanation)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`, q.PassageID, q.Category, q.Subcategory, q.Content, string(options), q.CorrectAnswer, string(tags), q.Difficulty, q.Explanation)
	if err != nil {
		log.Error("failed to insert question: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get question id: %v", err)
		return 0, err
	}
	log.Debug("question inserted: id=%d", id)
	return id, nil
}

func (r *questionRepository) InsertPassage(ctx context.Context, p models.Passage) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")
	log.Debug("inserting passage: category=%s, word_count=%d", p.Category, p.WordCount)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO passages (content, category, word_count)
VALUES (?, ?, ?)
`, p.Content, p.Category, p.WordCount)
	if err != nil {
		log.Error("failed to insert passage: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *questionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		logger.FromContext(ctx).WithPrefix("question_repo").Error("failed to count questions: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *questionRepository) CountBySubcategory(ctx context.Context) (map[string]int, error) {
	log := logger.FromContext(ctx).WithPrefix("question_repo")

	rows, err := r.db.QueryContext(ctx, `SELECT subcategory, COUNT(*) FROM questions GROUP BY subcategory`)
	if err != nil {
		log.Error("failed to count questions by subcategory: %v", err)
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var sub string
		var count int
		if err := rows.Scan(&sub, &count); err != nil {
			log.Error("failed to scan subcategory count: %v", err)
			return nil, err
		}
		counts[sub] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*models.Question, error) {
	var q models.Question
	var passageID sql.NullInt64
	var options, tags string
	var explanation sql.NullString

	err := row.Scan(&q.ID, &passageID, &q.Category, &q.Subcategory, &q.Content, &options, &q.CorrectAnswer, &tags, &q.Difficulty, &explanation)
	if err != nil {
		return nil, err
	}
	if passageID.Valid {
		q.PassageID = &passageID.Int64
	}
	if explanation.Valid {
		q.Explanation = explanation.String
	}
	if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
		return nil, fmt.Errorf("decode options for question %d: %w", q.ID, err)
	}
	if err := json.Unmarshal([]byte(tags), &q.SkillTags); err != nil {
		return nil, fmt.Errorf("decode skill tags for question %d: %w", q.ID, err)
	}
	return &q, nil
}

func collectQuestions(rows *sql.Rows) ([]models.Question, error) {
	var questions []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}
