package services

import (
	"context"

	"github.com/yida7942-create/gmat-tutor/internal/errors"
	"github.com/yida7942-create/gmat-tutor/internal/jobs"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
	"github.com/yida7942-create/gmat-tutor/internal/tutor"
)

// summaryLogLimit caps how many recent logs feed the session summary.
const summaryLogLimit = 50

// TutorService wraps the AI tutor with question lookups and the
// explanation cache
type TutorService interface {
	Explain(ctx context.Context, questionID int64, userAnswer int) (string, error)
	Translate(ctx context.Context, questionID int64) (string, error)
	SessionSummary(ctx context.Context) (string, error)
	QuickTip(ctx context.Context, questionType, skillTag string) string
	Taxonomy() []tutor.TaxonomyCategory
}

type tutorService struct {
	questions repository.QuestionRepository
	studyLogs repository.StudyLogRepository
	tutor     *tutor.Client
	cache     *jobs.ExplanationCache
}

// NewTutorService creates a new TutorService. The cache may be nil.
func NewTutorService(questions repository.QuestionRepository, studyLogs repository.StudyLogRepository, tc *tutor.Client, cache *jobs.ExplanationCache) TutorService {
	return &tutorService{questions: questions, studyLogs: studyLogs, tutor: tc, cache: cache}
}

func (s *tutorService) Explain(ctx context.Context, questionID int64, userAnswer int) (string, error) {
	q, err := s.loadQuestion(ctx, questionID)
	if err != nil {
		return "", err
	}
	if userAnswer < 0 || userAnswer >= len(q.Options) {
		return "", errors.NewValidationError("user_answer", "index out of range")
	}

	if s.cache != nil {
		if text, ok := s.cache.Get(questionID, userAnswer); ok {
			logger.FromContext(ctx).Debug("explanation served from prefetch cache: question_id=%d", questionID)
			return text, nil
		}
	}
	return s.tutor.ExplainFailure(ctx, *q, userAnswer, userAnswer == q.CorrectAnswer), nil
}

func (s *tutorService) Translate(ctx context.Context, questionID int64) (string, error) {
	q, err := s.loadQuestion(ctx, questionID)
	if err != nil {
		return "", err
	}
	return s.tutor.TranslateQuestion(ctx, *q), nil
}

func (s *tutorService) SessionSummary(ctx context.Context) (string, error) {
	recent, err := s.studyLogs.Recent(ctx, summaryLogLimit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load recent logs: %v", err)
		return "", errors.NewInternalError(err)
	}

	questions := make(map[int64]models.Question, len(recent))
	for _, entry := range recent {
		if _, ok := questions[entry.QuestionID]; ok {
			continue
		}
		q, err := s.questions.Get(ctx, entry.QuestionID)
		if err != nil {
			logger.FromContext(ctx).Error("failed to load question %d: %v", entry.QuestionID, err)
			return "", errors.NewInternalError(err)
		}
		if q != nil {
			questions[entry.QuestionID] = *q
		}
	}
	return s.tutor.SessionSummary(ctx, recent, questions), nil
}

func (s *tutorService) QuickTip(ctx context.Context, questionType, skillTag string) string {
	return s.tutor.QuickTip(ctx, questionType, skillTag)
}

func (s *tutorService) Taxonomy() []tutor.TaxonomyCategory {
	return tutor.ErrorTaxonomy
}

func (s *tutorService) loadQuestion(ctx context.Context, questionID int64) (*models.Question, error) {
	q, err := s.questions.Get(ctx, questionID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("question", questionID)
	}
	return q, nil
}
