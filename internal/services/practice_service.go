package services

import (
	"context"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/errors"
	"github.com/yida7942-create/gmat-tutor/internal/jobs"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
	"github.com/yida7942-create/gmat-tutor/internal/scheduler"
	"github.com/yida7942-create/gmat-tutor/internal/tutor"
	"github.com/yida7942-create/gmat-tutor/internal/weakness"
	"github.com/yida7942-create/gmat-tutor/internal/worker"
)

// SubmitAnswerInput is one answered question as reported by the client.
type SubmitAnswerInput struct {
	QuestionID    int64  `json:"question_id"`
	UserAnswer    int    `json:"user_answer"`
	TimeTakenSecs int    `json:"time_taken"`
	ErrorCategory string `json:"error_category,omitempty"`
	ErrorDetail   string `json:"error_detail,omitempty"`
}

// AnswerResult is what the client gets back after submitting an answer.
type AnswerResult struct {
	IsCorrect     bool                   `json:"is_correct"`
	CorrectAnswer int                    `json:"correct_answer"`
	Explanation   string                 `json:"explanation,omitempty"`
	Drill         *models.EmergencyDrill `json:"drill,omitempty"`
}

// PracticeService handles the answer-submission flow
type PracticeService interface {
	GetDailyPlan(ctx context.Context, count int, subcategory, skillTag string) (*models.DailyPlan, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*AnswerResult, error)
	ResetSession(ctx context.Context)
}

type practiceService struct {
	questions repository.QuestionRepository
	studyLogs repository.StudyLogRepository
	weakness  *weakness.Model
	scheduler *scheduler.Scheduler
	tutor     *tutor.Client
	pool      *worker.Pool
	cache     *jobs.ExplanationCache
	now       func() time.Time
}

// NewPracticeService creates a new PracticeService. Pool and cache may be
// nil, which disables explanation prefetching.
func NewPracticeService(questions repository.QuestionRepository, studyLogs repository.StudyLogRepository, wm *weakness.Model, sched *scheduler.Scheduler, tc *tutor.Client, pool *worker.Pool, cache *jobs.ExplanationCache) PracticeService {
	return &practiceService{
		questions: questions,
		studyLogs: studyLogs,
		weakness:  wm,
		scheduler: sched,
		tutor:     tc,
		pool:      pool,
		cache:     cache,
		now:       time.Now,
	}
}

func (s *practiceService) GetDailyPlan(ctx context.Context, count int, subcategory, skillTag string) (*models.DailyPlan, error) {
	plan, err := s.scheduler.GenerateDailyPlan(ctx, count, subcategory, skillTag)
	if err != nil {
		logger.FromContext(ctx).Error("failed to generate daily plan: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return plan, nil
}

func (s *practiceService) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	q, err := s.questions.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("question", id)
	}
	return q, nil
}

// SubmitAnswer runs the full answer flow: append the study log, update the
// weakness record for every tag on the question, then feed the session
// monitor. The steps are deliberately separate writes; a crash between them
// loses at most one weakness update, which the next attempt corrects.
func (s *practiceService) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*AnswerResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("submitting answer: question_id=%d, answer=%d", input.QuestionID, input.UserAnswer)

	q, err := s.questions.Get(ctx, input.QuestionID)
	if err != nil {
		log.Error("failed to load question: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("question", input.QuestionID)
	}
	if input.UserAnswer < 0 || input.UserAnswer >= len(q.Options) {
		return nil, errors.NewValidationError("user_answer", "index out of range")
	}

	now := s.now()
	isCorrect := input.UserAnswer == q.CorrectAnswer

	if _, err := s.studyLogs.Insert(ctx, models.StudyLog{
		QuestionID:    q.ID,
		UserAnswer:    input.UserAnswer,
		IsCorrect:     isCorrect,
		TimeTakenSecs: input.TimeTakenSecs,
		ErrorCategory: input.ErrorCategory,
		ErrorDetail:   input.ErrorDetail,
		Timestamp:     now,
	}); err != nil {
		log.Error("failed to append study log: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if err := s.weakness.UpdateAll(ctx, q.SkillTags, !isCorrect, now); err != nil {
		log.Error("failed to update weakness records: %v", err)
		return nil, errors.NewInternalError(err)
	}

	drill, err := s.scheduler.RecordAnswer(ctx, *q, isCorrect)
	if err != nil {
		log.Error("failed to run session monitor: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := &AnswerResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: q.CorrectAnswer,
		Drill:         drill,
	}

	if !isCorrect {
		result.Explanation = q.Explanation
		s.prefetchExplanation(*q, input.UserAnswer)
	}
	return result, nil
}

func (s *practiceService) ResetSession(ctx context.Context) {
	logger.FromContext(ctx).Debug("resetting practice session")
	s.scheduler.ResetSession()
}

// prefetchExplanation queues a background AI explanation so it is likely
// ready by the time the learner opens the review screen.
func (s *practiceService) prefetchExplanation(q models.Question, userAnswer int) {
	if s.pool == nil || s.cache == nil || !s.tutor.IsAvailable() {
		return
	}
	s.pool.TrySubmit(&jobs.ExplanationJob{
		Tutor:      s.tutor,
		Cache:      s.cache,
		Question:   q,
		UserAnswer: userAnswer,
		IsCorrect:  false,
	})
}
