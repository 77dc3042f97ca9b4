package services

import (
	"context"

	"github.com/yida7942-create/gmat-tutor/internal/errors"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
	"github.com/yida7942-create/gmat-tutor/internal/scheduler"
)

// defaultTrendDays is the window for the progress report's daily trend.
const defaultTrendDays = 7

// AnalyticsService exposes progress reporting and study recommendations
type AnalyticsService interface {
	RecommendedFocus(ctx context.Context) (*models.Recommendation, error)
	ProgressSummary(ctx context.Context, days int) (*models.ProgressSummary, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

type analyticsService struct {
	scheduler *scheduler.Scheduler
	questions repository.QuestionRepository
	stats     repository.StatsRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(sched *scheduler.Scheduler, questions repository.QuestionRepository, stats repository.StatsRepository) AnalyticsService {
	return &analyticsService{scheduler: sched, questions: questions, stats: stats}
}

func (s *analyticsService) RecommendedFocus(ctx context.Context) (*models.Recommendation, error) {
	rec, err := s.scheduler.RecommendedFocus(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to compute recommended focus: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return rec, nil
}

func (s *analyticsService) ProgressSummary(ctx context.Context, days int) (*models.ProgressSummary, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	summary, err := s.scheduler.ProgressSummary(ctx, days)
	if err != nil {
		logger.FromContext(ctx).Error("failed to build progress summary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return summary, nil
}

func (s *analyticsService) Stats(ctx context.Context) (*models.Stats, error) {
	overview, err := s.stats.Overview(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load stats overview: %v", err)
		return nil, errors.NewInternalError(err)
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to count questions: %v", err)
		return nil, errors.NewInternalError(err)
	}
	overview.TotalQuestions = total
	return overview, nil
}
