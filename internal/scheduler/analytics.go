package scheduler

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// RecommendedFocus analyzes the weakness records and returns what the
// learner should work on next. No history yet is a valid state, answered
// with a neutral message rather than an error.
func (s *Scheduler) RecommendedFocus(ctx context.Context) (*models.Recommendation, error) {
	log := logger.FromContext(ctx).WithPrefix("scheduler")
	log.Debug("computing recommended focus")

	weaknesses, err := s.weaknesses.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(weaknesses) == 0 {
		return &models.Recommendation{
			Message: "No study history yet. Start practicing to get personalized recommendations!",
		}, nil
	}

	overview, err := s.stats.Overview(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]models.Weakness, len(weaknesses))
	copy(sorted, weaknesses)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	primary := sorted[0]
	rec := &models.Recommendation{
		PrimaryFocus: &models.FocusTag{
			Tag:      primary.Tag,
			Weight:   primary.Weight,
			Accuracy: primary.Accuracy(),
			Attempts: primary.TotalAttempts,
		},
		OverallAccuracy: overview.OverallAccuracy,
	}
	if len(sorted) > 1 {
		rec.SecondaryFocus = &models.FocusTag{
			Tag:      sorted[1].Tag,
			Weight:   sorted[1].Weight,
			Accuracy: sorted[1].Accuracy(),
			Attempts: sorted[1].TotalAttempts,
		}
	}

	switch {
	case primary.Weight > 2.0:
		rec.Message = fmt.Sprintf("Focus on '%s' - your accuracy is %.0f%% and needs improvement.", primary.Tag, primary.Accuracy())
	case primary.Weight > 1.5:
		rec.Message = fmt.Sprintf("'%s' is your weakest area at %.0f%% accuracy. Keep practicing!", primary.Tag, primary.Accuracy())
	default:
		rec.Message = "Your skills are well-balanced. Continue with mixed practice."
	}
	return rec, nil
}

// ProgressSummary reports overall and per-tag progress over the recent window.
func (s *Scheduler) ProgressSummary(ctx context.Context, days int) (*models.ProgressSummary, error) {
	log := logger.FromContext(ctx).WithPrefix("scheduler")
	log.Debug("building progress summary: days=%d", days)

	overview, err := s.stats.Overview(ctx)
	if err != nil {
		return nil, err
	}
	weaknesses, err := s.weaknesses.All(ctx)
	if err != nil {
		return nil, err
	}
	trend, err := s.stats.DailyTrend(ctx, days)
	if err != nil {
		return nil, err
	}
	bySubcategory, err := s.stats.AccuracyBySubcategory(ctx)
	if err != nil {
		return nil, err
	}

	performance := make([]models.TagPerformance, 0, len(weaknesses))
	for _, w := range weaknesses {
		performance = append(performance, models.TagPerformance{
			Tag:      w.Tag,
			Accuracy: roundTenth(w.Accuracy()),
			Attempts: w.TotalAttempts,
			Weight:   w.Weight,
			Status:   models.StatusForWeight(w.Weight),
		})
	}
	// Weakest tags first.
	sort.SliceStable(performance, func(i, j int) bool { return performance[i].Weight > performance[j].Weight })

	return &models.ProgressSummary{
		TotalAttempts:         overview.TotalAttempts,
		OverallAccuracy:       overview.OverallAccuracy,
		DailyTrend:            trend,
		TagPerformance:        performance,
		AccuracyBySubcategory: bySubcategory,
	}, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
