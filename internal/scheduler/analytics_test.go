package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/scheduler"
	"github.com/yida7942-create/gmat-tutor/internal/testutil/mocks"
)

func TestRecommendedFocus_NoHistory(t *testing.T) {
	weaknesses := new(mocks.MockWeaknessRepository)
	weaknesses.On("All", mock.Anything).Return([]models.Weakness{}, nil)

	s := newTestScheduler(scheduler.DefaultConfig(), new(mocks.MockQuestionRepository), new(mocks.MockStudyLogRepository), weaknesses, new(mocks.MockStatsRepository))
	rec, err := s.RecommendedFocus(context.Background())

	require.NoError(t, err)
	assert.Nil(t, rec.PrimaryFocus)
	assert.Contains(t, rec.Message, "No study history yet")
}

func TestRecommendedFocus_PicksHeaviestTags(t *testing.T) {
	weaknessList := []models.Weakness{
		{Tag: "Inference", ErrorCount: 2, TotalAttempts: 10, Weight: 1.1},
		{Tag: "Assumption", ErrorCount: 7, TotalAttempts: 10, Weight: 2.3},
		{Tag: "Weaken", ErrorCount: 5, TotalAttempts: 10, Weight: 1.8},
	}

	weaknesses := new(mocks.MockWeaknessRepository)
	weaknesses.On("All", mock.Anything).Return(weaknessList, nil)
	stats := new(mocks.MockStatsRepository)
	stats.On("Overview", mock.Anything).Return(&models.Stats{TotalAttempts: 30, CorrectAttempts: 16, OverallAccuracy: 53.3}, nil)

	s := newTestScheduler(scheduler.DefaultConfig(), new(mocks.MockQuestionRepository), new(mocks.MockStudyLogRepository), weaknesses, stats)
	rec, err := s.RecommendedFocus(context.Background())

	require.NoError(t, err)
	require.NotNil(t, rec.PrimaryFocus)
	require.NotNil(t, rec.SecondaryFocus)
	assert.Equal(t, "Assumption", rec.PrimaryFocus.Tag)
	assert.Equal(t, "Weaken", rec.SecondaryFocus.Tag)
	assert.Equal(t, 30.0, rec.PrimaryFocus.Accuracy)
	assert.Equal(t, 53.3, rec.OverallAccuracy)
	assert.Contains(t, rec.Message, "Assumption", "a weight above 2.0 calls out the tag directly")
}

func TestRecommendedFocus_BalancedSkills(t *testing.T) {
	weaknessList := []models.Weakness{
		{Tag: "Inference", ErrorCount: 1, TotalAttempts: 10, Weight: 0.9},
		{Tag: "Assumption", ErrorCount: 2, TotalAttempts: 10, Weight: 1.1},
	}

	weaknesses := new(mocks.MockWeaknessRepository)
	weaknesses.On("All", mock.Anything).Return(weaknessList, nil)
	stats := new(mocks.MockStatsRepository)
	stats.On("Overview", mock.Anything).Return(&models.Stats{OverallAccuracy: 85.0}, nil)

	s := newTestScheduler(scheduler.DefaultConfig(), new(mocks.MockQuestionRepository), new(mocks.MockStudyLogRepository), weaknesses, stats)
	rec, err := s.RecommendedFocus(context.Background())

	require.NoError(t, err)
	assert.Contains(t, rec.Message, "well-balanced")
}

func TestProgressSummary_AssemblesReport(t *testing.T) {
	weaknessList := []models.Weakness{
		{Tag: "Inference", ErrorCount: 2, TotalAttempts: 10, Weight: 1.2},
		{Tag: "Assumption", ErrorCount: 7, TotalAttempts: 10, Weight: 2.3},
	}
	trend := []models.DailyTrendPoint{
		{Date: "2026-03-14", Total: 10, Correct: 7, Accuracy: 70.0},
		{Date: "2026-03-15", Total: 5, Correct: 4, Accuracy: 80.0},
	}
	bySubcategory := map[string]models.SubcategoryAccuracy{
		"CR": {Total: 12, Correct: 8, Accuracy: 66.7},
		"RC": {Total: 3, Correct: 3, Accuracy: 100.0},
	}

	weaknesses := new(mocks.MockWeaknessRepository)
	weaknesses.On("All", mock.Anything).Return(weaknessList, nil)
	stats := new(mocks.MockStatsRepository)
	stats.On("Overview", mock.Anything).Return(&models.Stats{TotalAttempts: 15, CorrectAttempts: 11, OverallAccuracy: 73.3}, nil)
	stats.On("DailyTrend", mock.Anything, 7).Return(trend, nil)
	stats.On("AccuracyBySubcategory", mock.Anything).Return(bySubcategory, nil)

	s := newTestScheduler(scheduler.DefaultConfig(), new(mocks.MockQuestionRepository), new(mocks.MockStudyLogRepository), weaknesses, stats)
	summary, err := s.ProgressSummary(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 15, summary.TotalAttempts)
	assert.Equal(t, 73.3, summary.OverallAccuracy)
	assert.Equal(t, trend, summary.DailyTrend)
	assert.Equal(t, bySubcategory, summary.AccuracyBySubcategory)

	require.Len(t, summary.TagPerformance, 2)
	assert.Equal(t, "Assumption", summary.TagPerformance[0].Tag, "weakest tag comes first")
	assert.Equal(t, models.StatusWeak, summary.TagPerformance[0].Status)
	assert.Equal(t, models.StatusImproving, summary.TagPerformance[1].Status)
	assert.Equal(t, 30.0, summary.TagPerformance[0].Accuracy)
}
