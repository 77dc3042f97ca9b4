package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// drillPoolSize is how many tag questions are considered for a drill.
const drillPoolSize = 10

// drillSize is the maximum number of questions in a drill.
const drillSize = 5

// recentWindowDays defines "recently attempted" for drill candidate ranking.
const recentWindowDays = 7

// RecordAnswer feeds one answer into the session monitor. A correct answer
// resets the streak for every tag on the question; an incorrect one
// increments them. The first tag to reach the threshold triggers an
// emergency drill, its counter resets, and no further tags are checked on
// this call.
func (s *Scheduler) RecordAnswer(ctx context.Context, q models.Question, isCorrect bool) (*models.EmergencyDrill, error) {
	log := logger.FromContext(ctx).WithPrefix("scheduler")

	for _, tag := range q.SkillTags {
		if isCorrect {
			s.sessionErrors[tag] = 0
			continue
		}

		s.sessionErrors[tag]++
		if s.sessionErrors[tag] < s.cfg.ConsecutiveErrorThreshold {
			continue
		}

		log.Info("emergency drill triggered: tag=%s, streak=%d", tag, s.sessionErrors[tag])
		drill, err := s.buildDrill(ctx, tag)
		if err != nil {
			return nil, err
		}
		s.sessionErrors[tag] = 0
		return drill, nil
	}
	return nil, nil
}

// buildDrill assembles up to drillSize questions for the triggering tag,
// preferring ones not attempted within the recent window. Fewer available
// questions is not an error.
func (s *Scheduler) buildDrill(ctx context.Context, tag string) (*models.EmergencyDrill, error) {
	candidates, err := s.questions.ByTags(ctx, []string{tag}, drillPoolSize)
	if err != nil {
		return nil, err
	}

	recentLogs, err := s.studyLogs.RecentByTag(ctx, tag, recentWindowDays)
	if err != nil {
		return nil, err
	}
	recentIDs := make(map[int64]bool, len(recentLogs))
	for _, entry := range recentLogs {
		recentIDs[entry.QuestionID] = true
	}

	var nonRecent, recent []models.Question
	for _, q := range candidates {
		if recentIDs[q.ID] {
			recent = append(recent, q)
		} else {
			nonRecent = append(nonRecent, q)
		}
	}

	drillQuestions := nonRecent
	if len(drillQuestions) > drillSize {
		drillQuestions = drillQuestions[:drillSize]
	} else if len(drillQuestions) < drillSize {
		fill := drillSize - len(drillQuestions)
		if fill > len(recent) {
			fill = len(recent)
		}
		drillQuestions = append(drillQuestions, recent[:fill]...)
	}

	return &models.EmergencyDrill{
		ID:          uuid.NewString(),
		Tag:         tag,
		Questions:   drillQuestions,
		Reason:      fmt.Sprintf("Consecutive errors detected in '%s' questions", tag),
		TriggeredAt: s.now(),
	}, nil
}
