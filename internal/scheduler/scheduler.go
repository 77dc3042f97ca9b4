package scheduler

import (
	"math/rand"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

// Scheduler generates daily plans from the current weakness records and
// watches the live answer stream for emergency-drill conditions. It is
// synchronous and single-writer; the only mutable state is the per-session
// consecutive-error counters.
type Scheduler struct {
	cfg        Config
	questions  repository.QuestionRepository
	studyLogs  repository.StudyLogRepository
	weaknesses repository.WeaknessRepository
	stats      repository.StatsRepository

	rng *rand.Rand
	now func() time.Time

	// tag -> consecutive errors in the current session.
	sessionErrors map[string]int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRand sets the random source. Tests inject a seeded source for
// deterministic plans.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scheduler) {
		s.rng = rng
	}
}

// WithNow sets the clock.
func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// New creates a Scheduler backed by the given repositories.
func New(cfg Config, questions repository.QuestionRepository, studyLogs repository.StudyLogRepository, weaknesses repository.WeaknessRepository, stats repository.StatsRepository, opts ...Option) *Scheduler {
	s := &Scheduler{
		cfg:           cfg,
		questions:     questions,
		studyLogs:     studyLogs,
		weaknesses:    weaknesses,
		stats:         stats,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
		sessionErrors: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResetSession clears the per-tag error streaks. Called at the start of a
// new practice session; there is no implicit or timeout-based reset.
func (s *Scheduler) ResetSession() {
	s.sessionErrors = make(map[string]int)
}
