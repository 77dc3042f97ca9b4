package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/tutor"
)

// defaultTTL bounds how long a prefetched explanation stays servable. The
// text is deterministic enough that staleness only matters if the question
// bank is re-imported.
const defaultTTL = 30 * time.Minute

type cacheKey struct {
	questionID int64
	userAnswer int
}

type cacheEntry struct {
	text      string
	expiresAt time.Time
}

// ExplanationCache holds prefetched explanations so the review screen does
// not wait on the AI provider. Safe for concurrent use.
type ExplanationCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

func NewExplanationCache() *ExplanationCache {
	return &ExplanationCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     defaultTTL,
	}
}

// Get returns the cached explanation for a question and answer, if present
// and not expired.
func (c *ExplanationCache) Get(questionID int64, userAnswer int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{questionID: questionID, userAnswer: userAnswer}
	entry, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", false
	}
	return entry.text, true
}

func (c *ExplanationCache) put(questionID int64, userAnswer int, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{questionID: questionID, userAnswer: userAnswer}] = cacheEntry{
		text:      text,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// ExplanationJob prefetches the AI explanation for a freshly answered
// question into the cache.
type ExplanationJob struct {
	Tutor      *tutor.Client
	Cache      *ExplanationCache
	Question   models.Question
	UserAnswer int
	IsCorrect  bool
}

func (j *ExplanationJob) Name() string {
	return fmt.Sprintf("explanation-prefetch-%d", j.Question.ID)
}

func (j *ExplanationJob) Run(ctx context.Context) error {
	if _, ok := j.Cache.Get(j.Question.ID, j.UserAnswer); ok {
		return nil
	}
	text := j.Tutor.ExplainFailure(ctx, j.Question, j.UserAnswer, j.IsCorrect)
	j.Cache.put(j.Question.ID, j.UserAnswer, text)
	return nil
}
