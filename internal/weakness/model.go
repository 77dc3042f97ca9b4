package weakness

import (
	"context"
	"time"

	"github.com/yida7942-create/gmat-tutor/internal/logger"
	"github.com/yida7942-create/gmat-tutor/internal/models"
	"github.com/yida7942-create/gmat-tutor/internal/repository"
)

// Model owns the weakness records. It is the only writer; the plan
// generator reads the records through the repository.
type Model struct {
	weaknesses repository.WeaknessRepository
}

// NewModel creates a weakness model backed by the given repository.
func NewModel(weaknesses repository.WeaknessRepository) *Model {
	return &Model{weaknesses: weaknesses}
}

// Update upserts the weakness record for tag after one attempt.
// Unknown tags are created on first use; this is never an error.
func (m *Model) Update(ctx context.Context, tag string, wasError bool, now time.Time) (*models.Weakness, error) {
	log := logger.FromContext(ctx).WithPrefix("weakness")

	existing, err := m.weaknesses.ByTag(ctx, tag)
	if err != nil {
		return nil, err
	}

	var w models.Weakness
	if existing == nil {
		// First observation of this tag. An error on first contact weighs
		// the tag immediately; a correct answer starts it neutral.
		w = models.Weakness{
			Tag:           tag,
			TotalAttempts: 1,
			LastSeen:      now,
			Weight:        1.0,
		}
		if wasError {
			w.ErrorCount = 1
			w.Weight = 2.0
		}
	} else {
		w = *existing
		w.TotalAttempts++
		if wasError {
			w.ErrorCount++
		}
		w.Weight = ComputeWeight(w.ErrorCount, w.TotalAttempts, now, existing.LastSeen)
		w.LastSeen = now
	}

	if err := m.weaknesses.Upsert(ctx, w); err != nil {
		return nil, err
	}
	log.Debug("weakness updated: tag=%s, errors=%d/%d, weight=%.2f", w.Tag, w.ErrorCount, w.TotalAttempts, w.Weight)
	return &w, nil
}

// UpdateAll applies Update for every skill tag on a question.
func (m *Model) UpdateAll(ctx context.Context, tags []string, wasError bool, now time.Time) error {
	for _, tag := range tags {
		if _, err := m.Update(ctx, tag, wasError, now); err != nil {
			return err
		}
	}
	return nil
}
