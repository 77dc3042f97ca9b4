package models

import "time"

// Weakness tracks the learner's performance on one skill tag.
// One record exists per tag that has ever been attempted; records are
// upserted by the weakness model after every attempt and never deleted.
type Weakness struct {
	Tag           string    `json:"tag"`
	ErrorCount    int       `json:"error_count"`
	TotalAttempts int       `json:"total_attempts"`
	LastSeen      time.Time `json:"last_seen"`
	Weight        float64   `json:"weight"`
}

// Accuracy returns the historical accuracy for the tag as a percentage.
func (w Weakness) Accuracy() float64 {
	if w.TotalAttempts == 0 {
		return 0
	}
	return float64(w.TotalAttempts-w.ErrorCount) / float64(w.TotalAttempts) * 100
}
