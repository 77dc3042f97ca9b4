package models

import "time"

// DailyPlan is an ordered sequence of questions for one practice session.
// Plans are immutable once generated; the caller consumes them one
// question at a time.
type DailyPlan struct {
	ID                   string     `json:"id"`
	Questions            []Question `json:"questions"`
	EstimatedTimeMinutes int        `json:"estimated_time_minutes"`
	FocusTags            []string   `json:"focus_tags"`
	CreatedAt            time.Time  `json:"created_at"`
}

// IsEmpty reports whether the plan contains no questions. An empty plan is
// a valid result (empty candidate pool), not an error.
func (p DailyPlan) IsEmpty() bool {
	return len(p.Questions) == 0
}

// EmergencyDrill is a short remedial set triggered when the learner keeps
// missing questions on the same tag within a session.
type EmergencyDrill struct {
	ID          string     `json:"id"`
	Tag         string     `json:"tag"`
	Questions   []Question `json:"questions"`
	Reason      string     `json:"reason"`
	TriggeredAt time.Time  `json:"triggered_at"`
}
