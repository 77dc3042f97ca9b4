package models

import "time"

// StudyLog records one answered question. Logs are append-only; the
// scheduler only ever reads aggregates over them.
type StudyLog struct {
	ID            int64     `json:"id"`
	QuestionID    int64     `json:"question_id"`
	UserAnswer    int       `json:"user_answer"`
	IsCorrect     bool      `json:"is_correct"`
	TimeTakenSecs int       `json:"time_taken"`
	ErrorCategory string    `json:"error_category,omitempty"` // Understanding, Reasoning, Execution
	ErrorDetail   string    `json:"error_detail,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
