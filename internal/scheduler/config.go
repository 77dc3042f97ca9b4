package scheduler

// Config holds the scheduler tunables.
type Config struct {
	// DefaultQuestionCount is used when the caller passes a non-positive target.
	DefaultQuestionCount int

	// MaxConsecutiveSameTag bounds runs of questions sharing a skill tag.
	// Enforcement is best-effort (single forward repair pass).
	MaxConsecutiveSameTag int

	// KeepAliveQuota is the fraction of each plan reserved for questions from
	// mastered tags, so easy material keeps appearing occasionally.
	KeepAliveQuota float64

	// ConsecutiveErrorThreshold is the per-tag error streak that triggers an
	// emergency drill within a session.
	ConsecutiveErrorThreshold int
}

// DefaultConfig returns the standard scheduler configuration.
func DefaultConfig() Config {
	return Config{
		DefaultQuestionCount:      20,
		MaxConsecutiveSameTag:     3,
		KeepAliveQuota:            0.10,
		ConsecutiveErrorThreshold: 3,
	}
}
