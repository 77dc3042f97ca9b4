package models

// Tag status classification thresholds, by current weakness weight.
const (
	StatusWeak      = "weak"      // weight > 1.5
	StatusImproving = "improving" // weight > 1.0
	StatusStrong    = "strong"
)

// FocusTag describes one tag the learner should concentrate on.
type FocusTag struct {
	Tag      string  `json:"tag"`
	Weight   float64 `json:"weight"`
	Accuracy float64 `json:"accuracy"`
	Attempts int     `json:"attempts"`
}

// Recommendation is the result of analyzing the current weakness records.
type Recommendation struct {
	PrimaryFocus    *FocusTag `json:"primary_focus,omitempty"`
	SecondaryFocus  *FocusTag `json:"secondary_focus,omitempty"`
	Message         string    `json:"message"`
	OverallAccuracy float64   `json:"overall_accuracy"`
}

// TagPerformance summarizes one tag for the progress report.
type TagPerformance struct {
	Tag      string  `json:"tag"`
	Accuracy float64 `json:"accuracy"`
	Attempts int     `json:"attempts"`
	Weight   float64 `json:"weight"`
	Status   string  `json:"status"`
}

// DailyTrendPoint is one day's aggregate in the recent-activity trend.
type DailyTrendPoint struct {
	Date     string  `json:"date"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// SubcategoryAccuracy aggregates attempts for one question subcategory.
type SubcategoryAccuracy struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// ProgressSummary is the full progress report returned to the caller.
type ProgressSummary struct {
	TotalAttempts         int                            `json:"total_attempts"`
	OverallAccuracy       float64                        `json:"overall_accuracy"`
	DailyTrend            []DailyTrendPoint              `json:"daily_trend"`
	TagPerformance        []TagPerformance               `json:"tag_performance"`
	AccuracyBySubcategory map[string]SubcategoryAccuracy `json:"accuracy_by_type"`
}

// Stats holds bank-wide counters.
type Stats struct {
	TotalQuestions  int     `json:"total_questions"`
	TotalAttempts   int     `json:"total_attempts"`
	CorrectAttempts int     `json:"correct_attempts"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}

// StatusForWeight classifies a weakness weight into a display status.
func StatusForWeight(weight float64) string {
	switch {
	case weight > 1.5:
		return StatusWeak
	case weight > 1.0:
		return StatusImproving
	default:
		return StatusStrong
	}
}
