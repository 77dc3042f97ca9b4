package sqlite

import (
	"fmt"
	"math"
)

// Helper functions shared across repository implementations

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatDaysAgo(days int) string {
	return fmt.Sprintf("-%d days", days)
}
