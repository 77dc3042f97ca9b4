package weakness

import (
	"math"
	"time"
)

// Factor bounds produced by the formula. Callers needing a hard clamp on the
// final weight apply MinWeight/MaxWeight themselves; the formula does not.
const (
	MinWeight = 0.5
	MaxWeight = 5.0
)

// ComputeWeight derives the scalar weakness weight for a tag.
//
// Weight = Base * ErrorFactor * TimeFactor:
//   - High error rate + recently seen  = high weight (needs practice)
//   - Low error rate + long time ago   = medium weight (keep-alive)
//   - Low error rate + recently seen   = low weight (mastered)
func ComputeWeight(errorCount, totalAttempts int, now, lastSeen time.Time) float64 {
	const baseWeight = 1.0

	// Error rate component (0.5 to 2.0).
	errorRate := 0.5
	if totalAttempts > 0 {
		errorRate = float64(errorCount) / float64(totalAttempts)
	}
	errorFactor := 0.5 + errorRate*1.5

	// Time decay component (0.8 to 1.5). A zero or future last_seen degrades
	// to zero days rather than failing.
	daysSince := 0
	if !lastSeen.IsZero() && now.After(lastSeen) {
		daysSince = int(now.Sub(lastSeen).Hours() / 24)
	}
	timeFactor := math.Min(1.5, 0.8+float64(daysSince)*0.05)

	// Keep-alive: a mastered tag that has gone stale gets a floor boost so it
	// stays in rotation.
	if errorRate < 0.3 && daysSince > 7 {
		timeFactor = math.Max(timeFactor, 1.2)
	}

	return round2(baseWeight * errorFactor * timeFactor)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
