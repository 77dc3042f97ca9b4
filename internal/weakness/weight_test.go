package weakness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yida7942-create/gmat-tutor/internal/weakness"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestComputeWeight_HighErrorRateRecent(t *testing.T) {
	// 6 errors out of 10, seen 3 days ago:
	// errorFactor = 0.5 + 0.6*1.5 = 1.4, timeFactor = 0.8 + 3*0.05 = 0.95
	lastSeen := now.AddDate(0, 0, -3)

	w := weakness.ComputeWeight(6, 10, now, lastSeen)

	assert.Equal(t, 1.33, w)
}

func TestComputeWeight_KeepAliveBoost(t *testing.T) {
	// 1 error out of 10 and stale for 8 days: low error rate would let the tag
	// drop out of rotation, so the time factor gets floored at 1.2.
	lastSeen := now.AddDate(0, 0, -8)

	w := weakness.ComputeWeight(1, 10, now, lastSeen)

	assert.Equal(t, 0.78, w)
}

func TestComputeWeight_NoKeepAliveWhenRecentlySeen(t *testing.T) {
	lastSeen := now.AddDate(0, 0, -2)

	w := weakness.ComputeWeight(1, 10, now, lastSeen)

	// errorFactor = 0.65, timeFactor = 0.9
	assert.Equal(t, 0.59, w)
}

func TestComputeWeight_ZeroAttemptsUsesNeutralRate(t *testing.T) {
	w := weakness.ComputeWeight(0, 0, now, now)

	// errorRate defaults to 0.5: errorFactor = 1.25, timeFactor = 0.8
	assert.Equal(t, 1.0, w)
}

func TestComputeWeight_ZeroLastSeenDegradesToZeroDays(t *testing.T) {
	w := weakness.ComputeWeight(5, 10, now, time.Time{})

	// Same result as if the tag were seen today.
	sameDay := weakness.ComputeWeight(5, 10, now, now)
	assert.Equal(t, sameDay, w)
}

func TestComputeWeight_FutureLastSeenDegradesToZeroDays(t *testing.T) {
	future := now.AddDate(0, 0, 5)

	w := weakness.ComputeWeight(5, 10, now, future)

	sameDay := weakness.ComputeWeight(5, 10, now, now)
	assert.Equal(t, sameDay, w)
}

func TestComputeWeight_TimeFactorCapped(t *testing.T) {
	// All errors, a month stale: timeFactor caps at 1.5, errorFactor at 2.0.
	lastSeen := now.AddDate(0, 0, -30)

	w := weakness.ComputeWeight(10, 10, now, lastSeen)

	assert.Equal(t, 3.0, w)
}

func TestComputeWeight_MonotonicInErrorRate(t *testing.T) {
	lastSeen := now.AddDate(0, 0, -1)

	prev := 0.0
	for errors := 0; errors <= 10; errors++ {
		w := weakness.ComputeWeight(errors, 10, now, lastSeen)
		assert.GreaterOrEqual(t, w, prev, "weight should not decrease as error rate grows (errors=%d)", errors)
		prev = w
	}
}
