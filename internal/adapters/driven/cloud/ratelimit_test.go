package cloud

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_Defaults(t *testing.T) {
	r := NewRateLimiter(0)
	assert.InDelta(t, DefaultRequestsPerSecond, float64(r.limiter.Limit()), 1e-9)
	assert.Equal(t, DefaultBurstSize, r.limiter.Burst())

	slow := NewRateLimiter(0.5)
	assert.Equal(t, 1, slow.limiter.Burst())
}

func TestRateLimiter_RecordThrottle(t *testing.T) {
	r := NewRateLimiter(100)
	r.RecordThrottle(time.Hour)
	until := r.retryAt
	assert.WithinDuration(t, time.Now().Add(time.Hour), until, time.Minute)

	// A shorter throttle never shortens an existing one.
	r.RecordThrottle(time.Millisecond)
	assert.Equal(t, until, r.retryAt)
}

func TestRateLimiter_RecordThrottleDefault(t *testing.T) {
	r := NewRateLimiter(100)
	r.RecordThrottle(0)
	assert.WithinDuration(t, time.Now().Add(defaultThrottleBackoff), r.retryAt, time.Second)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	r := NewRateLimiter(100)
	r.RecordThrottle(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_Wait(t *testing.T) {
	r := NewRateLimiter(100)
	require.NoError(t, r.Wait(context.Background()))
}
