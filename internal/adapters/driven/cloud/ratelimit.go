package cloud

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default transfer limits.
const (
	DefaultRequestsPerSecond = 10.0
	DefaultBurstSize         = 10
	DefaultMaxRetries        = 3
	DefaultBackoffBase       = 500 * time.Millisecond

	// defaultThrottleBackoff applies when a provider throttles without a hint.
	defaultThrottleBackoff = 5 * time.Second
)

// RateLimiter paces object-store requests with a token bucket and honours
// backoff periods requested by throttling responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second.
// A non-positive rps uses DefaultRequestsPerSecond.
func NewRateLimiter(rps float64) *RateLimiter {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	if burst > DefaultBurstSize {
		burst = DefaultBurstSize
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Wait blocks until a request may be made.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordThrottle pauses all requests for d.
// A non-positive d uses a default backoff.
func (r *RateLimiter) RecordThrottle(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d <= 0 {
		d = defaultThrottleBackoff
	}
	if until := time.Now().Add(d); until.After(r.retryAt) {
		r.retryAt = until
	}
}
