package cloud

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/custodia-labs/cleanhub/internal/logger"
)

// Class describes how a provider error should be handled.
type Class int

// Error classes.
const (
	// Permanent errors are returned immediately.
	Permanent Class = iota

	// Transient errors are retried with backoff.
	Transient

	// Throttled errors pause the limiter before retrying.
	Throttled
)

// Classifier maps a provider error to its class.
type Classifier func(err error) Class

// transfer runs provider calls through the limiter and retry policy.
type transfer struct {
	limiter    *RateLimiter
	maxRetries uint64
	base       time.Duration
	classify   Classifier
}

func newTransfer(limiter *RateLimiter, maxRetries int, classify Classifier) *transfer {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &transfer{
		limiter:    limiter,
		maxRetries: uint64(maxRetries),
		base:       DefaultBackoffBase,
		classify:   classify,
	}
}

// do calls op until it succeeds, fails permanently or retries run out.
func (t *transfer) do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(t.maxRetries, retry.NewExponential(t.base))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := t.limiter.Wait(ctx); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}

		switch t.classify(err) {
		case Throttled:
			t.limiter.RecordThrottle(0)
			logger.Debug("%s throttled, retrying: %v", name, err)
			return retry.RetryableError(err)
		case Transient:
			logger.Debug("%s failed, retrying: %v", name, err)
			return retry.RetryableError(err)
		default:
			return err
		}
	})
}

// classifyHTTPStatus classifies by HTTP status code.
func classifyHTTPStatus(code int) Class {
	switch {
	case code == 429:
		return Throttled
	case code == 408 || code >= 500:
		return Transient
	default:
		return Permanent
	}
}
