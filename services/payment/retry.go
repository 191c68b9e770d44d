package payment

import (
	"context"
	"time"
)

// SleepFunc pauses between retry attempts. Injected so tests can run the
// policy without real time passing.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryPolicy is a bounded retry with a pluggable backoff curve.
type RetryPolicy struct {
	MaxAttempts int
	// Backoff returns how long to wait after the given failed attempt
	// (1-based) before the next one starts.
	Backoff func(attempt int) time.Duration
	Sleep   SleepFunc
}

// LinearBackoff waits attempt * step after each failed attempt.
func LinearBackoff(step time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// NewRetryPolicy returns the production policy: maxAttempts total attempts
// with linear one-second backoff and a context-aware sleep.
func NewRetryPolicy(maxAttempts int) RetryPolicy {
	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     LinearBackoff(time.Second),
		Sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs op until it succeeds or MaxAttempts is reached. Attempts are
// strictly sequential; the error of the final attempt is returned as-is.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if attempt >= p.MaxAttempts {
			return err
		}
		if serr := sleep(ctx, p.Backoff(attempt)); serr != nil {
			return serr
		}
	}
}
