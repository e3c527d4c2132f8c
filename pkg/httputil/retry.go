package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx responses) with this type
// so that [Retry] knows to attempt the operation again after a fixed delay.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// RateLimitedError wraps an error caused by remote API throttling.
// [Retry] treats it as retryable but waits proportionally to the attempt
// index, since rate limits are self-correcting given enough time.
type RateLimitedError struct{ Err error }

func (e *RateLimitedError) Error() string { return e.Err.Error() }
func (e *RateLimitedError) Unwrap() error { return e.Err }

// Policy bounds the retry loop. Attempts is the total number of tries
// including the first; Delay is the base wait between tries.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy is suitable for most API interactions: 3 attempts with a
// 2 second base delay.
var DefaultPolicy = Policy{Attempts: 3, Delay: 2 * time.Second}

// Retry executes fn up to p.Attempts times.
//
// Errors wrapped in [RetryableError] are retried after a fixed p.Delay.
// Errors wrapped in [RateLimitedError] are retried after p.Delay multiplied
// by the attempt index plus one (linear backoff). Any other error is
// returned immediately. Returns the last error if all attempts fail, or
// ctx.Err() if cancelled while waiting.
func Retry(ctx context.Context, p Policy, fn func() error) error {
	attempts := max(p.Attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		var wait time.Duration
		switch {
		case isRateLimited(err):
			wait = p.Delay * time.Duration(i+1)
		case isRetryable(err):
			wait = p.Delay
		default:
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

func isRateLimited(err error) bool {
	return errors.As(err, new(*RateLimitedError))
}
