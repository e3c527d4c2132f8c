package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), Policy{Attempts: 3, Delay: time.Millisecond}, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() = %v, want nil", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), Policy{Attempts: 3, Delay: time.Millisecond}, func() error {
		calls++
		if calls < 2 {
			return &RetryableError{Err: errors.New("status 500")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() = %v, want nil", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestRetryRateLimitedThenSuccess(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), Policy{Attempts: 3, Delay: time.Millisecond}, func() error {
		calls++
		if calls < 3 {
			return &RateLimitedError{Err: errors.New("rate limited")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() = %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryNonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("forbidden")
	calls := 0
	err := Retry(context.Background(), Policy{Attempts: 5, Delay: time.Millisecond}, func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("Retry() = %v, want %v", err, fatal)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	transient := errors.New("flaky")
	calls := 0
	err := Retry(context.Background(), Policy{Attempts: 3, Delay: time.Millisecond}, func() error {
		calls++
		return &RetryableError{Err: transient}
	})
	if !errors.Is(err, transient) {
		t.Fatalf("Retry() = %v, want last error %v", err, transient)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryZeroAttemptsStillRunsOnce(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), Policy{Attempts: 0, Delay: time.Millisecond}, func() error {
		calls++
		return nil
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, Policy{Attempts: 3, Delay: time.Minute}, func() error {
		return &RetryableError{Err: errors.New("transient")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Retry() = %v, want context.Canceled", err)
	}
}

func TestRateLimitedWaitGrowsLinearly(t *testing.T) {
	const delay = 20 * time.Millisecond

	var stamps []time.Time
	_ = Retry(context.Background(), Policy{Attempts: 3, Delay: delay}, func() error {
		stamps = append(stamps, time.Now())
		return &RateLimitedError{Err: errors.New("rate limited")}
	})

	if len(stamps) != 3 {
		t.Fatalf("attempts = %d, want 3", len(stamps))
	}
	// Waits should be ~delay then ~2*delay.
	first := stamps[1].Sub(stamps[0])
	second := stamps[2].Sub(stamps[1])
	if first < delay {
		t.Errorf("first wait = %v, want >= %v", first, delay)
	}
	if second < 2*delay {
		t.Errorf("second wait = %v, want >= %v", second, 2*delay)
	}
}

func TestErrorWrappersUnwrap(t *testing.T) {
	inner := errors.New("inner")

	var re *RetryableError
	if !errors.As(&RetryableError{Err: inner}, &re) {
		t.Error("errors.As RetryableError failed")
	}
	if !errors.Is(&RateLimitedError{Err: inner}, inner) {
		t.Error("RateLimitedError does not unwrap to inner error")
	}
}
