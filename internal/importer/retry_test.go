package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"testing/synctest"
	"time"
)

func TestRetryWithBackoff_SuccessOnFirstAttempt(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0

		err := retryWithBackoff(context.Background(), "read", func() error {
			calls++
			return nil
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}

func TestRetryWithBackoff_SuccessAfterRetries(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0

		err := retryWithBackoff(context.Background(), "read", func() error {
			calls++
			if calls < 3 {
				return errors.New("resource temporarily unavailable")
			}
			return nil
		})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})
}

func TestRetryWithBackoff_BackoffTiming(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callTimes []time.Time

		err := retryWithBackoff(context.Background(), "read", func() error {
			callTimes = append(callTimes, time.Now())
			return errors.New("device busy")
		})

		if err == nil {
			t.Fatal("expected error after exhausting retries")
		}
		if len(callTimes) != 1+maxRetries {
			t.Fatalf("calls = %d, want %d", len(callTimes), 1+maxRetries)
		}
		if d := callTimes[1].Sub(callTimes[0]); d < initialBackoff {
			t.Errorf("first retry delay = %v, want >= %v", d, initialBackoff)
		}
		if d := callTimes[2].Sub(callTimes[1]); d < 2*initialBackoff {
			t.Errorf("second retry delay = %v, want >= %v", d, 2*initialBackoff)
		}
	})
}

func TestRetryWithBackoff_ContextCancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		done := make(chan error)
		go func() {
			done <- retryWithBackoff(ctx, "read", func() error {
				calls++
				return errors.New("i/o timeout")
			})
		}()

		// Cancel during the first backoff wait.
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		cancel()

		if err := <-done; err == nil {
			t.Fatal("expected error after context cancellation")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}

func TestRetryWithBackoff_NonRetryableError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		calls := 0

		err := retryWithBackoff(context.Background(), "read", func() error {
			calls++
			return errors.New("unsupported format")
		})

		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("file is locked"), true},
		{errors.New("device or resource busy"), true},
		{errors.New("read: i/o error"), true},
		{errors.New("stale NFS file handle"), true},
		{fmt.Errorf("open: %w", os.ErrDeadlineExceeded), true},
		{fmt.Errorf("open: %w", os.ErrNotExist), false},
		{fmt.Errorf("open: %w", os.ErrPermission), false},
		{errors.New("no tags found"), false},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
