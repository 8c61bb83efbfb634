package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Retry configuration for reads from slow or network-mounted folders.
const (
	maxRetries     = 2
	initialBackoff = 250 * time.Millisecond
	maxBackoff     = 2 * time.Second
)

// retryWithBackoff runs fn until it succeeds, fails with a permanent error,
// or the retries are exhausted.
func retryWithBackoff(ctx context.Context, operation string, fn func() error) error {
	var lastErr error
	backoff := initialBackoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%s: cancelled after %d attempts: %w", operation, attempt, lastErr)
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: cancelled: %w", operation, err)
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryableError(err) {
			return fmt.Errorf("%s: %w", operation, err)
		}
	}

	return fmt.Errorf("%s: failed after %d attempts: %w", operation, maxRetries+1, lastErr)
}

// isRetryableError checks if an error is likely temporary.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return false
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range []string{"locked", "busy", "timeout", "temporar", "i/o", "connection", "stale"} {
		if strings.Contains(errStr, hint) {
			return true
		}
	}
	return false
}
