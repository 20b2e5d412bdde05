package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is matches any criticalError so repeater's terminal-error check stops on it
func (e *criticalError) Is(target error) bool {
	_, ok := target.(*criticalError)
	return ok
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// retryPolicy tunes the exponential backoff applied to write operations that
// hit SQLite lock errors. Shared by all repositories on one connection pool.
type retryPolicy struct {
	attempts     int
	initialDelay time.Duration
	maxDelay     time.Duration
}

// normalized fills zero values with defaults
func (p retryPolicy) normalized() retryPolicy {
	if p.attempts == 0 {
		p.attempts = 5
	}
	if p.initialDelay == 0 {
		p.initialDelay = 100 * time.Millisecond
	}
	if p.maxDelay == 0 {
		p.maxDelay = 2 * time.Second
	}
	return p
}

// do runs op through an exponential backoff retrier; only lock errors are
// retried, anything wrapped in criticalError fails immediately
func (p retryPolicy) do(ctx context.Context, op func() error) error {
	retrier := repeater.NewBackoff(p.attempts, p.initialDelay, repeater.WithMaxDelay(p.maxDelay))
	err := retrier.Do(ctx, func() error {
		if opErr := op(); opErr != nil {
			if isLockError(opErr) {
				return opErr // repeater will retry this
			}
			return &criticalError{err: opErr}
		}
		return nil
	}, &criticalError{})
	var critical *criticalError
	if errors.As(err, &critical) {
		return critical.err
	}
	return err
}
