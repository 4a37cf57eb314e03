package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown cache backend")

// RetryableError marks a failure worth retrying, such as a refused
// connection while a backend is still starting.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is, or wraps, a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// connectAttempts and connectDelay bound retryConnect.
var (
	connectAttempts = 3
	connectDelay    = 500 * time.Millisecond
)

// retryConnect calls fn until it succeeds, returns a non-retryable error
// or runs out of attempts. The delay doubles after each failure.
func retryConnect(ctx context.Context, fn func() error) error {
	delay := connectDelay
	var lastErr error
	for i := range connectAttempts {
		lastErr = fn()
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		if i == connectAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
