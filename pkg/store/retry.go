package store

import (
	"context"
	stderrors "errors"
	"time"
)

// Connection retry settings for remote backends. A store started next to
// its database container usually needs a few seconds before the first ping
// answers.
const (
	connectAttempts = 3
	connectDelay    = 500 * time.Millisecond
)

// retryableError marks a failure that should trigger another attempt.
type retryableError struct{ err error }

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// retry runs fn up to attempts times, doubling delay after each failure.
// Only errors wrapped in retryableError are retried; the unwrapped cause of
// the last failure is returned, or ctx.Err() if ctx ends while waiting.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var last error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		var r *retryableError
		if !stderrors.As(err, &r) {
			return err
		}
		last = r.err

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return last
}

// ping retries a connectivity check with the connect settings.
func ping(ctx context.Context, check func(context.Context) error) error {
	return retry(ctx, connectAttempts, connectDelay, func() error {
		if err := check(ctx); err != nil {
			return &retryableError{err}
		}
		return nil
	})
}
