package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/andesair/checkin-api/internal/allocation"
	"github.com/andesair/checkin-api/internal/repository"
)

// retryAttempts and the doubling base delay mirror the policy the
// check-in operations have always run under: three attempts, 1s then
// 2s between them.
const retryAttempts = 3

// terminal reports whether an error is deterministic given current
// state: retrying without changing the request would reproduce it, so
// the operation must surface it immediately.
func terminal(err error) bool {
	for _, t := range []error{
		repository.ErrFlightNotFound,
		repository.ErrSeatNotFound,
		repository.ErrBoardingPassNotFound,
		repository.ErrSeatConflict,
		allocation.ErrSeatTaken,
		allocation.ErrSeatTypeMismatch,
	} {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// withRetry runs op up to retryAttempts times with exponential
// backoff, honoring context cancellation between attempts.  Both
// check-in operations are safe to re-run: an interrupted run leaves
// committed seats committed and a retry simply sees fewer passengers
// needing seats.
func withRetry(ctx context.Context, base time.Duration, op func() error) error {
	delay := base
	var err error
	for attempt := 1; attempt <= retryAttempts; attempt++ {
		if err = op(); err == nil || terminal(err) {
			return err
		}
		if attempt == retryAttempts {
			break
		}
		slog.Warn("operation failed, retrying", "attempt", attempt, "delay", delay, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
