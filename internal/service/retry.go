package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/pulse/internal/repository"
)

// Guard reads back lifecycle decisions, so a transient store error gets
// a few chances before the operation fails. Writes are never retried;
// the upsert conflict key already makes them safe to reissue manually.
const (
	guardReadAttempts = 3
	guardReadBackoff  = 100 * time.Millisecond
)

// withReadRetry calls fn up to guardReadAttempts times with a fixed
// backoff. A not-found result is a definitive answer and is returned
// immediately.
func withReadRetry[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < guardReadAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(guardReadBackoff):
			}
		}

		out, err := fn(ctx)
		if err == nil || errors.Is(err, repository.ErrNotFound) {
			return out, err
		}
		lastErr = err
	}
	return zero, lastErr
}
