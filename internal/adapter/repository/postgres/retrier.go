package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
)

// Retryable PostgreSQL error codes.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
)

const (
	defaultMaxRetries      = 3
	defaultInitialInterval = 50 * time.Millisecond
	defaultMaxInterval     = time.Second
	defaultMaxElapsedTime  = 10 * time.Second
)

// Retrier reruns database operations that fail with a deadlock or a
// serialization failure, backing off exponentially between attempts.
// Concurrent writes against the same cut date can hit both.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          *slog.Logger
}

func NewRetrier() *Retrier {
	return &Retrier{
		maxRetries:      defaultMaxRetries,
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
		maxElapsedTime:  defaultMaxElapsedTime,
		logger:          slog.Default(),
	}
}

// Retry runs op, retrying on retryable errors until the attempt or
// time budget is spent. Any other error is returned immediately.
func (r *Retrier) Retry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	attempt := 0

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return backoff.Permanent(err)
		}

		attempt++
		if attempt > r.maxRetries {
			return backoff.Permanent(err)
		}

		r.logger.Warn("retrying database operation",
			"error", err,
			"attempt", attempt,
		)
		return err
	}, backoff.WithContext(b, ctx))
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrDeadlock || pgErr.Code == pgErrSerializationFailure
}
