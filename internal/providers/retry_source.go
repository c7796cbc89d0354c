package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/logging"
	"github.com/preston-bernstein/market-names/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with retry/backoff behavior and records every attempt.
type retryingSource struct {
	inner       Source
	name        string
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps the given source with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Not-found answers, refusals and context errors are returned without retrying.
func NewRetryingSource(inner Source, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       inner,
		name:        name,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error) {
	return withRetry(ctx, r, "markets", func(ctx context.Context) ([]markets.Description, error) {
		return r.inner.FetchMarkets(ctx, locale)
	})
}

func (r *retryingSource) FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error) {
	return withRetry(ctx, r, "profiles", func(ctx context.Context) ([]profiles.Competitor, error) {
		return r.inner.FetchProfiles(ctx, locale)
	})
}

func (r *retryingSource) FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error) {
	return withRetry(ctx, r, "events", r.inner.FetchEvents)
}

func withRetry[T any](ctx context.Context, r *retryingSource, op string, fetch func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		out, err := fetch(ctx)
		r.metrics.RecordSourceAttempt(r.name, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == r.maxAttempts || !retryable(err) {
			break
		}

		logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "source fetch retry",
			"op", op, logging.FieldAttempt, attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	logWithSource(ctx, r.logger, slog.LevelWarn, r.name, "source fetch failed", "op", op, "error", lastErr)
	return zero, lastErr
}
