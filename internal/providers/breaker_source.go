package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/metrics"
)

const (
	defaultBreakerTimeout = 30 * time.Second
	breakerTripFailures   = 5
	reasonCircuitOpen     = "circuit_open"
)

// breakerSource stops calling a failing source until its cool-down expires.
type breakerSource struct {
	next    Source
	name    string
	cb      *gobreaker.CircuitBreaker
	metrics *metrics.Recorder
}

// NewBreakerSource opens the circuit after consecutive failures and lets a single
// probe through once timeout has elapsed. Not-found answers do not count as failures.
func NewBreakerSource(next Source, name string, timeout time.Duration, logger *slog.Logger, recorder *metrics.Recorder) Source {
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	b := &breakerSource{next: next, name: name, metrics: recorder}
	b.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerTripFailures
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			_, notFound := AsNotFoundError(err)
			return notFound
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logWithSource(context.Background(), logger, slog.LevelWarn, name, "circuit breaker state changed",
				"from_state", from.String(), "to_state", to.String())
		},
	})
	return b
}

func (b *breakerSource) FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error) {
	return guard(b, func() ([]markets.Description, error) { return b.next.FetchMarkets(ctx, locale) })
}

func (b *breakerSource) FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error) {
	return guard(b, func() ([]profiles.Competitor, error) { return b.next.FetchProfiles(ctx, locale) })
}

func (b *breakerSource) FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error) {
	return guard(b, func() ([]sportevents.SportEvent, error) { return b.next.FetchEvents(ctx) })
}

func guard[T any](b *breakerSource, fetch func() (T, error)) (T, error) {
	var zero T
	out, err := b.cb.Execute(func() (interface{}, error) {
		return fetch()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		b.metrics.RecordSourceRejected(b.name, reasonCircuitOpen)
		return zero, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, b.name, err)
	}
	if err != nil {
		return zero, err
	}
	typed, _ := out.(T)
	return typed, nil
}
