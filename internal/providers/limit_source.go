package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/metrics"
)

const (
	defaultRateInterval = time.Second
	reasonRateLimited   = "rate_limited"
)

// rateLimitedSource spaces out calls to the wrapped source with a token bucket.
type rateLimitedSource struct {
	next    Source
	name    string
	limiter *rate.Limiter
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewRateLimitedSource returns a Source that admits one call per interval, allowing bursts of up to burst calls.
// Calls block until a token is available or the context ends.
func NewRateLimitedSource(next Source, name string, interval time.Duration, burst int, logger *slog.Logger, recorder *metrics.Recorder) Source {
	if interval <= 0 {
		interval = defaultRateInterval
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedSource{
		next:    next,
		name:    name,
		limiter: rate.NewLimiter(rate.Every(interval), burst),
		logger:  logger,
		metrics: recorder,
	}
}

func (s *rateLimitedSource) FetchMarkets(ctx context.Context, locale language.Tag) ([]markets.Description, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.FetchMarkets(ctx, locale)
}

func (s *rateLimitedSource) FetchProfiles(ctx context.Context, locale language.Tag) ([]profiles.Competitor, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.FetchProfiles(ctx, locale)
}

func (s *rateLimitedSource) FetchEvents(ctx context.Context) ([]sportevents.SportEvent, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.FetchEvents(ctx)
}

func (s *rateLimitedSource) wait(ctx context.Context) error {
	if s.next == nil {
		logWithSource(ctx, s.logger, slog.LevelWarn, s.name, "source unavailable")
		return ErrSourceUnavailable
	}
	if err := s.limiter.Wait(ctx); err != nil {
		s.metrics.RecordSourceRejected(s.name, reasonRateLimited)
		logWithSource(ctx, s.logger, slog.LevelWarn, s.name, "rate-limited fetch canceled", "error", err)
		return err
	}
	return nil
}
