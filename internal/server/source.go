package server

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/market-names/internal/catalog"
	"github.com/preston-bernstein/market-names/internal/config"
	"github.com/preston-bernstein/market-names/internal/metrics"
	"github.com/preston-bernstein/market-names/internal/providers"
	"github.com/preston-bernstein/market-names/internal/providers/fixture"
)

func selectSource(cfg config.Config, logger *slog.Logger) providers.Source {
	switch cfg.Catalog.Source {
	case config.SourceFixture, "":
		return fixture.New()
	case config.SourceCatalog:
		return catalog.NewFSSource(cfg.Catalog.Path)
	default:
		if logger != nil {
			logger.Warn("unknown catalog source, falling back to fixture", slog.String("source", cfg.Catalog.Source))
		}
		return fixture.New()
	}
}

// sourceFactory assembles the catalog source with the shared wrappers.
// Calls pass retry, then breaker, then rate limit before reaching the backend.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) providers.Source {
	return f.wrap(cfg, selectSource(cfg, f.logger))
}

func (f sourceFactory) wrap(cfg config.Config, base providers.Source) providers.Source {
	name := normalizeSourceName(cfg.Catalog.Source, base)
	limited := providers.NewRateLimitedSource(base, name, cfg.Source.RateInterval, cfg.Source.RateBurst, f.logger, f.metrics)
	guarded := providers.NewBreakerSource(limited, name, cfg.Source.BreakerTimeout, f.logger, f.metrics)
	return providers.NewRetryingSource(guarded, name, f.logger, f.metrics, cfg.Source.RetryAttempts, cfg.Source.RetryBackoff)
}

// normalizeSourceName returns a lower-cased source name for metrics and logs,
// deriving one from the instance when none is configured.
func normalizeSourceName(raw string, source providers.Source) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if source != nil {
		return strings.ToLower(strings.TrimPrefix(fmt.Sprintf("%T", source), "*"))
	}
	return "source"
}
