package naming

import (
	"log/slog"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/metrics"
)

// Factory holds the collaborators shared by every Provider it builds.
type Factory struct {
	markets  MarketCache
	profiles ProfileCache
	strategy ExceptionHandlingStrategy
	flex     FlexScoreFormatter
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// Option configures a Factory.
type Option func(*Factory)

// WithExceptionHandling sets whether failures are returned or swallowed.
func WithExceptionHandling(strategy ExceptionHandlingStrategy) Option {
	return func(f *Factory) { f.strategy = strategy }
}

// WithFlexScoreFormatter replaces the default ScoreFormatter.
func WithFlexScoreFormatter(formatter FlexScoreFormatter) Option {
	return func(f *Factory) {
		if formatter != nil {
			f.flex = formatter
		}
	}
}

// WithLogger sets the logger that failed generations are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) { f.logger = logger }
}

// WithMetrics sets the recorder for name generation attempts and failures.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(f *Factory) { f.metrics = recorder }
}

// NewFactory builds a Factory. The default strategy is Catch.
func NewFactory(marketCache MarketCache, profileCache ProfileCache, opts ...Option) *Factory {
	f := &Factory{
		markets:  marketCache,
		profiles: profileCache,
		strategy: Catch,
		flex:     ScoreFormatter{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Strategy reports the exception handling strategy given to built providers.
func (f *Factory) Strategy() ExceptionHandlingStrategy {
	return f.strategy
}

// Build returns a Provider for one market of one sport event. The specifiers are copied.
func (f *Factory) Build(event sportevents.SportEvent, marketID int, specifiers map[string]string) *Provider {
	specs := markets.CloneSpecifiers(specifiers)
	if specs == nil {
		specs = map[string]string{}
	}
	return &Provider{
		markets:    f.markets,
		profiles:   f.profiles,
		event:      event,
		marketID:   marketID,
		specifiers: specs,
		strategy:   f.strategy,
		flex:       f.flex,
		logger:     f.logger,
		metrics:    f.metrics,
		preloaded:  newLocaleSet(),
	}
}
