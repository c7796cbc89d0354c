package config

import (
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/naming"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port              string
	DefaultLocale     language.Tag
	ExceptionHandling naming.ExceptionHandlingStrategy
	Catalog           CatalogConfig
	Source            SourceConfig
	Metrics           MetricsConfig
	Log               LogConfig
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	locale := localeEnvOrDefault(envDefaultLocale, language.MustParse(defaultLocale))
	return Config{
		Port:              envOrDefault(envPort, defaultPort),
		DefaultLocale:     locale,
		ExceptionHandling: strategyEnvOrDefault(envExceptionHandling, defaultExceptionHandling),
		Catalog:           loadCatalog(locale),
		Source:            loadSource(),
		Metrics:           loadMetrics(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

func strategyEnvOrDefault(key, defaultValue string) naming.ExceptionHandlingStrategy {
	if strategy, ok := naming.ParseExceptionHandlingStrategy(envOrDefault(key, defaultValue)); ok {
		return strategy
	}
	strategy, _ := naming.ParseExceptionHandlingStrategy(defaultValue)
	return strategy
}
