package config

import "time"

const (
	envPort              = "PORT"
	envDefaultLocale     = "DEFAULT_LOCALE"
	envExceptionHandling = "EXCEPTION_HANDLING"
	envCatalogSource     = "CATALOG_SOURCE"
	envCatalogPath       = "CATALOG_PATH"
	envCatalogLocales    = "CATALOG_LOCALES"
	envCatalogRefresh    = "CATALOG_REFRESH_INTERVAL"
	envSourceRate        = "SOURCE_RATE_INTERVAL"
	envSourceBurst       = "SOURCE_RATE_BURST"
	envSourceRetries     = "SOURCE_RETRY_ATTEMPTS"
	envSourceBackoff     = "SOURCE_RETRY_BACKOFF"
	envSourceBreaker     = "SOURCE_BREAKER_TIMEOUT"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"

	defaultPort              = "4000"
	defaultLocale            = "en"
	defaultExceptionHandling = "catch"
	defaultCatalogSource     = SourceFixture
	defaultCatalogPath       = "data/catalog"
	defaultCatalogLocales    = "en,de"
	defaultCatalogRefresh    = 5 * Duration(time.Minute)
	// Spacing between catalog source calls once the burst is spent.
	defaultSourceRate    = Duration(time.Second)
	defaultSourceBurst   = 3
	defaultSourceRetries = 3
	defaultSourceBackoff = 200 * Duration(time.Millisecond)
	defaultSourceBreaker = 30 * Duration(time.Second)
	defaultMetricsPort   = "9090"
	defaultServiceName   = "market-names"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)

// Catalog source kinds.
const (
	SourceFixture = "fixture"
	SourceCatalog = "catalog"
)
