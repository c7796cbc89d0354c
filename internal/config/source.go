package config

import "time"

// SourceConfig controls the resilience decorators around the catalog source.
type SourceConfig struct {
	RateInterval   time.Duration
	RateBurst      int
	RetryAttempts  int
	RetryBackoff   time.Duration
	BreakerTimeout time.Duration
}

func loadSource() SourceConfig {
	return SourceConfig{
		RateInterval:   durationEnvOrDefault(envSourceRate, defaultSourceRate),
		RateBurst:      intEnvOrDefault(envSourceBurst, defaultSourceBurst),
		RetryAttempts:  intEnvOrDefault(envSourceRetries, defaultSourceRetries),
		RetryBackoff:   durationEnvOrDefault(envSourceBackoff, defaultSourceBackoff),
		BreakerTimeout: durationEnvOrDefault(envSourceBreaker, defaultSourceBreaker),
	}
}
