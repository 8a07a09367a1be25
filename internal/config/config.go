package config

// Config holds runtime configuration for the CLI and server.
type Config struct {
	Port          string
	LogLevel      string
	LogFormat     string
	RetryAttempts int
	RetryBackoff  Duration
	MySportsFeeds MySportsFeedsConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:          envOrDefault(envPort, defaultPort),
		LogLevel:      envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:     envOrDefault(envLogFormat, defaultLogFormat),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetries),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultBackoff),
		MySportsFeeds: loadMySportsFeeds(),
		Metrics:       loadMetrics(),
	}
}
