package config

import "time"

const (
	envPort          = "PORT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envRetryAttempts = "RETRY_ATTEMPTS"
	envRetryBackoff  = "RETRY_BACKOFF"

	defaultPort        = "4000"
	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-feed-service"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultRetries     = 3
	defaultBackoff     = 200 * Duration(time.Millisecond)
)
