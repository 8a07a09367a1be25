package server

import (
	"time"

	"nhl-feed-service/internal/config"
)

const (
	readTimeout = 5 * time.Second
	idleTimeout = 60 * time.Second

	// writeMargin covers decoding, extraction and encoding after the last upstream attempt.
	writeMargin = 2 * time.Second

	fallbackUpstreamTimeout = 10 * time.Second
	fallbackRetryAttempts   = 3
	fallbackRetryBackoff    = 200 * time.Millisecond
	maxBackoffFactor        = 10
	backoffJitter           = 1.5
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor gives one request enough time for every upstream attempt plus the
// exponential waits between them, so a slow retry is answered instead of cut off.
func writeTimeoutFor(cfg config.Config) time.Duration {
	perAttempt := cfg.MySportsFeeds.Timeout
	if perAttempt <= 0 {
		perAttempt = fallbackUpstreamTimeout
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = fallbackRetryAttempts
	}
	delay := cfg.RetryBackoff
	if delay <= 0 {
		delay = fallbackRetryBackoff
	}

	maxDelay := delay * maxBackoffFactor

	budget := perAttempt * time.Duration(attempts)
	for i := 1; i < attempts; i++ {
		budget += time.Duration(float64(delay) * backoffJitter)
		delay = min(delay*2, maxDelay)
	}
	return budget + writeMargin
}
