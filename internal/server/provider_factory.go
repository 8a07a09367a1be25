package server

import (
	"log/slog"
	"net/http"

	"nhl-feed-service/internal/config"
	"nhl-feed-service/internal/metrics"
	"nhl-feed-service/internal/providers"
	"nhl-feed-service/internal/providers/mysportsfeeds"
)

// providerFactory assembles the feed client with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) client(cfg config.Config) *mysportsfeeds.Client {
	msf := cfg.MySportsFeeds
	if msf.Credential == "" && f.logger != nil {
		f.logger.Warn("MSF_CREDENTIAL is empty, upstream requests will be unauthenticated")
	}
	var httpClient *http.Client
	if msf.Timeout > 0 {
		httpClient = &http.Client{Timeout: msf.Timeout}
	}
	return mysportsfeeds.NewClient(mysportsfeeds.Config{
		BaseURL:    msf.BaseURL,
		Credential: msf.Credential,
		League:     msf.League,
		Season:     msf.Season,
		HTTPClient: httpClient,
	})
}

// build wraps base so every upstream call is rate limited first and retried outside the limiter.
func (f providerFactory) build(cfg config.Config, base providers.FeedProvider) providers.FeedProvider {
	if base == nil {
		base = f.client(cfg)
	}
	limited := providers.NewRateLimitedProvider(base, cfg.MySportsFeeds.RequestsPerMinute, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, mysportsfeeds.ProviderName, cfg.RetryAttempts, cfg.RetryBackoff)
}

// NewProvider builds the rate limited, retrying MySportsFeeds provider used by both the server and the CLI.
func NewProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.FeedProvider {
	return newProviderFactory(logger, recorder).build(cfg, nil)
}
