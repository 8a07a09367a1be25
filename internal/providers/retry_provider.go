package providers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoffFactor     = 10
)

// retryingProvider wraps a FeedProvider with retry/backoff behavior.
type retryingProvider struct {
	inner        FeedProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoff      time.Duration
	now          func() time.Time
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
// Rate limit responses wait for their Retry-After; client errors other than 429 are not retried.
func NewRetryingProvider(inner FeedProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxAttempts int, backoff time.Duration) FeedProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if providerName == "" {
		providerName = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxAttempts:  maxAttempts,
		backoff:      backoff,
		now:          time.Now,
	}
}

func (r *retryingProvider) FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error) {
	if r.inner == nil {
		return domain.PlayByPlay{}, ErrProviderUnavailable
	}
	return retry(ctx, r, gameID, "playbyplay", func() (domain.PlayByPlay, error) {
		return r.inner.FetchPlayByPlay(ctx, gameID, query)
	})
}

func (r *retryingProvider) FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error) {
	if r.inner == nil {
		return domain.Boxscore{}, ErrProviderUnavailable
	}
	return retry(ctx, r, gameID, "boxscore", func() (domain.Boxscore, error) {
		return r.inner.FetchBoxscore(ctx, gameID)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, gameID domain.GameID, resource string, fetch func() (T, error)) (T, error) {
	policy := r.newBackOff()
	attempt := 0

	operation := func() (T, error) {
		attempt++
		start := r.now()
		out, err := fetch()
		r.record(err, r.now().Sub(start))
		if err == nil {
			return out, nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			policy.retryAfter = rlErr.RetryAfter
		}
		if !retryable(err) {
			return out, backoff.Permanent(err)
		}
		return out, err
	}

	notify := func(err error, delay time.Duration) {
		warnFetch(ctx, r.logger, r.providerName, gameID, "provider fetch retry",
			"resource", resource,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"err", err,
		)
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)
	out, err := backoff.RetryNotifyWithData(operation, bo, notify)
	if err != nil {
		warnFetch(ctx, r.logger, r.providerName, gameID, "provider fetch failed", "resource", resource, "attempts", attempt, "err", err)
	}
	return out, err
}

func (r *retryingProvider) newBackOff() *retryAfterBackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.backoff
	exp.MaxInterval = r.backoff * maxBackoffFactor
	exp.MaxElapsedTime = 0
	exp.Reset()
	return &retryAfterBackOff{BackOff: exp}
}

func (r *retryingProvider) record(err error, duration time.Duration) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordProviderAttempt(r.providerName, duration, err)
	if rlErr, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
	}
}

// retryAfterBackOff prefers an upstream Retry-After over the computed interval for the next wait.
type retryAfterBackOff struct {
	backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if b.retryAfter > 0 && next != backoff.Stop {
		next = b.retryAfter
	}
	b.retryAfter = 0
	return next
}

func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, domain.ErrMissingGameID) {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if stErr, ok := AsStatusError(err); ok {
		return stErr.Temporary()
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}
	return true
}
