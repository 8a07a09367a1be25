package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"nhl-feed-service/internal/domain"
)

const defaultRequestsPerMinute = 60

// rateLimitedProvider wraps a FeedProvider with a token bucket shared by all calls.
type rateLimitedProvider struct {
	next    FeedProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a FeedProvider that allows at most requestsPerMinute upstream calls.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next FeedProvider, requestsPerMinute int, logger *slog.Logger) FeedProvider {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	rps := float64(requestsPerMinute) / 60.0
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error) {
	if err := p.wait(ctx, gameID); err != nil {
		return domain.PlayByPlay{}, err
	}
	return p.next.FetchPlayByPlay(ctx, gameID, query)
}

func (p *rateLimitedProvider) FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error) {
	if err := p.wait(ctx, gameID); err != nil {
		return domain.Boxscore{}, err
	}
	return p.next.FetchBoxscore(ctx, gameID)
}

func (p *rateLimitedProvider) wait(ctx context.Context, gameID domain.GameID) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		warnFetch(ctx, p.logger, "rate-limited", gameID, "rate-limited fetch canceled", "err", err)
		return err
	}
	return nil
}
