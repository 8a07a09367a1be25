package providers

import (
	"context"

	"nhl-feed-service/internal/domain"
)

// FeedProvider fetches raw game feeds from an upstream statistics API.
// Implementations issue one request per call and hold no per-call state.
type FeedProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error)
	FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error)
}
