package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"nhl-feed-service/internal/domain"
)

// StubProvider is a test double for providers.FeedProvider.
// It returns the configured payloads and records the last request.
type StubProvider struct {
	PlayByPlay domain.PlayByPlay
	Boxscore   domain.Boxscore
	Err        error
	Calls      atomic.Int32

	mu        sync.Mutex
	lastGame  domain.GameID
	lastQuery domain.PlayQuery
}

// FetchPlayByPlay returns the configured play-by-play payload and error.
func (s *StubProvider) FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.lastGame, s.lastQuery = gameID, query
	s.mu.Unlock()
	return s.PlayByPlay, s.Err
}

// FetchBoxscore returns the configured boxscore payload and error.
func (s *StubProvider) FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error) {
	_ = ctx
	s.Calls.Add(1)
	s.mu.Lock()
	s.lastGame, s.lastQuery = gameID, domain.PlayQuery{}
	s.mu.Unlock()
	return s.Boxscore, s.Err
}

// LastRequest returns the game and query of the most recent call.
func (s *StubProvider) LastRequest() (domain.GameID, domain.PlayQuery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGame, s.lastQuery
}
