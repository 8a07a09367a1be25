// Package feed answers questions about one game by fetching a single upstream
// feed per call and reducing it with the extract package.
package feed

import (
	"context"
	"log/slog"
	"time"

	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/extract"
	"nhl-feed-service/internal/logging"
	"nhl-feed-service/internal/metrics"
)

// Provider defines the upstream feeds the service reads.
type Provider interface {
	FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error)
	FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error)
}

// Service answers feed questions for a single game. It holds no mutable state
// and is safe for concurrent use.
type Service struct {
	gameID   domain.GameID
	provider Provider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service bound to gameID.
func NewService(gameID domain.GameID, provider Provider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		gameID:   gameID,
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// GameID returns the game this service is bound to.
func (s *Service) GameID() domain.GameID {
	return s.gameID
}

// WinningTeam returns the abbreviation of the team that scored first in period one.
func (s *Service) WinningTeam(ctx context.Context) (string, error) {
	start := s.now()
	payload, err := s.provider.FetchPlayByPlay(ctx, s.gameID, domain.PlayQuery{Type: domain.PlayTypeGoal, Period: 1})
	if err != nil {
		return "", s.finish(ctx, extract.OpWinningTeam, start, extract.Upstream(extract.OpWinningTeam, err))
	}
	team, err := extract.WinningTeam(payload)
	return team, s.finish(ctx, extract.OpWinningTeam, start, err)
}

// PlayerScore returns the goals scored by the named player ("First Last", exact match).
func (s *Service) PlayerScore(ctx context.Context, playerName string) (int, error) {
	start := s.now()
	box, err := s.provider.FetchBoxscore(ctx, s.gameID)
	if err != nil {
		return 0, s.finish(ctx, extract.OpPlayerScore, start, extract.Upstream(extract.OpPlayerScore, err))
	}
	goals, err := extract.PlayerScore(box, playerName)
	return goals, s.finish(ctx, extract.OpPlayerScore, start, err)
}

// WinningScore returns every goal play of the game.
func (s *Service) WinningScore(ctx context.Context) (domain.PlayByPlay, error) {
	start := s.now()
	payload, err := s.provider.FetchPlayByPlay(ctx, s.gameID, domain.PlayQuery{Type: domain.PlayTypeGoal})
	if err != nil {
		return domain.PlayByPlay{}, s.finish(ctx, extract.OpWinningScore, start, extract.Upstream(extract.OpWinningScore, err))
	}
	return payload, s.finish(ctx, extract.OpWinningScore, start, nil)
}

// TotalGoals returns the combined score, or one side's score when side is set.
func (s *Service) TotalGoals(ctx context.Context, side string) (int, error) {
	start := s.now()
	box, err := s.provider.FetchBoxscore(ctx, s.gameID)
	if err != nil {
		return 0, s.finish(ctx, extract.OpTotalGoals, start, extract.Upstream(extract.OpTotalGoals, err))
	}
	total, err := extract.TotalGoals(box, side)
	return total, s.finish(ctx, extract.OpTotalGoals, start, err)
}

// TotalShots returns the shot count for side. ok is false when side is empty or unrecognized.
func (s *Service) TotalShots(ctx context.Context, side string) (int, bool, error) {
	start := s.now()
	payload, err := s.provider.FetchPlayByPlay(ctx, s.gameID, domain.PlayQuery{Type: domain.PlayTypeShot})
	if err != nil {
		return 0, false, s.finish(ctx, extract.OpTotalShots, start, extract.Upstream(extract.OpTotalShots, err))
	}
	count, ok, err := extract.TotalShots(payload, side)
	return count, ok, s.finish(ctx, extract.OpTotalShots, start, err)
}

// PowerPlay returns the number of penalties taken by the team on side.
func (s *Service) PowerPlay(ctx context.Context, side string) (int, error) {
	start := s.now()
	payload, err := s.provider.FetchPlayByPlay(ctx, s.gameID, domain.PlayQuery{Type: domain.PlayTypePenalty})
	if err != nil {
		return 0, s.finish(ctx, extract.OpPowerPlay, start, extract.Upstream(extract.OpPowerPlay, err))
	}
	count, err := extract.PowerPlay(payload, side)
	return count, s.finish(ctx, extract.OpPowerPlay, start, err)
}

// finish records the outcome of op and passes err through.
func (s *Service) finish(ctx context.Context, op string, start time.Time, err error) error {
	duration := s.now().Sub(start)
	kind := string(extract.KindOf(err))
	s.metrics.RecordExtraction(op, kind, duration)

	attrs := []any{
		slog.String(logging.FieldGameID, s.gameID.String()),
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if err != nil {
		logging.Warn(ctx, s.logger, "feed operation failed", err, attrs...)
		return err
	}
	logging.Debug(ctx, s.logger, "feed operation complete", attrs...)
	return nil
}
