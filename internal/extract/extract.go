// Package extract turns raw feed payloads into single answers about a game.
// Every function is pure: it never mutates its input and holds no state.
package extract

import (
	"nhl-feed-service/internal/domain"
)

// Operation names, used in errors, logs and metrics.
const (
	OpWinningTeam  = "winning_team"
	OpPlayerScore  = "player_score"
	OpWinningScore = "winning_score"
	OpTotalGoals   = "total_goals"
	OpTotalShots   = "total_shots"
	OpPowerPlay    = "power_play"
)

// WinningTeam returns the abbreviation of the team that scored the first goal
// in a goal-filtered play-by-play payload.
func WinningTeam(payload domain.PlayByPlay) (string, error) {
	if len(payload.Plays) == 0 {
		return "", notFound(OpWinningTeam, "no goal plays")
	}
	goal := payload.Plays[0].Goal
	if goal == nil || goal.Team == nil || goal.Team.Abbreviation == "" {
		return "", malformed(OpWinningTeam, "first play has no goal team abbreviation")
	}
	return goal.Team.Abbreviation, nil
}

// PlayerScore returns the goals scored by the player whose full name matches exactly.
func PlayerScore(box domain.Boxscore, playerName string) (int, error) {
	entries, err := PlayerEntries(OpPlayerScore, box)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		if e.Name == playerName {
			return e.Goals, nil
		}
	}
	return 0, notFound(OpPlayerScore, "player %q not in boxscore", playerName)
}

// TotalGoals returns the combined score when side is empty, otherwise the score for that side.
func TotalGoals(box domain.Boxscore, side string) (int, error) {
	totals, err := Totals(OpTotalGoals, box)
	if err != nil {
		return 0, err
	}

	parsed := domain.ParseSide(side)
	if parsed == domain.SideNone {
		return totals.Sum(), nil
	}
	if total, ok := totals.For(parsed); ok {
		return total, nil
	}
	return 0, invalidSide(OpTotalGoals, side)
}

// TotalShots counts shot plays for the team on side. ok is false when side is
// empty or unrecognized.
func TotalShots(payload domain.PlayByPlay, side string) (count int, ok bool, err error) {
	records, err := PlayRecords(OpTotalShots, payload, domain.PlayTypeShot)
	if err != nil {
		return 0, false, err
	}
	parsed := domain.ParseSide(side)
	if !parsed.Known() {
		return 0, false, nil
	}
	abbr, err := ResolveTeam(OpTotalShots, payload.Game, parsed)
	if err != nil {
		return 0, false, err
	}
	return CountByTeam(records).Count(abbr), true, nil
}

// PowerPlay counts penalty plays committed by the team on side. side is required.
func PowerPlay(payload domain.PlayByPlay, side string) (int, error) {
	parsed := domain.ParseSide(side)
	if !parsed.Known() {
		return 0, invalidSide(OpPowerPlay, side)
	}
	records, err := PlayRecords(OpPowerPlay, payload, domain.PlayTypePenalty)
	if err != nil {
		return 0, err
	}
	abbr, err := ResolveTeam(OpPowerPlay, payload.Game, parsed)
	if err != nil {
		return 0, err
	}
	return CountByTeam(records).Count(abbr), nil
}
