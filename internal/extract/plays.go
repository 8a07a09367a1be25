package extract

import (
	"nhl-feed-service/internal/domain"
)

// PlayRecords reduces every play to its acting team for the given event type.
// A play that lacks the event object or its team abbreviation fails the whole payload.
func PlayRecords(op string, payload domain.PlayByPlay, playType domain.PlayType) ([]domain.PlayRecord, error) {
	records := make([]domain.PlayRecord, 0, len(payload.Plays))
	for i, play := range payload.Plays {
		team, player, ok := playActor(play, playType)
		if !ok || team == "" {
			return nil, malformed(op, "play %d has no %s team abbreviation", i, playType)
		}
		records = append(records, domain.PlayRecord{Type: playType, Team: team, Player: player})
	}
	return records, nil
}

func playActor(play domain.Play, playType domain.PlayType) (string, string, bool) {
	var team *domain.TeamRef
	var player *domain.PlayerRef

	switch playType {
	case domain.PlayTypeGoal:
		if play.Goal == nil {
			return "", "", false
		}
		team = play.Goal.Team
		player = play.Goal.GoalScorer
		if player == nil {
			player = play.Goal.ShootingPlayer
		}
	case domain.PlayTypeShot:
		if play.ShotAttempt == nil {
			return "", "", false
		}
		team, player = play.ShotAttempt.Team, play.ShotAttempt.ShootingPlayer
	case domain.PlayTypePenalty:
		if play.Penalty == nil {
			return "", "", false
		}
		team, player = play.Penalty.Team, play.Penalty.PenalizedPlayer
	default:
		return "", "", false
	}

	if team == nil {
		return "", "", false
	}
	name := ""
	if player != nil {
		name = player.FullName()
	}
	return team.Abbreviation, name, true
}

// CountByTeam groups records by team abbreviation.
func CountByTeam(records []domain.PlayRecord) domain.AggregationResult {
	counts := make(domain.AggregationResult)
	for _, r := range records {
		counts[r.Team]++
	}
	return counts
}

// ResolveTeam returns the abbreviation of the team playing on side.
func ResolveTeam(op string, game *domain.Game, side domain.Side) (string, error) {
	if game == nil {
		return "", malformed(op, "payload has no game header")
	}
	var team *domain.TeamRef
	switch side {
	case domain.SideHome:
		team = game.HomeTeam
	case domain.SideAway:
		team = game.AwayTeam
	default:
		return "", invalidSide(op, string(side))
	}
	if team == nil || team.Abbreviation == "" {
		return "", malformed(op, "game has no %s team abbreviation", side)
	}
	return team.Abbreviation, nil
}
