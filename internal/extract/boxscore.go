package extract

import (
	"nhl-feed-service/internal/domain"
)

// PlayerEntries merges away then home player lines into one collection.
func PlayerEntries(op string, box domain.Boxscore) ([]domain.PlayerBoxscoreEntry, error) {
	if box.Stats == nil || box.Stats.Away == nil || box.Stats.Home == nil {
		return nil, malformed(op, "boxscore has no player stats for both sides")
	}

	entries := make([]domain.PlayerBoxscoreEntry, 0, len(box.Stats.Away.Players)+len(box.Stats.Home.Players))
	for _, side := range []*domain.TeamStats{box.Stats.Away, box.Stats.Home} {
		for i, p := range side.Players {
			if p.Player == nil {
				return nil, malformed(op, "player entry %d has no player", i)
			}
			if len(p.PlayerStats) == 0 || p.PlayerStats[0].Scoring == nil {
				return nil, malformed(op, "player %s has no scoring stats", p.Player.FullName())
			}
			entries = append(entries, domain.PlayerBoxscoreEntry{
				Name:  p.Player.FullName(),
				Goals: p.PlayerStats[0].Scoring.Goals,
			})
		}
	}
	return entries, nil
}

// Totals reads the final home and away scores.
func Totals(op string, box domain.Boxscore) (domain.TeamTotals, error) {
	if box.Scoring == nil || box.Scoring.HomeScoreTotal == nil || box.Scoring.AwayScoreTotal == nil {
		return domain.TeamTotals{}, malformed(op, "boxscore has no score totals")
	}
	return domain.TeamTotals{
		Home: *box.Scoring.HomeScoreTotal,
		Away: *box.Scoring.AwayScoreTotal,
	}, nil
}
