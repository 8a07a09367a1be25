package testutil

import (
	"encoding/json"

	"nhl-feed-service/internal/domain"
)

// GoalPlaysJSON is a goal-filtered play-by-play body for BOS (away) at CHI (home).
const GoalPlaysJSON = `{
	"lastUpdatedOn": "2023-10-11T02:41:07.000Z",
	"game": {
		"id": 104772,
		"awayTeam": { "id": 11, "abbreviation": "BOS" },
		"homeTeam": { "id": 9, "abbreviation": "CHI" }
	},
	"plays": [
		{
			"playStatus": { "period": 1, "secondsElapsed": 412 },
			"goal": {
				"team": { "id": 11, "abbreviation": "BOS" },
				"goalScorer": { "id": 4955, "firstName": "David", "lastName": "Pastrnak" }
			}
		},
		{
			"playStatus": { "period": 2, "secondsElapsed": 95 },
			"goal": {
				"team": { "id": 9, "abbreviation": "CHI" },
				"goalScorer": { "id": 31033, "firstName": "Connor", "lastName": "Bedard" }
			}
		}
	]
}`

// ShotPlaysJSON is a shot-filtered play-by-play body: BOS 3 shots, CHI 2.
const ShotPlaysJSON = `{
	"game": {
		"id": 104772,
		"awayTeam": { "id": 11, "abbreviation": "BOS" },
		"homeTeam": { "id": 9, "abbreviation": "CHI" }
	},
	"plays": [
		{ "shotAttempt": { "team": { "abbreviation": "BOS" }, "shootingPlayer": { "firstName": "David", "lastName": "Pastrnak" } } },
		{ "shotAttempt": { "team": { "abbreviation": "CHI" }, "shootingPlayer": { "firstName": "Connor", "lastName": "Bedard" } } },
		{ "shotAttempt": { "team": { "abbreviation": "BOS" }, "shootingPlayer": { "firstName": "Brad", "lastName": "Marchand" } } },
		{ "shotAttempt": { "team": { "abbreviation": "BOS" }, "shootingPlayer": { "firstName": "Charlie", "lastName": "McAvoy" } } },
		{ "shotAttempt": { "team": { "abbreviation": "CHI" }, "shootingPlayer": { "firstName": "Taylor", "lastName": "Hall" } } }
	]
}`

// PenaltyPlaysJSON is a penalty-filtered play-by-play body: BOS 1 penalty, CHI 3.
const PenaltyPlaysJSON = `{
	"game": {
		"id": 104772,
		"awayTeam": { "id": 11, "abbreviation": "BOS" },
		"homeTeam": { "id": 9, "abbreviation": "CHI" }
	},
	"plays": [
		{ "penalty": { "team": { "abbreviation": "CHI" }, "type": "HOOKING", "durationSeconds": 120 } },
		{ "penalty": { "team": { "abbreviation": "BOS" }, "type": "TRIPPING", "durationSeconds": 120 } },
		{ "penalty": { "team": { "abbreviation": "CHI" }, "type": "SLASHING", "durationSeconds": 120 } },
		{ "penalty": { "team": { "abbreviation": "CHI" }, "type": "ROUGHING", "durationSeconds": 120 } }
	]
}`

// BoxscoreJSON is a boxscore body with a 3-2 home win.
const BoxscoreJSON = `{
	"game": {
		"id": 104772,
		"awayTeam": { "id": 11, "abbreviation": "BOS" },
		"homeTeam": { "id": 9, "abbreviation": "CHI" }
	},
	"scoring": {
		"currentPeriod": null,
		"awayScoreTotal": 2,
		"homeScoreTotal": 3,
		"periods": [
			{ "periodNumber": 1, "awayScore": 1, "homeScore": 0 },
			{ "periodNumber": 2, "awayScore": 1, "homeScore": 2 },
			{ "periodNumber": 3, "awayScore": 0, "homeScore": 1 }
		]
	},
	"stats": {
		"away": {
			"players": [
				{ "player": { "id": 4955, "firstName": "David", "lastName": "Pastrnak" }, "playerStats": [ { "scoring": { "goals": 2, "assists": 0, "points": 2 } } ] },
				{ "player": { "id": 4810, "firstName": "Brad", "lastName": "Marchand" }, "playerStats": [ { "scoring": { "goals": 0, "assists": 1, "points": 1 } } ] }
			]
		},
		"home": {
			"players": [
				{ "player": { "id": 31033, "firstName": "Connor", "lastName": "Bedard" }, "playerStats": [ { "scoring": { "goals": 1, "assists": 1, "points": 2 } } ] },
				{ "player": { "id": 5151, "firstName": "Taylor", "lastName": "Hall" }, "playerStats": [ { "scoring": { "goals": 2, "assists": 0, "points": 2 } } ] }
			]
		}
	}
}`

// MustPlayByPlay decodes a play-by-play body or panics; intended for tests.
func MustPlayByPlay(body string) domain.PlayByPlay {
	var payload domain.PlayByPlay
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		panic(err)
	}
	return payload
}

// MustBoxscore decodes a boxscore body or panics; intended for tests.
func MustBoxscore(body string) domain.Boxscore {
	var box domain.Boxscore
	if err := json.Unmarshal([]byte(body), &box); err != nil {
		panic(err)
	}
	return box
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
