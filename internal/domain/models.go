package domain

import (
	"errors"
	"strings"
)

// ErrMissingGameID is returned when a feed call is attempted without a game identifier.
var ErrMissingGameID = errors.New("game id is required")

// GameID identifies a single contest upstream. It is opaque to this service.
type GameID string

// Validate reports whether the identifier can be used to build a feed URL.
func (id GameID) Validate() error {
	if strings.TrimSpace(string(id)) == "" {
		return ErrMissingGameID
	}
	return nil
}

func (id GameID) String() string { return string(id) }

// Side selects the home or away team within one game.
type Side string

const (
	SideNone    Side = ""
	SideHome    Side = "home"
	SideAway    Side = "away"
	SideUnknown Side = "unknown"
)

// ParseSide maps a caller-supplied selector to a Side. Matching is case-insensitive.
// An empty selector yields SideNone; anything other than home/away yields SideUnknown.
func ParseSide(raw string) Side {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return SideNone
	case string(SideHome):
		return SideHome
	case string(SideAway):
		return SideAway
	default:
		return SideUnknown
	}
}

// Known reports whether the side resolves to a team.
func (s Side) Known() bool {
	return s == SideHome || s == SideAway
}

// PlayType filters play-by-play requests to one event subtype.
type PlayType string

const (
	PlayTypeAny     PlayType = ""
	PlayTypeGoal    PlayType = "goal"
	PlayTypeShot    PlayType = "shot"
	PlayTypePenalty PlayType = "penalty"
)

// PlayQuery narrows a play-by-play request. Zero values mean "no filter".
type PlayQuery struct {
	Type   PlayType
	Period int
}

// PlayRecord is one play event reduced to the fields aggregation needs.
type PlayRecord struct {
	Type   PlayType `json:"type"`
	Team   string   `json:"team"`
	Player string   `json:"player,omitempty"`
}

// PlayerBoxscoreEntry is one player's line for a game.
type PlayerBoxscoreEntry struct {
	Name  string `json:"name"`
	Goals int    `json:"goals"`
}

// TeamTotals holds the final scores read from a boxscore.
type TeamTotals struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Sum returns the combined score of both teams.
func (t TeamTotals) Sum() int {
	return t.Home + t.Away
}

// For returns the total for a known side.
func (t TeamTotals) For(side Side) (int, bool) {
	switch side {
	case SideHome:
		return t.Home, true
	case SideAway:
		return t.Away, true
	default:
		return 0, false
	}
}

// AggregationResult counts plays per team abbreviation.
type AggregationResult map[string]int

// Count returns the count for an abbreviation, zero when absent.
func (a AggregationResult) Count(abbreviation string) int {
	return a[abbreviation]
}
