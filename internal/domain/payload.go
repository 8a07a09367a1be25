package domain

// The types below mirror the MySportsFeeds v2 JSON bodies. Nested objects are
// pointers so extraction can tell a missing object from a zero value.

// PlayByPlay is the body of playbyplay.json.
type PlayByPlay struct {
	LastUpdatedOn string `json:"lastUpdatedOn,omitempty"`
	Game          *Game  `json:"game,omitempty"`
	Plays         []Play `json:"plays"`
}

// Boxscore is the body of boxscore.json.
type Boxscore struct {
	LastUpdatedOn string         `json:"lastUpdatedOn,omitempty"`
	Game          *Game          `json:"game,omitempty"`
	Scoring       *Scoring       `json:"scoring,omitempty"`
	Stats         *BoxscoreStats `json:"stats,omitempty"`
}

// Game is the shared game header of both endpoints.
type Game struct {
	ID        int      `json:"id"`
	StartTime string   `json:"startTime,omitempty"`
	AwayTeam  *TeamRef `json:"awayTeam,omitempty"`
	HomeTeam  *TeamRef `json:"homeTeam,omitempty"`
}

// TeamRef references a team by id and abbreviation.
type TeamRef struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
}

// PlayerRef references a player.
type PlayerRef struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position,omitempty"`
	JerseyNumber int    `json:"jerseyNumber,omitempty"`
}

// FullName joins first and last name with a single space.
func (p PlayerRef) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PlayStatus locates a play in the game clock.
type PlayStatus struct {
	Period         int `json:"period"`
	SecondsElapsed int `json:"secondsElapsed"`
}

// Play is one play-by-play element. Exactly one event field is set upstream.
type Play struct {
	PlayStatus  *PlayStatus   `json:"playStatus,omitempty"`
	Description string        `json:"description,omitempty"`
	Goal        *GoalEvent    `json:"goal,omitempty"`
	ShotAttempt *ShotEvent    `json:"shotAttempt,omitempty"`
	Penalty     *PenaltyEvent `json:"penalty,omitempty"`
}

type GoalEvent struct {
	Team             *TeamRef   `json:"team,omitempty"`
	GoalScorer       *PlayerRef `json:"goalScorer,omitempty"`
	ShootingPlayer   *PlayerRef `json:"shootingPlayer,omitempty"`
	AssistingPlayer1 *PlayerRef `json:"assistingPlayer1,omitempty"`
	AssistingPlayer2 *PlayerRef `json:"assistingPlayer2,omitempty"`
}

type ShotEvent struct {
	Team           *TeamRef   `json:"team,omitempty"`
	ShootingPlayer *PlayerRef `json:"shootingPlayer,omitempty"`
	ShotType       string     `json:"shotType,omitempty"`
	Result         string     `json:"result,omitempty"`
}

type PenaltyEvent struct {
	Team            *TeamRef   `json:"team,omitempty"`
	PenalizedPlayer *PlayerRef `json:"penalizedPlayer,omitempty"`
	Type            string     `json:"type,omitempty"`
	Severity        string     `json:"severity,omitempty"`
	DurationSeconds int        `json:"durationSeconds,omitempty"`
}

// Scoring holds game totals and per-period scores.
type Scoring struct {
	CurrentPeriod  *int          `json:"currentPeriod,omitempty"`
	AwayScoreTotal *int          `json:"awayScoreTotal,omitempty"`
	HomeScoreTotal *int          `json:"homeScoreTotal,omitempty"`
	Periods        []PeriodScore `json:"periods,omitempty"`
}

type PeriodScore struct {
	PeriodNumber int `json:"periodNumber"`
	AwayScore    int `json:"awayScore"`
	HomeScore    int `json:"homeScore"`
}

// BoxscoreStats splits player lines by side.
type BoxscoreStats struct {
	Away *TeamStats `json:"away,omitempty"`
	Home *TeamStats `json:"home,omitempty"`
}

type TeamStats struct {
	Players []PlayerStatsEntry `json:"players"`
}

type PlayerStatsEntry struct {
	Player      *PlayerRef       `json:"player,omitempty"`
	PlayerStats []PlayerStatLine `json:"playerStats"`
}

type PlayerStatLine struct {
	Scoring *PlayerScoring `json:"scoring,omitempty"`
}

type PlayerScoring struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
	Points  int `json:"points"`
}
