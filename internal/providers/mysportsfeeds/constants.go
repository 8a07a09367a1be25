package mysportsfeeds

import "time"

const (
	defaultBaseURL     = "https://api.mysportsfeeds.com/v2.0/pull"
	defaultLeague      = "nhl"
	defaultSeason      = "current"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)
