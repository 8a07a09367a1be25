package config

import "time"

const (
	envMsfBaseURL = "MSF_BASE_URL"
	envMsfCred    = "MSF_CREDENTIAL"
	envMsfLeague  = "MSF_LEAGUE"
	envMsfSeason  = "MSF_SEASON"
	envMsfRate    = "MSF_REQUESTS_PER_MINUTE"
	envMsfTimeout = "MSF_TIMEOUT"

	defaultMsfBaseURL = "https://api.mysportsfeeds.com/v2.0/pull"
	defaultMsfLeague  = "nhl"
	defaultMsfSeason  = "current"
	// MySportsFeeds throttles per account; stay well under the documented ceiling.
	defaultMsfRate    = 60
	defaultMsfTimeout = 10 * time.Second
)

// MySportsFeedsConfig controls how we talk to the MySportsFeeds API.
// Credential is "<api key>:<password>" and is Basic-encoded per request.
type MySportsFeedsConfig struct {
	BaseURL           string
	Credential        string
	League            string
	Season            string
	RequestsPerMinute int
	Timeout           time.Duration
}

func loadMySportsFeeds() MySportsFeedsConfig {
	return MySportsFeedsConfig{
		BaseURL:           envOrDefault(envMsfBaseURL, defaultMsfBaseURL),
		Credential:        envOrDefault(envMsfCred, ""),
		League:            envOrDefault(envMsfLeague, defaultMsfLeague),
		Season:            envOrDefault(envMsfSeason, defaultMsfSeason),
		RequestsPerMinute: intEnvOrDefault(envMsfRate, defaultMsfRate),
		Timeout:           durationEnvOrDefault(envMsfTimeout, defaultMsfTimeout),
	}
}
