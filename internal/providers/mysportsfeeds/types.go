package mysportsfeeds

// ProviderName identifies this provider in logs, errors and metrics.
const ProviderName = "mysportsfeeds"

type resource string

const (
	resourcePlayByPlay resource = "playbyplay"
	resourceBoxscore   resource = "boxscore"
)
