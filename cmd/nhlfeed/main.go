// Command nhlfeed answers questions about a single NHL game from the MySportsFeeds API.
//
// Usage:
//
//	nhlfeed winning-team --game 20231010-BOS-CHI
//	nhlfeed player-score --game 20231010-BOS-CHI --name "David Pastrnak"
//	nhlfeed total-goals --game 20231010-BOS-CHI --side home
//	nhlfeed serve
package main

import (
	"os"
)

const appVersion = "dev"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, nil).Execute(); err != nil {
		os.Exit(1)
	}
}
