package mysportsfeeds

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func orDefault(value, fallback string) string {
	if v := strings.Trim(strings.TrimSpace(value), "/"); v != "" {
		return v
	}
	return fallback
}

// BasicAuthHeader encodes a credential for the Authorization header.
// MySportsFeeds expects "<api key>:<password>"; the value is encoded as given.
func BasicAuthHeader(credential string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credential))
}

// parseRetryAfter accepts either delta-seconds or an HTTP date.
func parseRetryAfter(raw string, now time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
