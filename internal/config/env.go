package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// lookupEnv returns the trimmed value of key and whether it is set to something non-blank.
func lookupEnv(key string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	return raw, raw != ""
}

// parsedEnvOrDefault parses key with parse, falling back to defaultValue when the
// variable is blank or parse rejects it.
func parsedEnvOrDefault[T any](key string, defaultValue T, parse func(string) (T, bool)) T {
	raw, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	if val, ok := parse(raw); ok {
		return val
	}
	return defaultValue
}

func envOrDefault(key, defaultValue string) string {
	if raw, ok := lookupEnv(key); ok {
		return raw
	}
	return defaultValue
}

// durationEnvOrDefault accepts Go durations ("250ms") or bare seconds ("10").
func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	return parsedEnvOrDefault(key, defaultValue, func(raw string) (time.Duration, bool) {
		if secs, err := strconv.Atoi(raw); err == nil {
			return time.Duration(secs) * time.Second, secs > 0
		}
		d, err := time.ParseDuration(raw)
		return d, err == nil && d > 0
	})
}

// intEnvOrDefault only accepts positive integers.
func intEnvOrDefault(key string, defaultValue int) int {
	return parsedEnvOrDefault(key, defaultValue, func(raw string) (int, bool) {
		val, err := strconv.Atoi(raw)
		return val, err == nil && val > 0
	})
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	return parsedEnvOrDefault(key, defaultValue, func(raw string) (bool, bool) {
		switch strings.ToLower(raw) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off":
			return false, true
		}
		return false, false
	})
}
