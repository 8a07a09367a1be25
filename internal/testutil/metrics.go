package testutil

import (
	"context"
	"net/http"
	"testing"

	"nhl-feed-service/internal/metrics"
)

// NewTelemetryRecorder returns an OpenTelemetry-backed recorder and its Prometheus
// scrape handler. The meter provider is shut down when the test ends.
func NewTelemetryRecorder(t testing.TB) (*metrics.Recorder, http.Handler) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "nhl-feed-service-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, handler
}

// Scrape returns the Prometheus exposition text served by handler.
func Scrape(t testing.TB, handler http.Handler) string {
	t.Helper()
	rr := Serve(handler, http.MethodGet, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("scrape returned %d", rr.Code)
	}
	return rr.Body.String()
}
