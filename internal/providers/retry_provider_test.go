package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"nhl-feed-service/internal/domain"
	"nhl-feed-service/internal/metrics"
	"nhl-feed-service/internal/testutil"
)

type flakeyProvider struct {
	failures int
	err      error
	calls    int
}

func (f *flakeyProvider) FetchPlayByPlay(ctx context.Context, gameID domain.GameID, query domain.PlayQuery) (domain.PlayByPlay, error) {
	_ = ctx
	_ = gameID
	_ = query
	if err := f.next(); err != nil {
		return domain.PlayByPlay{}, err
	}
	return testutil.MustPlayByPlay(testutil.GoalPlaysJSON), nil
}

func (f *flakeyProvider) FetchBoxscore(ctx context.Context, gameID domain.GameID) (domain.Boxscore, error) {
	_ = ctx
	_ = gameID
	if err := f.next(); err != nil {
		return domain.Boxscore{}, err
	}
	return testutil.MustBoxscore(testutil.BoxscoreJSON), nil
}

func (f *flakeyProvider) next() error {
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := NewRetryingProvider(fp, testutil.DiscardLogger(), metrics.NewRecorder(), "flakey", 3, time.Millisecond)

	payload, err := rp.FetchPlayByPlay(context.Background(), "g1", domain.PlayQuery{Type: domain.PlayTypeGoal})
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(payload.Plays) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond)

	_, err := rp.FetchBoxscore(context.Background(), "g1")
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryClientErrors(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: &StatusError{Provider: "p", StatusCode: http.StatusNotFound}}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Millisecond)

	_, err := rp.FetchBoxscore(context.Background(), "g1")
	if _, ok := AsStatusError(err); !ok {
		t.Fatalf("expected status error to surface unwrapped, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt for a 404, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryMissingGameID(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: fmt.Errorf("building request: %w", domain.ErrMissingGameID)}
	rp := NewRetryingProvider(fp, nil, nil, "flakey", 3, time.Millisecond)

	_, err := rp.FetchBoxscore(context.Background(), "")
	if !errors.Is(err, domain.ErrMissingGameID) {
		t.Fatalf("expected ErrMissingGameID, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchBoxscore(ctx, "g1")
	if err == nil {
		t.Fatal("expected context error")
	}
	if fp.calls != 1 {
		t.Fatalf("expected no retries after cancel, got %d calls", fp.calls)
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1, err: &RateLimitError{Provider: "rl", StatusCode: http.StatusTooManyRequests, RetryAfter: time.Millisecond}}
	rp := NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond).(*retryingProvider)

	if _, err := rp.FetchBoxscore(context.Background(), "g1"); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}

	if got := rec.RateLimitHits(rp.providerName); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls(rp.providerName); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors(rp.providerName); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastRetryAfter(rp.providerName); got != time.Millisecond {
		t.Fatalf("expected last retry-after 1ms, got %s", got)
	}
}

func TestRetryAfterBackOffOverridesOnce(t *testing.T) {
	rp := NewRetryingProvider(&flakeyProvider{}, nil, nil, "p", 3, 50*time.Millisecond).(*retryingProvider)
	policy := rp.newBackOff()
	policy.retryAfter = 3 * time.Second

	if got := policy.NextBackOff(); got != 3*time.Second {
		t.Fatalf("expected retry-after delay 3s, got %s", got)
	}
	got := policy.NextBackOff()
	if got <= 0 || got > 50*time.Millisecond*maxBackoffFactor {
		t.Fatalf("expected computed backoff after override, got %s", got)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"generic", errors.New("connection reset"), true},
		{"canceled", context.Canceled, false},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), false},
		{"rate_limit", &RateLimitError{StatusCode: http.StatusTooManyRequests}, true},
		{"bad_gateway", &StatusError{StatusCode: http.StatusBadGateway}, true},
		{"forbidden", &StatusError{StatusCode: http.StatusForbidden}, false},
		{"missing_game", domain.ErrMissingGameID, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := retryable(tc.err); got != tc.want {
				t.Fatalf("expected retryable=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestNewRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, nil, "", 0, 0).(*retryingProvider)
	if rp.providerName != "provider" {
		t.Fatalf("expected fallback provider name, got %s", rp.providerName)
	}
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	if rp.backoff != defaultBackoff {
		t.Fatalf("expected default backoff, got %s", rp.backoff)
	}
	if _, err := rp.FetchBoxscore(context.Background(), "g1"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable for nil inner, got %v", err)
	}
}

func TestRetryingProviderConcurrentFetches(t *testing.T) {
	rec := metrics.NewRecorder()
	stub := &testutil.StubProvider{Boxscore: testutil.MustBoxscore(testutil.BoxscoreJSON)}
	rp := NewRetryingProvider(stub, nil, rec, "mysportsfeeds", 1, 0)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := rp.FetchBoxscore(context.Background(), "g1"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent fetch failed: %v", err)
	}
	if got := rec.ProviderCalls("mysportsfeeds"); got != 20 {
		t.Fatalf("expected 20 recorded attempts, got %d", got)
	}
}
