package extract

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExtractionErrorString(t *testing.T) {
	err := &ExtractionError{Op: OpPlayerScore, Kind: KindNotFound, Message: `player "X" not in boxscore`}
	if got := err.Error(); got != `player_score: player "X" not in boxscore` {
		t.Fatalf("unexpected error string %q", got)
	}

	bare := &ExtractionError{Kind: KindMalformed}
	if got := bare.Error(); got != "malformed" {
		t.Fatalf("expected kind as fallback message, got %q", got)
	}
}

func TestUpstreamWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream(OpWinningTeam, fmt.Errorf("get playbyplay: %w", cause))

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if KindOf(err) != KindUpstream {
		t.Fatalf("expected upstream kind, got %s", KindOf(err))
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
}

func TestUpstreamKeepsExistingExtractionError(t *testing.T) {
	inner := notFound(OpPlayerScore, "missing")
	if got := Upstream(OpPlayerScore, inner); got != inner {
		t.Fatalf("expected extraction error to pass through unchanged")
	}
	if Upstream(OpPlayerScore, nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestKindOfNonExtractionError(t *testing.T) {
	if KindOf(errors.New("boom")) != "" {
		t.Fatalf("expected empty kind for plain error")
	}
	if _, ok := AsExtractionError(nil); ok {
		t.Fatalf("expected nil not to unwrap")
	}
}

func TestInvalidSideMessages(t *testing.T) {
	if got := invalidSide(OpPowerPlay, "").Error(); got != "power_play: side is required" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := invalidSide(OpPowerPlay, "left").Error(); got != `power_play: unrecognized side "left"` {
		t.Fatalf("unexpected message %q", got)
	}
}
