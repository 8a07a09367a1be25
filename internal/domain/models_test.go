package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGameIDValidate(t *testing.T) {
	if err := GameID("").Validate(); !errors.Is(err, ErrMissingGameID) {
		t.Fatalf("expected ErrMissingGameID for empty id, got %v", err)
	}
	if err := GameID("   ").Validate(); !errors.Is(err, ErrMissingGameID) {
		t.Fatalf("expected ErrMissingGameID for blank id, got %v", err)
	}
	if err := GameID("20231010-BOS-CHI").Validate(); err != nil {
		t.Fatalf("expected valid id, got %v", err)
	}
}

func TestParseSide(t *testing.T) {
	cases := []struct {
		raw  string
		want Side
	}{
		{"", SideNone},
		{"home", SideHome},
		{"HOME", SideHome},
		{"Away", SideAway},
		{" away ", SideAway},
		{"visitor", SideUnknown},
	}

	for _, tc := range cases {
		if got := ParseSide(tc.raw); got != tc.want {
			t.Fatalf("ParseSide(%q): expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestSideKnown(t *testing.T) {
	if !SideHome.Known() || !SideAway.Known() {
		t.Fatalf("expected home and away to be known")
	}
	if SideNone.Known() || SideUnknown.Known() {
		t.Fatalf("expected none and unknown to be unknown")
	}
}

func TestTeamTotals(t *testing.T) {
	totals := TeamTotals{Home: 3, Away: 2}
	if totals.Sum() != 5 {
		t.Fatalf("expected sum 5, got %d", totals.Sum())
	}
	if got, ok := totals.For(SideHome); !ok || got != 3 {
		t.Fatalf("expected home 3, got %d (%v)", got, ok)
	}
	if got, ok := totals.For(SideAway); !ok || got != 2 {
		t.Fatalf("expected away 2, got %d (%v)", got, ok)
	}
	if _, ok := totals.For(SideUnknown); ok {
		t.Fatalf("expected unknown side to be rejected")
	}
}

func TestAggregationResultCountDefaultsToZero(t *testing.T) {
	agg := AggregationResult{"BOS": 2}
	if agg.Count("BOS") != 2 {
		t.Fatalf("expected 2 for BOS")
	}
	if agg.Count("CHI") != 0 {
		t.Fatalf("expected 0 for absent team")
	}
}

func TestBoxscoreDecodeKeepsMissingScoresNil(t *testing.T) {
	var box Boxscore
	if err := json.Unmarshal([]byte(`{"scoring":{"homeScoreTotal":4}}`), &box); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if box.Scoring == nil || box.Scoring.HomeScoreTotal == nil || *box.Scoring.HomeScoreTotal != 4 {
		t.Fatalf("expected home total 4, got %+v", box.Scoring)
	}
	if box.Scoring.AwayScoreTotal != nil {
		t.Fatalf("expected away total to stay nil when absent")
	}
}

func TestPlayerFullName(t *testing.T) {
	p := PlayerRef{FirstName: "David", LastName: "Pastrnak"}
	if p.FullName() != "David Pastrnak" {
		t.Fatalf("unexpected full name %q", p.FullName())
	}
}
