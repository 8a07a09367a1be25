package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrMethod == "" || AttrPath == "" || AttrStatus == "" || AttrProvider == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
	if AttrOperation == "" || AttrOutcome == "" {
		t.Fatalf("expected extraction attribute keys to be non-empty")
	}
}
