package testkit

import (
	"reflect"
	"testing"
	"time"

	"safetycalc/ports"
)

func TestRunAllProducesOneRecordPerEngine(t *testing.T) {
	recs, err := NewTestKit().RunAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{
		"fall-protection",
		"heat-stress",
		"incident-rate",
		"noise-exposure",
		"ppe-selection",
		"safety-training",
	}
	if len(recs) != len(wantOrder) {
		t.Fatalf("records = %d, want %d", len(recs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if recs[i].Engine != want {
			t.Errorf("record %d engine = %q, want %q", i, recs[i].Engine, want)
		}
	}
}

// Identical inputs produce identical outputs for every engine; only the
// per-assessment ID and timestamp differ between runs.
func TestRunAllIsDeterministic(t *testing.T) {
	kit := NewTestKit()

	first, err := kit.RunAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := kit.RunAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stripEnvelope := func(recs []ports.ResultRecord) []ports.ResultRecord {
		out := make([]ports.ResultRecord, len(recs))
		for i, rec := range recs {
			rec.ID = ""
			rec.CreatedAt = time.Time{}
			out[i] = rec
		}
		return out
	}

	if !reflect.DeepEqual(stripEnvelope(first), stripEnvelope(second)) {
		t.Error("repeated runs over identical inputs should produce identical records")
	}
}

func TestRunAllRecordsAreRenderable(t *testing.T) {
	recs, err := NewTestKit().RunAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		if rec.ID == "" {
			t.Errorf("%s record has no assessment ID", rec.Engine)
		}
		if rec.Title == "" {
			t.Errorf("%s record has no title", rec.Engine)
		}
		if rec.RiskLabel == "" {
			t.Errorf("%s record has no risk label", rec.Engine)
		}
		if len(rec.Fields) == 0 {
			t.Errorf("%s record has no fields", rec.Engine)
		}
		if len(rec.Recommendations) == 0 {
			t.Errorf("%s record has no recommendations", rec.Engine)
		}
	}
}
