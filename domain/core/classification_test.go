package core

import (
	"testing"
)

var testScale = Scale{
	{Upper: 26, Level: RiskLevel{Label: "Low", Rank: 0}},
	{Upper: 28, Level: RiskLevel{Label: "Moderate", Rank: 1}},
	{Upper: 30, Level: RiskLevel{Label: "High", Rank: 2}},
	{Level: RiskLevel{Label: "Extreme", Rank: 3}},
}

func TestScale_InclusiveUpperBounds(t *testing.T) {
	// A value sitting exactly on a band edge belongs to the lower band
	if got := testScale.Classify(26.0); got.Label != "Low" {
		t.Errorf("Classify(26.0) = %s, want Low", got.Label)
	}
	if got := testScale.Classify(26.1); got.Label != "Moderate" {
		t.Errorf("Classify(26.1) = %s, want Moderate", got.Label)
	}
	if got := testScale.Classify(28.0); got.Label != "Moderate" {
		t.Errorf("Classify(28.0) = %s, want Moderate", got.Label)
	}
	if got := testScale.Classify(28.1); got.Label != "High" {
		t.Errorf("Classify(28.1) = %s, want High", got.Label)
	}
}

func TestScale_TotalOverReals(t *testing.T) {
	// Every value maps to exactly one band, including extremes
	for _, v := range []float64{-100, 0, 25.999, 30.0001, 1e9} {
		got := testScale.Classify(v)
		if got.Label == "" {
			t.Errorf("Classify(%g) produced empty level", v)
		}
	}
	if got := testScale.Classify(1e9); got.Label != "Extreme" {
		t.Errorf("Classify(1e9) = %s, want Extreme", got.Label)
	}
}

func TestComplianceReport_Invariant(t *testing.T) {
	var r ComplianceReport
	if !r.IsCompliant() {
		t.Error("empty report must be compliant")
	}

	r.AddWarning("approaching limit")
	r.AddCompliant("rule passed")
	if !r.IsCompliant() {
		t.Error("warnings alone must not break compliance")
	}
	if !r.HasWarnings() {
		t.Error("HasWarnings should report the recorded warning")
	}

	r.AddViolation("limit exceeded")
	if r.IsCompliant() {
		t.Error("a violation must break compliance")
	}
}

func TestRecommendations_PreservesOrder(t *testing.T) {
	var recs Recommendations
	recs.Add("first", "second")
	recs.AddIf(false, "skipped")
	recs.AddIf(true, "third")

	want := []string{"first", "second", "third"}
	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d", len(recs), len(want))
	}
	for i, w := range want {
		if recs[i] != w {
			t.Errorf("recs[%d] = %q, want %q", i, recs[i], w)
		}
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta("test-engine")
	if m.ID == "" {
		t.Error("NewMeta must assign an ID")
	}
	if m.Engine != "test-engine" {
		t.Errorf("Engine = %q, want test-engine", m.Engine)
	}
	if m.CreatedAt.IsZero() {
		t.Error("NewMeta must stamp a timestamp")
	}
	if m.CreatedAt.Location() != m.CreatedAt.UTC().Location() {
		t.Error("timestamp must be UTC")
	}
}
