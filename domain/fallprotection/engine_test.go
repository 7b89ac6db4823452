package fallprotection

import (
	"math"
	"testing"

	"safetycalc/domain/core"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ============================================================================
// TEST: Calculate
// ============================================================================

func TestCalculate_HighFallScenario(t *testing.T) {
	// Scenario: 6 m fall height, 1.8 m lanyard, anchor at foot level,
	// concrete below. Every distance metric is hand-checked.
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		FallHeight:           6,
		LanyardLength:        1.8,
		DecelerationDistance: 1.0,
		WorkerWeight:         100,
		SurfaceType:          SurfaceConcrete,
		SystemType:           SystemArrest,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	m := res.Metrics
	if !almostEqual(m.FreeFallDistance, 8.3, 1e-9) {
		t.Errorf("FreeFallDistance = %.4f, want 8.3", m.FreeFallDistance)
	}
	if !almostEqual(m.TotalFallDistance, 9.3, 1e-9) {
		t.Errorf("TotalFallDistance = %.4f, want 9.3", m.TotalFallDistance)
	}
	if !almostEqual(m.ClearanceRequired, 11.1, 1e-9) {
		t.Errorf("ClearanceRequired = %.4f, want 11.1", m.ClearanceRequired)
	}
	if !almostEqual(m.ImpactForce, 8142.3, 0.01) {
		t.Errorf("ImpactForce = %.2f, want 8142.3", m.ImpactForce)
	}

	// 8.3 m free fall breaches the 1.8 m OSHA limit and the impact force
	// breaches 8 kN, so the report cannot be compliant
	if res.Compliance.IsCompliant() {
		t.Error("expected OSHA violations for 8.3 m free fall")
	}
	if len(res.Compliance.Violations) != 2 {
		t.Errorf("got %d violations, want 2: %v", len(res.Compliance.Violations), res.Compliance.Violations)
	}

	if res.Risk.Level.Label != "Extreme Risk" {
		t.Errorf("Risk = %s, want Extreme Risk", res.Risk.Level.Label)
	}
	if res.SafetyTier != SafetyInsufficient {
		t.Errorf("SafetyTier = %s, want Insufficient", res.SafetyTier)
	}
}

func TestCalculate_LowRiskScenario(t *testing.T) {
	// Scenario: anchor well above the worker keeps free fall at zero
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		FallHeight:    2,
		LanyardLength: 1.0,
		AnchorHeight:  4,
		SurfaceType:   SurfaceSteel,
		SystemType:    SystemRestraint,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// 2 - 4 + 1.0 + 0.5 < 0 clamps to zero
	if res.Metrics.FreeFallDistance != 0 {
		t.Errorf("FreeFallDistance = %.4f, want 0", res.Metrics.FreeFallDistance)
	}
	if res.Metrics.ImpactForce != 0 {
		t.Errorf("ImpactForce = %.4f, want 0", res.Metrics.ImpactForce)
	}
	if !res.Compliance.IsCompliant() {
		t.Errorf("zero free fall restraint should be compliant: %v", res.Compliance.Violations)
	}
	if res.Risk.Level.Label != "Low Risk" {
		t.Errorf("Risk = %s, want Low Risk", res.Risk.Level.Label)
	}
}

func TestCalculate_RestraintWithFreeFallViolates(t *testing.T) {
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		FallHeight:    3,
		LanyardLength: 1.5,
		SurfaceType:   SurfaceGround,
		SystemType:    SystemRestraint,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.Compliance.IsCompliant() {
		t.Error("restraint system with nonzero free fall must violate")
	}
}

func TestCalculate_ClearanceMonotonicInFallHeight(t *testing.T) {
	eng := NewEngine()
	prev := -1.0
	for h := 1.0; h <= 20; h += 0.5 {
		res, err := eng.Calculate(Input{
			FallHeight:    h,
			LanyardLength: 1.8,
			SurfaceType:   SurfaceConcrete,
			SystemType:    SystemArrest,
		})
		if err != nil {
			t.Fatalf("Calculate(%g) failed: %v", h, err)
		}
		if res.Metrics.ClearanceRequired <= prev {
			t.Fatalf("clearance not increasing at height %g: %.3f <= %.3f",
				h, res.Metrics.ClearanceRequired, prev)
		}
		prev = res.Metrics.ClearanceRequired
	}
}

func TestCalculate_UnknownSurfaceFallsBack(t *testing.T) {
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		FallHeight:    2,
		LanyardLength: 1.0,
		SurfaceType:   SurfaceType("gravel"),
		SystemType:    SystemArrest,
	})
	if err != nil {
		t.Fatalf("unknown surface must not fail: %v", err)
	}

	// 2 + 1.0 + 0.5 free fall, + 1.0 decel, + 1.0 + 0.5 margins, + 0.5 default
	if !almostEqual(res.Metrics.ClearanceRequired, 6.5, 1e-9) {
		t.Errorf("ClearanceRequired = %.4f, want 6.5 with default surface factor",
			res.Metrics.ClearanceRequired)
	}
}

func TestCalculate_ValidationFailures(t *testing.T) {
	eng := NewEngine()

	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"zero fall height", Input{LanyardLength: 1.8, SystemType: SystemArrest}, "fallHeight"},
		{"zero lanyard", Input{FallHeight: 3, SystemType: SystemArrest}, "lanyardLength"},
		{"bad system", Input{FallHeight: 3, LanyardLength: 1.8, SystemType: "parachute"}, "systemType"},
		{"negative anchor", Input{FallHeight: 3, LanyardLength: 1.8, AnchorHeight: -1, SystemType: SystemArrest}, "anchorHeight"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := eng.Calculate(tc.in)
			ve, ok := core.AsValidationError(err)
			if !ok {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != tc.field {
				t.Errorf("Field = %q, want %q", ve.Field, tc.field)
			}
		})
	}
}

func TestCalculate_RecommendationsLeadWithBaseline(t *testing.T) {
	eng := NewEngine()
	res, err := eng.Calculate(Input{
		FallHeight:    6,
		LanyardLength: 1.8,
		SurfaceType:   SurfaceConcrete,
		SystemType:    SystemArrest,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if len(res.Recommendations) < 3 {
		t.Fatalf("expected at least the 3 baseline items, got %d", len(res.Recommendations))
	}
	if res.Recommendations[0] != "Inspect all fall protection equipment before each use" {
		t.Errorf("baseline item order broken: %q", res.Recommendations[0])
	}

	// Impact force 8142 N exceeds the 6000 N warning level
	found := false
	for _, rec := range res.Recommendations {
		if rec == "Ensure anchor point can withstand 22kN (5000 lbf)" {
			found = true
		}
	}
	if !found {
		t.Error("high impact force should recommend the 22kN anchor rating")
	}
}

// ============================================================================
// TEST: AnchorStrength
// ============================================================================

func TestAnchorStrength_BeamClamp(t *testing.T) {
	eng := NewEngine()

	res, err := eng.AnchorStrength(AnchorInput{
		Type:     AnchorBeamClamp,
		Material: "steel",
		Diameter: 25,
		Depth:    10,
	})
	if err != nil {
		t.Fatalf("AnchorStrength failed: %v", err)
	}
	// 1000 base, steel x2, diameter >= 20 x1.5
	if res.Capacity != 3000 {
		t.Errorf("Capacity = %.0f, want 3000", res.Capacity)
	}
	if !res.OSHACompliant {
		t.Error("3000 kg beam clamp must meet the 2268 kg requirement")
	}
}

func TestAnchorStrength_RoofAnchorBelowRequirement(t *testing.T) {
	eng := NewEngine()

	res, err := eng.AnchorStrength(AnchorInput{
		Type:     AnchorRoofAnchor,
		Material: "screw",
		Diameter: 12,
		Depth:    50,
	})
	if err != nil {
		t.Fatalf("AnchorStrength failed: %v", err)
	}
	// 800 base, diameter >= 12 x1.3
	if !almostEqual(res.Capacity, 1040, 1e-9) {
		t.Errorf("Capacity = %.0f, want 1040", res.Capacity)
	}
	if res.OSHACompliant {
		t.Error("1040 kg roof anchor must not be OSHA compliant")
	}
	if res.Recommendation != "Only suitable for restraint systems" {
		t.Errorf("Recommendation = %q", res.Recommendation)
	}
}

func TestAnchorStrength_ConcreteMaterials(t *testing.T) {
	eng := NewEngine()

	base, err := eng.AnchorStrength(AnchorInput{Type: AnchorConcreteAnchor, Diameter: 10, Depth: 100})
	if err != nil {
		t.Fatalf("AnchorStrength failed: %v", err)
	}
	epoxy, err := eng.AnchorStrength(AnchorInput{Type: AnchorConcreteAnchor, Material: "epoxy", Diameter: 10, Depth: 100})
	if err != nil {
		t.Fatalf("AnchorStrength failed: %v", err)
	}
	if !almostEqual(epoxy.Capacity, base.Capacity*1.5, 1e-6) {
		t.Errorf("epoxy multiplier: %.0f vs base %.0f", epoxy.Capacity, base.Capacity)
	}
}

func TestAnchorStrength_UnknownType(t *testing.T) {
	eng := NewEngine()
	_, err := eng.AnchorStrength(AnchorInput{Type: "magnet", Diameter: 10, Depth: 10})
	if !core.IsValidationError(err) {
		t.Errorf("unknown anchor type must fail validation, got %v", err)
	}
}
