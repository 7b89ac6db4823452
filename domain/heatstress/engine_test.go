package heatstress

import (
	"math"
	"reflect"
	"testing"

	"safetycalc/domain/core"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ============================================================================
// TEST: WBGT and heat index
// ============================================================================

func TestCalculate_OutdoorWBGTEstimatesGlobe(t *testing.T) {
	// Scenario: outdoor reading without a globe thermometer, full sun.
	// Globe is estimated as dry bulb + 10.
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		DryBulb:         32,
		WetBulb:         26,
		Humidity:        60,
		SolarLoad:       SolarHigh,
		WorkIntensity:   WorkModerate,
		Clothing:        ClothingNone,
		Acclimatization: AcclimUnknown,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// 0.7*26 + 0.2*42 + 0.1*32 = 29.8
	if !almostEqual(res.Metrics.WBGT, 29.8, 1e-9) {
		t.Errorf("WBGT = %.4f, want 29.8", res.Metrics.WBGT)
	}
	if res.Risk.Level.Label != "High Risk" {
		t.Errorf("Risk = %s, want High Risk", res.Risk.Level.Label)
	}

	// 29.8 lands in the 50% work band
	if res.Schedule.WorkPercent != 50 {
		t.Errorf("WorkPercent = %d, want 50", res.Schedule.WorkPercent)
	}
	if res.Schedule.CycleLabel != "30 min work / 30 min rest" {
		t.Errorf("CycleLabel = %q", res.Schedule.CycleLabel)
	}
}

func TestCalculate_IndoorWBGTUsesGlobeReading(t *testing.T) {
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		DryBulb:         30,
		WetBulb:         24,
		GlobeTemp:       34,
		HasGlobeReading: true,
		Humidity:        50,
		WorkIntensity:   WorkLight,
		Acclimatization: AcclimUnknown,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// 0.7*24 + 0.3*34 = 27.0
	if !almostEqual(res.Metrics.WBGT, 27.0, 1e-9) {
		t.Errorf("WBGT = %.4f, want 27.0", res.Metrics.WBGT)
	}
	if res.Risk.Level.Label != "Moderate Risk" {
		t.Errorf("Risk = %s, want Moderate Risk", res.Risk.Level.Label)
	}
}

func TestHeatIndex_RothfuszRegression(t *testing.T) {
	// 32°C at 60% humidity evaluates to roughly 37°C
	hi := heatIndex(32, 60)
	if !almostEqual(hi, 37.0, 1.0) {
		t.Errorf("heatIndex(32, 60) = %.2f, want ~37", hi)
	}

	// Heat index grows with humidity at fixed temperature
	if heatIndex(32, 80) <= heatIndex(32, 40) {
		t.Error("heat index must increase with humidity at 32°C")
	}
}

// ============================================================================
// TEST: Risk banding and acclimatization shifts
// ============================================================================

func TestCalculate_IdenticalInputIdenticalResult(t *testing.T) {
	// Only the Meta envelope (ID, timestamp) may differ between runs
	eng := NewEngine()
	in := Input{
		DryBulb:         32,
		WetBulb:         26,
		Humidity:        60,
		SolarLoad:       SolarHigh,
		WorkIntensity:   WorkModerate,
		Clothing:        ClothingCoveralls,
		Acclimatization: Acclimatized,
	}

	first, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	second, err := eng.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	first.Meta = core.Meta{}
	second.Meta = core.Meta{}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs should produce identical results outside the envelope")
	}
}

func TestCalculate_HotSummerDayFullSun(t *testing.T) {
	// Scenario: 35°C dry bulb, 28°C wet bulb, full sun, no globe
	// thermometer. Globe estimates to 45, putting WBGT just past the
	// Very High band's inclusive upper bound.
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		DryBulb:         35,
		WetBulb:         28,
		Humidity:        50,
		SolarLoad:       SolarHigh,
		WorkIntensity:   WorkLight,
		Acclimatization: AcclimUnknown,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	// 0.7*28 + 0.2*45 + 0.1*35 = 32.1
	if !almostEqual(res.Metrics.WBGT, 32.1, 1e-9) {
		t.Errorf("WBGT = %.4f, want 32.1", res.Metrics.WBGT)
	}
	if res.Risk.Level.Label != "Extreme Risk" {
		t.Errorf("Risk = %s, want Extreme Risk", res.Risk.Level.Label)
	}
}

func TestAssessRisk_BandEdges(t *testing.T) {
	// Inclusive upper bounds: exactly 28.0 is Moderate, just above is High
	eng := NewEngine()

	moderate, err := eng.Calculate(Input{
		DryBulb: 29, WetBulb: 28, GlobeTemp: 28, HasGlobeReading: true,
		Humidity: 50, WorkIntensity: WorkLight, Acclimatization: AcclimUnknown,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 0.7*28 + 0.3*28 = 28.0
	if moderate.Risk.Level.Label != "Moderate Risk" {
		t.Errorf("WBGT 28.0 = %s, want Moderate Risk", moderate.Risk.Level.Label)
	}

	high, err := eng.Calculate(Input{
		DryBulb: 29, WetBulb: 28, GlobeTemp: 29, HasGlobeReading: true,
		Humidity: 50, WorkIntensity: WorkLight, Acclimatization: AcclimUnknown,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 0.7*28 + 0.3*29 = 28.3
	if high.Risk.Level.Label != "High Risk" {
		t.Errorf("WBGT 28.3 = %s, want High Risk", high.Risk.Level.Label)
	}
}

func TestAssessRisk_AcclimatizationShifts(t *testing.T) {
	eng := NewEngine()
	base := Input{
		DryBulb: 29, WetBulb: 28, GlobeTemp: 29, HasGlobeReading: true,
		Humidity: 50, WorkIntensity: WorkLight,
	}

	// WBGT 28.3 is High for an unknown state
	acclim := base
	acclim.Acclimatization = Acclimatized
	resA, err := eng.Calculate(acclim)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if resA.Risk.Level.Label != "Moderate Risk" {
		t.Errorf("acclimatized shift: %s, want Moderate Risk", resA.Risk.Level.Label)
	}

	unacclim := base
	unacclim.Acclimatization = Unacclimatized
	resU, err := eng.Calculate(unacclim)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if resU.Risk.Level.Label != "Very High Risk" {
		t.Errorf("unacclimatized shift: %s, want Very High Risk", resU.Risk.Level.Label)
	}

	// Very High triggers the General Duty Clause violation
	if resU.Compliance.IsCompliant() {
		t.Error("Very High risk must produce a compliance violation")
	}
}

func TestAssessRisk_ExtremeNeverImproves(t *testing.T) {
	eng := NewEngine()

	res, err := eng.Calculate(Input{
		DryBulb: 40, WetBulb: 35, GlobeTemp: 40, HasGlobeReading: true,
		Humidity: 70, WorkIntensity: WorkLight, Acclimatization: Acclimatized,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 0.7*35 + 0.3*40 = 36.5, beyond the last bound
	if res.Risk.Level.Label != "Extreme Risk" {
		t.Errorf("Risk = %s, acclimatization must not soften Extreme", res.Risk.Level.Label)
	}
	if res.Schedule.WorkPercent > 10 {
		t.Errorf("WorkPercent = %d, expected near-zero work in extreme heat", res.Schedule.WorkPercent)
	}
}

// ============================================================================
// TEST: Work-rest schedule adjustments
// ============================================================================

func TestWorkRestSchedule_AdjustmentsClamp(t *testing.T) {
	eng := NewEngine()

	// Heavy work and no acclimatization at base 25% work:
	// 25 - 25 = 0, then -15 clamps to 0
	res, err := eng.Calculate(Input{
		DryBulb: 32, WetBulb: 31, GlobeTemp: 32, HasGlobeReading: true,
		Humidity: 60, WorkIntensity: WorkHeavy, Acclimatization: Unacclimatized,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	// 0.7*31 + 0.3*32 = 31.3 → base 25% band
	if res.Schedule.WorkPercent != 0 {
		t.Errorf("WorkPercent = %d, want 0 after clamped adjustments", res.Schedule.WorkPercent)
	}
	if res.Schedule.RestPercent != 100 {
		t.Errorf("RestPercent = %d, want 100", res.Schedule.RestPercent)
	}
}

func TestWorkRestSchedule_AcclimatizedBonusCapped(t *testing.T) {
	eng := NewEngine()

	// Continuous work band plus the acclimatization bonus clamps at 100
	res, err := eng.Calculate(Input{
		DryBulb: 24, WetBulb: 22, GlobeTemp: 24, HasGlobeReading: true,
		Humidity: 40, WorkIntensity: WorkLight, Acclimatization: Acclimatized,
	})
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if res.Schedule.WorkPercent != 100 {
		t.Errorf("WorkPercent = %d, want 100", res.Schedule.WorkPercent)
	}
}

// ============================================================================
// TEST: Sweat rate and hydration
// ============================================================================

func TestSweatRate_ClothingScaling(t *testing.T) {
	base := sweatRate(30, WorkModerate, ClothingNone)
	chem := sweatRate(30, WorkModerate, ClothingChemical)
	if !almostEqual(chem, base*2.0, 1e-9) {
		t.Errorf("chemical clothing factor: %.3f vs base %.3f", chem, base)
	}

	// Unknown clothing keeps factor 1.0
	unknown := sweatRate(30, WorkModerate, ClothingType("tuxedo"))
	if !almostEqual(unknown, base, 1e-9) {
		t.Errorf("unknown clothing must not scale: %.3f vs %.3f", unknown, base)
	}
}

func TestHydrationPlan_Arithmetic(t *testing.T) {
	sched := WorkRestSchedule{WorkPercent: 50}
	h := hydrationPlan(1.0, sched)

	// 1.0 L/h * 8 h * 50% = 4.0 L lost, 6.0 L intake
	if !almostEqual(h.DailyLoss, 4.0, 1e-9) {
		t.Errorf("DailyLoss = %.3f, want 4.0", h.DailyLoss)
	}
	if !almostEqual(h.RecommendedIntake, 6.0, 1e-9) {
		t.Errorf("RecommendedIntake = %.3f, want 6.0", h.RecommendedIntake)
	}
	if !almostEqual(h.DuringWork, 5.5, 1e-9) {
		t.Errorf("DuringWork = %.3f, want 5.5", h.DuringWork)
	}
}

// ============================================================================
// TEST: PersonalHydration
// ============================================================================

func TestPersonalHydration(t *testing.T) {
	eng := NewEngine()

	res, err := eng.PersonalHydration(HydrationInput{
		Weight:      80,
		Activity:    ActivityModerate,
		Temperature: 30,
	})
	if err != nil {
		t.Fatalf("PersonalHydration failed: %v", err)
	}

	// 80 kg * 30 mL * 1.5 * (1 + 0.04*5) = 4320 mL
	if !almostEqual(res.DailyIntake, 4.32, 1e-9) {
		t.Errorf("DailyIntake = %.3f L, want 4.32", res.DailyIntake)
	}
	if !almostEqual(res.Hourly, 0.54, 1e-9) {
		t.Errorf("Hourly = %.3f L, want 0.54", res.Hourly)
	}
	if len(res.ColorGuide) != 6 {
		t.Errorf("ColorGuide has %d entries, want 6", len(res.ColorGuide))
	}
}

func TestPersonalHydration_NoHeatAdjustmentBelow25(t *testing.T) {
	eng := NewEngine()

	res, err := eng.PersonalHydration(HydrationInput{
		Weight:      70,
		Activity:    ActivitySedentary,
		Temperature: 20,
	})
	if err != nil {
		t.Fatalf("PersonalHydration failed: %v", err)
	}
	// 70 * 30 * 1.0 = 2100 mL, no temperature surcharge
	if !almostEqual(res.DailyIntake, 2.1, 1e-9) {
		t.Errorf("DailyIntake = %.3f L, want 2.1", res.DailyIntake)
	}
}

func TestPersonalHydration_Validation(t *testing.T) {
	eng := NewEngine()

	_, err := eng.PersonalHydration(HydrationInput{Weight: 10, Temperature: 20})
	ve, ok := core.AsValidationError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "bodyWeight" {
		t.Errorf("Field = %q, want bodyWeight", ve.Field)
	}
}

func TestCalculate_ValidationRejectsExtremeReadings(t *testing.T) {
	eng := NewEngine()
	_, err := eng.Calculate(Input{DryBulb: 75, WetBulb: 25, Humidity: 50})
	if !core.IsValidationError(err) {
		t.Errorf("75°C dry bulb must fail validation, got %v", err)
	}
}
