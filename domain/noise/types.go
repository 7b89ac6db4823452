package noise

import (
	"safetycalc/domain/core"
)

// ActionRequired tags the urgency of the response to a dose band
type ActionRequired string

const (
	ActionNone        ActionRequired = "None"
	ActionRecommended ActionRequired = "Recommended"
	ActionRequiredNow ActionRequired = "Required"
)

// Input carries one worker's noise exposure parameters
type Input struct {
	NoiseLevel        float64 // dBA
	ExposureDuration  float64 // hours per day
	WorkDaysPerWeek   int     // optional, defaults to 5
	HearingProtection bool
	ProtectionRating  float64 // NRR in dB, used only when HearingProtection is set

	// SourceLevels optionally lists simultaneous noise sources in dBA;
	// when present their combined level replaces NoiseLevel
	SourceLevels []float64
}

// Metrics are the derived dose values
type Metrics struct {
	NoiseLevel          float64 // dBA actually assessed (combined if sources given)
	PermissibleExposure float64 // hours
	DailyDose           float64 // percent
	WeeklyDose          float64 // percent
	TWA                 float64 // dBA
}

// Protection reports the effect of hearing protection on the dose
type Protection struct {
	Used           bool
	Rating         float64
	ProtectedLevel float64
	ProtectedDose  float64
	Effective      bool
}

// Result is the complete noise-exposure assessment
type Result struct {
	core.Meta
	Input           Input
	Metrics         Metrics
	Protection      Protection
	Risk            core.ClassificationResult
	Action          ActionRequired
	Recommendations core.Recommendations
}
