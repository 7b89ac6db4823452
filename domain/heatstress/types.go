package heatstress

import (
	"safetycalc/domain/core"
)

// SolarLoad is the solar radiation category used to estimate globe
// temperature when no globe reading is supplied
type SolarLoad string

const (
	SolarHigh   SolarLoad = "high"
	SolarMedium SolarLoad = "medium"
	SolarNone   SolarLoad = "none"
)

// WorkIntensity is the metabolic work-rate band
type WorkIntensity string

const (
	WorkLight     WorkIntensity = "light"
	WorkModerate  WorkIntensity = "moderate"
	WorkHeavy     WorkIntensity = "heavy"
	WorkVeryHeavy WorkIntensity = "very-heavy"
)

// ClothingType adjusts the sweat-rate estimate. Unknown tags fall back to a
// factor of 1.0.
type ClothingType string

const (
	ClothingNone       ClothingType = "none"
	ClothingCoveralls  ClothingType = "coveralls"
	ClothingImpermeable ClothingType = "impermeable"
	ClothingDoubleLayer ClothingType = "double-layer"
	ClothingChemical    ClothingType = "chemical-protective"
)

// Acclimatization is the worker's heat adaptation state
type Acclimatization string

const (
	Acclimatized   Acclimatization = "acclimatized"
	Unacclimatized Acclimatization = "unacclimatized"
	AcclimUnknown  Acclimatization = "unknown"
)

// Input carries environmental readings (°C) and work parameters
type Input struct {
	DryBulb         float64
	WetBulb         float64
	GlobeTemp       float64 // optional; 0 means not measured
	HasGlobeReading bool
	Humidity        float64 // relative humidity, percent
	SolarLoad       SolarLoad
	WorkIntensity   WorkIntensity
	Clothing        ClothingType
	Acclimatization Acclimatization
}

// Metrics are the derived heat-stress indices
type Metrics struct {
	WBGT      float64 // °C
	HeatIndex float64 // °C
	SweatRate float64 // L/h
}

// WorkRestSchedule is the ACGIH-style work/rest split for one hour of work
type WorkRestSchedule struct {
	WorkPercent int
	RestPercent int
	CycleLabel  string
	MaxWorkTime float64 // minutes per hour
}

// Hydration is the fluid replacement plan for an 8-hour shift
type Hydration struct {
	HourlyLoss        float64 // L/h
	DailyLoss         float64 // L
	RecommendedIntake float64 // L
	PreShift          float64 // L
	DuringWork        float64 // L
	PerHour           float64 // L/h
	Schedule          string
}

// Result is the complete heat-stress assessment
type Result struct {
	core.Meta
	Input           Input
	Metrics         Metrics
	Schedule        WorkRestSchedule
	Hydration       Hydration
	Risk            core.ClassificationResult
	Symptoms        string
	Action          string
	Compliance      core.ComplianceReport
	Recommendations core.Recommendations
}

// ActivityLevel scales the personal hydration baseline
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityHeavy     ActivityLevel = "heavy"
	ActivityVeryHeavy ActivityLevel = "very-heavy"
)

// HydrationInput carries the personal hydration parameters
type HydrationInput struct {
	Weight      float64 // kg
	Activity    ActivityLevel
	Temperature float64 // °C
}

// UrineColorRef is one entry of the static hydration self-check guide
type UrineColorRef struct {
	Color       string
	Description string
}

// HydrationResult is the personal hydration plan
type HydrationResult struct {
	core.Meta
	DailyIntake float64 // L
	Hourly      float64 // L during an 8-hour shift
	PreShift    float64 // L
	PostShift   float64 // L
	ColorGuide  []UrineColorRef
}
