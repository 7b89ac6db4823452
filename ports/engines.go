package ports

import (
	"safetycalc/domain/fallprotection"
	"safetycalc/domain/heatstress"
	"safetycalc/domain/incidentrate"
	"safetycalc/domain/noise"
	"safetycalc/domain/ppe"
	"safetycalc/domain/training"
)

// FallProtectionPort assesses fall arrest setups and anchor capacity
type FallProtectionPort interface {
	Calculate(in fallprotection.Input) (*fallprotection.Result, error)
	AnchorStrength(in fallprotection.AnchorInput) (*fallprotection.AnchorResult, error)
}

// HeatStressPort assesses WBGT exposure and personal hydration
type HeatStressPort interface {
	Calculate(in heatstress.Input) (*heatstress.Result, error)
	PersonalHydration(in heatstress.HydrationInput) (*heatstress.HydrationResult, error)
}

// IncidentRatePort computes OSHA incident statistics for one period
type IncidentRatePort interface {
	Calculate(in incidentrate.Input) (*incidentrate.Result, error)
}

// NoisePort computes noise dose and protection derating
type NoisePort interface {
	Calculate(in noise.Input) (*noise.Result, error)
}

// PPEPort selects a PPE ensemble from a hazard profile
type PPEPort interface {
	Calculate(in ppe.Input) (*ppe.Result, error)
}

// TrainingPort sizes and plans a safety training program
type TrainingPort interface {
	Calculate(in training.Input) (*training.Result, error)
	AssessNeeds(in training.NeedsInput) (*training.NeedsResult, error)
}

// Engines bundles every assessment port for injection into adapters
type Engines struct {
	FallProtection FallProtectionPort
	HeatStress     HeatStressPort
	IncidentRate   IncidentRatePort
	Noise          NoisePort
	PPE            PPEPort
	Training       TrainingPort
}

// NewEngines wires the concrete domain engines into the port bundle
func NewEngines() Engines {
	return Engines{
		FallProtection: fallprotection.NewEngine(),
		HeatStress:     heatstress.NewEngine(),
		IncidentRate:   incidentrate.NewEngine(),
		Noise:          noise.NewEngine(),
		PPE:            ppe.NewEngine(),
		Training:       training.NewEngine(),
	}
}
