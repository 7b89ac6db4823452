// Package testkit provides canonical assessment scenarios used by the demo
// UI, the batch runner and integration tests. Each scenario is a realistic
// workplace setup with known-good engine outputs.
package testkit

import (
	"fmt"

	"safetycalc/adapters/records"
	"safetycalc/domain/fallprotection"
	"safetycalc/domain/heatstress"
	"safetycalc/domain/incidentrate"
	"safetycalc/domain/noise"
	"safetycalc/domain/ppe"
	"safetycalc/domain/training"
	"safetycalc/ports"
)

// TestKit bundles the engines with the canonical scenario set
type TestKit struct {
	engines ports.Engines
}

// NewTestKit creates a test kit over freshly wired engines
func NewTestKit() *TestKit {
	return &TestKit{engines: ports.NewEngines()}
}

// Engines exposes the wired engine bundle
func (t *TestKit) Engines() *ports.Engines {
	return &t.engines
}

// FallProtectionScenario is a roofer on a 6 m eave with a standard
// shock-absorbing lanyard anchored at foot level
func (t *TestKit) FallProtectionScenario() fallprotection.Input {
	return fallprotection.Input{
		FallHeight:    6,
		LanyardLength: 1.8,
		WorkerWeight:  100,
		SurfaceType:   fallprotection.SurfaceConcrete,
		SystemType:    fallprotection.SystemArrest,
	}
}

// HeatStressScenario is outdoor summer roadwork under high solar load
func (t *TestKit) HeatStressScenario() heatstress.Input {
	return heatstress.Input{
		DryBulb:         32,
		WetBulb:         26,
		Humidity:        55,
		SolarLoad:       heatstress.SolarHigh,
		WorkIntensity:   heatstress.WorkModerate,
		Clothing:        heatstress.ClothingCoveralls,
		Acclimatization: heatstress.Acclimatized,
	}
}

// IncidentRateScenario is a 250-person construction firm's annual figures
func (t *TestKit) IncidentRateScenario() incidentrate.Input {
	return incidentrate.Input{
		RecordableInjuries: 5,
		LostTimeInjuries:   2,
		TotalHoursWorked:   500000,
		TotalEmployees:     250,
		Industry:           incidentrate.IndustryConstruction,
		MonthlyRecordables: []float64{5, 4, 4, 3, 3, 2},
	}
}

// NoiseScenario is a grinder operator without hearing protection
func (t *TestKit) NoiseScenario() noise.Input {
	return noise.Input{
		NoiseLevel:       95,
		ExposureDuration: 6,
	}
}

// PPEScenario is a solvent transfer task with splash and cut hazards
func (t *TestKit) PPEScenario() ppe.Input {
	return ppe.Input{
		TaskDescription: "Solvent transfer and drum handling",
		Industry:        "manufacturing",
		TaskDuration:    6,
		Hazards: []ppe.Hazard{
			{Type: ppe.HazardChemical, Severity: ppe.SeverityHigh},
			{Type: ppe.HazardMechanical, Severity: ppe.SeverityMedium},
		},
	}
}

// TrainingScenario is a mid-size construction employer planning next year
func (t *TestKit) TrainingScenario() training.Input {
	return training.Input{
		CompanySize:          training.SizeMedium,
		Industry:             "construction",
		Location:             training.LocationUSA,
		TotalEmployees:       180,
		NewHires:             25,
		TurnoverRate:         0.15,
		ExperienceLevel:      training.ExperienceIntermediate,
		CurrentTrainingHours: 16,
		TrainingFrequency:    training.FrequencyQuarterly,
		TrainingMethod:       training.MethodBlended,
		Regulations:          []training.Regulation{training.RegulationOSHA},
	}
}

// RunAll executes every canonical scenario and flattens the results for
// rendering. Scenario inputs are fixed, so failures indicate an engine
// regression rather than bad data.
func (t *TestKit) RunAll() ([]ports.ResultRecord, error) {
	var out []ports.ResultRecord

	fall, err := t.engines.FallProtection.Calculate(t.FallProtectionScenario())
	if err != nil {
		return nil, fmt.Errorf("fall protection scenario failed: %w", err)
	}
	out = append(out, records.FromFallProtection(fall))

	heat, err := t.engines.HeatStress.Calculate(t.HeatStressScenario())
	if err != nil {
		return nil, fmt.Errorf("heat stress scenario failed: %w", err)
	}
	out = append(out, records.FromHeatStress(heat))

	incidents, err := t.engines.IncidentRate.Calculate(t.IncidentRateScenario())
	if err != nil {
		return nil, fmt.Errorf("incident rate scenario failed: %w", err)
	}
	out = append(out, records.FromIncidentRate(incidents))

	exposure, err := t.engines.Noise.Calculate(t.NoiseScenario())
	if err != nil {
		return nil, fmt.Errorf("noise scenario failed: %w", err)
	}
	out = append(out, records.FromNoise(exposure))

	gear, err := t.engines.PPE.Calculate(t.PPEScenario())
	if err != nil {
		return nil, fmt.Errorf("ppe scenario failed: %w", err)
	}
	out = append(out, records.FromPPE(gear))

	program, err := t.engines.Training.Calculate(t.TrainingScenario())
	if err != nil {
		return nil, fmt.Errorf("training scenario failed: %w", err)
	}
	out = append(out, records.FromTraining(program))

	return out, nil
}
