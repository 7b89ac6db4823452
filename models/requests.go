// Package models holds the JSON request shapes accepted by the HTTP API and
// their conversions into domain inputs. Validation of values happens in the
// engines; these types only carry the wire format.
package models

import (
	"safetycalc/domain/fallprotection"
	"safetycalc/domain/heatstress"
	"safetycalc/domain/incidentrate"
	"safetycalc/domain/noise"
	"safetycalc/domain/ppe"
	"safetycalc/domain/training"
)

// FallProtectionRequest is the POST body for a fall protection assessment
type FallProtectionRequest struct {
	FallHeight           float64 `json:"fallHeight"`
	LanyardLength        float64 `json:"lanyardLength"`
	DecelerationDistance float64 `json:"decelerationDistance"`
	WorkerWeight         float64 `json:"workerWeight"`
	AnchorHeight         float64 `json:"anchorHeight"`
	SurfaceType          string  `json:"surfaceType"`
	SystemType           string  `json:"systemType"`
}

func (r FallProtectionRequest) ToDomain() fallprotection.Input {
	return fallprotection.Input{
		FallHeight:           r.FallHeight,
		LanyardLength:        r.LanyardLength,
		DecelerationDistance: r.DecelerationDistance,
		WorkerWeight:         r.WorkerWeight,
		AnchorHeight:         r.AnchorHeight,
		SurfaceType:          fallprotection.SurfaceType(r.SurfaceType),
		SystemType:           fallprotection.SystemType(r.SystemType),
	}
}

// AnchorStrengthRequest is the POST body for an anchor capacity check
type AnchorStrengthRequest struct {
	Type     string  `json:"type"`
	Material string  `json:"material"`
	Diameter float64 `json:"diameter"`
	Depth    float64 `json:"depth"`
}

func (r AnchorStrengthRequest) ToDomain() fallprotection.AnchorInput {
	return fallprotection.AnchorInput{
		Type:     fallprotection.AnchorType(r.Type),
		Material: r.Material,
		Diameter: r.Diameter,
		Depth:    r.Depth,
	}
}

// HeatStressRequest is the POST body for a heat stress assessment. GlobeTemp
// is a pointer so an absent reading is distinguishable from 0 °C.
type HeatStressRequest struct {
	DryBulb         float64  `json:"dryBulb"`
	WetBulb         float64  `json:"wetBulb"`
	GlobeTemp       *float64 `json:"globeTemp,omitempty"`
	Humidity        float64  `json:"humidity"`
	SolarLoad       string   `json:"solarLoad"`
	WorkIntensity   string   `json:"workIntensity"`
	Clothing        string   `json:"clothing"`
	Acclimatization string   `json:"acclimatization"`
}

func (r HeatStressRequest) ToDomain() heatstress.Input {
	in := heatstress.Input{
		DryBulb:         r.DryBulb,
		WetBulb:         r.WetBulb,
		Humidity:        r.Humidity,
		SolarLoad:       heatstress.SolarLoad(r.SolarLoad),
		WorkIntensity:   heatstress.WorkIntensity(r.WorkIntensity),
		Clothing:        heatstress.ClothingType(r.Clothing),
		Acclimatization: heatstress.Acclimatization(r.Acclimatization),
	}
	if r.GlobeTemp != nil {
		in.GlobeTemp = *r.GlobeTemp
		in.HasGlobeReading = true
	}
	return in
}

// HydrationRequest is the POST body for a personal hydration plan
type HydrationRequest struct {
	Weight      float64 `json:"weight"`
	Activity    string  `json:"activity"`
	Temperature float64 `json:"temperature"`
}

func (r HydrationRequest) ToDomain() heatstress.HydrationInput {
	return heatstress.HydrationInput{
		Weight:      r.Weight,
		Activity:    heatstress.ActivityLevel(r.Activity),
		Temperature: r.Temperature,
	}
}

// IncidentRateRequest is the POST body for an incident rate assessment
type IncidentRateRequest struct {
	RecordableInjuries int       `json:"recordableInjuries"`
	LostTimeInjuries   int       `json:"lostTimeInjuries"`
	TotalHoursWorked   float64   `json:"totalHoursWorked"`
	TotalEmployees     int       `json:"totalEmployees"`
	Industry           string    `json:"industry"`
	MonthlyRecordables []float64 `json:"monthlyRecordables,omitempty"`
}

func (r IncidentRateRequest) ToDomain() incidentrate.Input {
	return incidentrate.Input{
		RecordableInjuries: r.RecordableInjuries,
		LostTimeInjuries:   r.LostTimeInjuries,
		TotalHoursWorked:   r.TotalHoursWorked,
		TotalEmployees:     r.TotalEmployees,
		Industry:           incidentrate.Industry(r.Industry),
		MonthlyRecordables: r.MonthlyRecordables,
	}
}

// NoiseRequest is the POST body for a noise exposure assessment
type NoiseRequest struct {
	NoiseLevel        float64   `json:"noiseLevel"`
	ExposureDuration  float64   `json:"exposureDuration"`
	WorkDaysPerWeek   int       `json:"workDaysPerWeek"`
	HearingProtection bool      `json:"hearingProtection"`
	ProtectionRating  float64   `json:"protectionRating"`
	SourceLevels      []float64 `json:"sourceLevels,omitempty"`
}

func (r NoiseRequest) ToDomain() noise.Input {
	return noise.Input{
		NoiseLevel:        r.NoiseLevel,
		ExposureDuration:  r.ExposureDuration,
		WorkDaysPerWeek:   r.WorkDaysPerWeek,
		HearingProtection: r.HearingProtection,
		ProtectionRating:  r.ProtectionRating,
		SourceLevels:      r.SourceLevels,
	}
}

// HazardRequest is one hazard entry in a PPE selection request
type HazardRequest struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

// PPERequest is the POST body for a PPE selection
type PPERequest struct {
	TaskDescription string          `json:"taskDescription"`
	Industry        string          `json:"industry"`
	TaskDuration    float64         `json:"taskDuration"`
	Hazards         []HazardRequest `json:"hazards"`
	Temperature     float64         `json:"temperature"`
	Humidity        float64         `json:"humidity"`
}

func (r PPERequest) ToDomain() ppe.Input {
	hazards := make([]ppe.Hazard, len(r.Hazards))
	for i, h := range r.Hazards {
		hazards[i] = ppe.Hazard{
			Type:     ppe.HazardType(h.Type),
			Severity: ppe.Severity(h.Severity),
		}
	}
	return ppe.Input{
		TaskDescription: r.TaskDescription,
		Industry:        r.Industry,
		TaskDuration:    r.TaskDuration,
		Hazards:         hazards,
		Temperature:     r.Temperature,
		Humidity:        r.Humidity,
	}
}

// TrainingRequest is the POST body for a training program assessment
type TrainingRequest struct {
	CompanySize           string   `json:"companySize"`
	Industry              string   `json:"industry"`
	Location              string   `json:"location"`
	TotalEmployees        int      `json:"totalEmployees"`
	NewHires              int      `json:"newHires"`
	TurnoverRate          float64  `json:"turnoverRate"`
	ExperienceLevel       string   `json:"experienceLevel"`
	CurrentTrainingHours  float64  `json:"currentTrainingHours"`
	TrainingFrequency     string   `json:"trainingFrequency"`
	TrainingMethod        string   `json:"trainingMethod"`
	CertificationRequired bool     `json:"certificationRequired"`
	Regulations           []string `json:"regulations,omitempty"`
}

func (r TrainingRequest) ToDomain() training.Input {
	regs := make([]training.Regulation, len(r.Regulations))
	for i, reg := range r.Regulations {
		regs[i] = training.Regulation(reg)
	}
	return training.Input{
		CompanySize:           training.CompanySize(r.CompanySize),
		Industry:              r.Industry,
		Location:              training.Location(r.Location),
		TotalEmployees:        r.TotalEmployees,
		NewHires:              r.NewHires,
		TurnoverRate:          r.TurnoverRate,
		ExperienceLevel:       training.Experience(r.ExperienceLevel),
		CurrentTrainingHours:  r.CurrentTrainingHours,
		TrainingFrequency:     training.Frequency(r.TrainingFrequency),
		TrainingMethod:        training.Method(r.TrainingMethod),
		CertificationRequired: r.CertificationRequired,
		Regulations:           regs,
	}
}

// TrainingNeedsRequest is the POST body for a department needs assessment
type TrainingNeedsRequest struct {
	Department      string `json:"department"`
	RiskLevel       string `json:"riskLevel"`
	IncidentHistory string `json:"incidentHistory"`
	SkillGaps       string `json:"skillGaps"`
}

func (r TrainingNeedsRequest) ToDomain() training.NeedsInput {
	return training.NeedsInput{
		Department:      r.Department,
		RiskLevel:       r.RiskLevel,
		IncidentHistory: r.IncidentHistory,
		SkillGaps:       r.SkillGaps,
	}
}
