package ppe

import (
	"safetycalc/domain/core"
)

// HazardType is one of the recognized workplace hazard classes
type HazardType string

const (
	HazardChemical     HazardType = "chemical"
	HazardMechanical   HazardType = "mechanical"
	HazardThermal      HazardType = "thermal"
	HazardBiological   HazardType = "biological"
	HazardRadiological HazardType = "radiological"
	HazardElectrical   HazardType = "electrical"
	HazardFall         HazardType = "fall"
)

// Severity is the declared severity of one hazard
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Hazard pairs a hazard type with its declared severity
type Hazard struct {
	Type     HazardType
	Severity Severity
}

// Category is a PPE equipment category
type Category string

const (
	CategoryHead        Category = "head"
	CategoryEye         Category = "eye"
	CategoryHearing     Category = "hearing"
	CategoryRespiratory Category = "respiratory"
	CategoryHand        Category = "hand"
	CategoryFoot        Category = "foot"
	CategoryBody        Category = "body"
	CategoryFall        Category = "fall"
)

// categoryOrder fixes the evaluation and rendering order of categories
var categoryOrder = []Category{
	CategoryHead, CategoryEye, CategoryHearing, CategoryRespiratory,
	CategoryHand, CategoryFoot, CategoryBody, CategoryFall,
}

// Input carries the task, hazard and environment parameters
type Input struct {
	TaskDescription string
	Industry        string
	TaskDuration    float64 // hours, optional, defaults to 8
	Hazards         []Hazard
	Temperature     float64 // °C, optional, defaults to 20
	Humidity        float64 // percent, optional, defaults to 50
}

// HazardScore is the per-hazard risk assessment
type HazardScore struct {
	Level       string
	Description string
	Score       float64 // duration-scaled
}

// Item is the tagged variant record one selector returns per category
type Item struct {
	Type             string
	Description      string
	Standard         string
	ProtectionLevel  string
	ProtectionFactor float64 // respiratory only; 0 when not applicable
	Material         string
	TempRating       string
}

// Compliance groups standards coverage and gaps for the selected set
type Compliance struct {
	OSHA     []string
	ANSI     []string
	NFPA     []string
	Missing  []string
	Warnings []string
}

// IsCompliant reports whether no required category is missing
func (c Compliance) IsCompliant() bool {
	return len(c.Missing) == 0
}

// Comfort scores wearability of the combined set
type Comfort struct {
	Level  string
	Score  int
	Issues []string
}

// Cost estimates purchase and usage cost of the selected set
type Cost struct {
	Purchase float64
	Daily    float64
	Task     float64
	Items    map[Category]float64
}

// Result is the complete PPE selection assessment
type Result struct {
	core.Meta
	Input              Input
	HazardAssessment   map[HazardType]HazardScore
	OverallRisk        string
	RequiredCategories []Category
	Items              map[Category]Item
	ProtectionFactors  map[Category]float64
	OverallProtection  float64
	Compliance         Compliance
	Comfort            Comfort
	Cost               Cost
	Recommendations    core.Recommendations
}
