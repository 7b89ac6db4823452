package ppe

// hazardScoreParams holds the base score per severity, the thresholds
// that map a raw score onto a level, and the level descriptions for one
// hazard type.
type hazardScoreParams struct {
	high, medium, low  float64
	highMin, mediumMin float64
	highDesc           string
	mediumDesc         string
	lowDesc            string
}

var hazardScores = map[HazardType]hazardScoreParams{
	HazardChemical: {
		high: 9, medium: 6, low: 3,
		highMin: 7, mediumMin: 4,
		highDesc:   "Chemical exposure requires highest level protection",
		mediumDesc: "Chemical exposure requires adequate protection",
		lowDesc:    "Minimal chemical exposure risk",
	},
	HazardMechanical: {
		high: 8, medium: 5, low: 2,
		highMin: 6, mediumMin: 3,
		highDesc:   "High risk of impact/cut hazards",
		mediumDesc: "Moderate mechanical hazard risk",
		lowDesc:    "Low mechanical hazard risk",
	},
	HazardThermal: {
		high: 7, medium: 4, low: 1,
		highMin: 5, mediumMin: 2,
		highDesc:   "Extreme temperature exposure",
		mediumDesc: "Moderate temperature exposure",
		lowDesc:    "Normal temperature conditions",
	},
	HazardBiological: {
		high: 10, medium: 7, low: 4,
		highMin: 8, mediumMin: 5,
		highDesc:   "Biological hazard requires isolation",
		mediumDesc: "Biological hazard requires protection",
		lowDesc:    "Low biological hazard risk",
	},
	HazardRadiological: {
		high: 9, medium: 6, low: 3,
		highMin: 7, mediumMin: 4,
		highDesc:   "Radiological hazard, specialized PPE required",
		mediumDesc: "Moderate radiological hazard",
		lowDesc:    "Low radiological hazard risk",
	},
	HazardElectrical: {
		high: 8, medium: 5, low: 2,
		highMin: 6, mediumMin: 3,
		highDesc:   "Electrical hazard with arc flash/electrocution risk",
		mediumDesc: "Electrical hazard present",
		lowDesc:    "Minimal electrical hazard",
	},
	HazardFall: {
		high: 9, medium: 6, low: 3,
		highMin: 7, mediumMin: 4,
		highDesc:   "Fall hazard requires full arrest system",
		mediumDesc: "Fall hazard requires restraint system",
		lowDesc:    "Minimal fall hazard",
	},
}

const defaultHazardScore = 2

// duration scaling applied to raw scores
const (
	durationScaleThreshold     = 4.0
	durationScaleFactor        = 1.2
	longDurationScaleThreshold = 8.0
	longDurationScaleFactor    = 1.5
)

// overall risk thresholds over the scaled maximum score
const (
	overallHighMin   = 7.0
	overallMediumMin = 4.0
)

// protectionLevelFactors maps a selector's protection level label to the
// fraction of hazard exposure the item is credited with removing.
var protectionLevelFactors = map[string]float64{
	"Very High": 0.95,
	"High":      0.85,
	"Medium":    0.70,
	"Low":       0.50,
}

const defaultProtectionFactor = 0.30

type costRange struct {
	low, high float64
}

var costRanges = map[Category]costRange{
	CategoryHead:        {15, 50},
	CategoryEye:         {5, 100},
	CategoryHearing:     {2, 200},
	CategoryRespiratory: {1, 1000},
	CategoryHand:        {5, 50},
	CategoryFoot:        {50, 200},
	CategoryBody:        {20, 300},
	CategoryFall:        {100, 500},
}

// fixed-price overrides for specific equipment types
const (
	paprCost    = 800.0
	weldingCost = 150.0
)

const (
	dailyCostFraction = 0.10
	referenceShiftHrs = 8.0
)

// comfort scoring deductions
const (
	comfortHeatPenalty     = 20
	comfortColdPenalty     = 15
	comfortDurationPenalty = 10
	comfortLongPenalty     = 15
	comfortPerItemPenalty  = 5
	comfortItemThreshold   = 4
)
