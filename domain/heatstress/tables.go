package heatstress

import "safetycalc/domain/core"

// Rothfusz regression coefficients for the heat index in °C. Fixed; they are
// reproduced exactly, not re-derived.
const (
	hiC1 = -8.78469475556
	hiC2 = 1.61139411
	hiC3 = 2.33854883889
	hiC4 = -0.14611605
	hiC5 = -0.012308094
	hiC6 = -0.0164248277778
	hiC7 = 0.002211732
	hiC8 = 0.00072546
	hiC9 = -0.000003582
)

// solarGlobeOffsets estimate globe temperature above dry bulb by solar load
var solarGlobeOffsets = map[SolarLoad]float64{
	SolarHigh:   10,
	SolarMedium: 5,
	SolarNone:   0,
}

// sweatRateParams give the base sweat rate intercept and WBGT slope per
// work-intensity band (L/h)
var sweatRateParams = map[WorkIntensity]struct{ Base, Slope float64 }{
	WorkLight:     {0.3, 0.01},
	WorkModerate:  {0.5, 0.02},
	WorkHeavy:     {0.8, 0.03},
	WorkVeryHeavy: {1.2, 0.04},
}

// clothingFactors scale the sweat rate; unknown clothing keeps 1.0
var clothingFactors = map[ClothingType]float64{
	ClothingNone:        1.0,
	ClothingCoveralls:   1.3,
	ClothingImpermeable: 1.5,
	ClothingDoubleLayer: 1.8,
	ClothingChemical:    2.0,
}

// activityMultipliers scale the personal hydration baseline
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.0,
	ActivityLight:     1.2,
	ActivityModerate:  1.5,
	ActivityHeavy:     2.0,
	ActivityVeryHeavy: 2.5,
}

// Risk band labels in severity order. Rank ordering drives the
// acclimatization band shifts.
var (
	riskLow      = core.RiskLevel{Label: "Low Risk", Rank: 0}
	riskModerate = core.RiskLevel{Label: "Moderate Risk", Rank: 1}
	riskHigh     = core.RiskLevel{Label: "High Risk", Rank: 2}
	riskVeryHigh = core.RiskLevel{Label: "Very High Risk", Rank: 3}
	riskExtreme  = core.RiskLevel{Label: "Extreme Risk", Rank: 4}
)

// wbgtScale maps WBGT °C to risk band with inclusive upper bounds
var wbgtScale = core.Scale{
	{Upper: 26, Level: riskLow},
	{Upper: 28, Level: riskModerate},
	{Upper: 30, Level: riskHigh},
	{Upper: 32, Level: riskVeryHigh},
	{Level: riskExtreme},
}

var riskLevels = []core.RiskLevel{riskLow, riskModerate, riskHigh, riskVeryHigh, riskExtreme}

var riskSymptoms = map[string]string{
	riskLow.Label:      "Normal work, maintain hydration",
	riskModerate.Label: "Increased sweating, thirst, mild discomfort",
	riskHigh.Label:     "Heat cramps, fatigue, headache, nausea",
	riskVeryHigh.Label: "Heat exhaustion, dizziness, vomiting, confusion",
	riskExtreme.Label:  "Heat stroke - medical emergency",
}

var riskActions = map[string]string{
	riskLow.Label:      "General heat awareness",
	riskModerate.Label: "Implement work-rest schedule, increase hydration",
	riskHigh.Label:     "Mandatory work-rest cycles, close supervision",
	riskVeryHigh.Label: "Limited work only, medical supervision required",
	riskExtreme.Label:  "NO WORK ALLOWED - Immediate cooling required",
}

// workRestBands map WBGT to the base work percentage and cycle label
var workRestBands = []struct {
	UpperWBGT   float64
	WorkPercent int
	Label       string
}{
	{26, 100, "Continuous"},
	{28, 75, "45 min work / 15 min rest"},
	{30, 50, "30 min work / 30 min rest"},
	{32, 25, "15 min work / 45 min rest"},
}

const noWorkLabel = "No work in heat"

// urineColorGuide is the fixed 6-band hydration self-check reference
var urineColorGuide = []UrineColorRef{
	{Color: "#e6f7ff", Description: "Clear: Overhydrated, reduce intake"},
	{Color: "#b3e0ff", Description: "Pale Yellow: Well hydrated"},
	{Color: "#66c2ff", Description: "Yellow: Normal hydration"},
	{Color: "#3399ff", Description: "Dark Yellow: Mild dehydration"},
	{Color: "#0066cc", Description: "Amber: Dehydrated, drink water"},
	{Color: "#004080", Description: "Brown: Severely dehydrated, medical attention"},
}
