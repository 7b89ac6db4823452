package incidentrate

import (
	"safetycalc/domain/core"
)

// Industry selects the benchmark row; unknown tags fall back to "general"
type Industry string

const (
	IndustryConstruction   Industry = "construction"
	IndustryManufacturing  Industry = "manufacturing"
	IndustryTransportation Industry = "transportation"
	IndustryHealthcare     Industry = "healthcare"
	IndustryOilGas         Industry = "oil-gas"
	IndustryMining         Industry = "mining"
	IndustryAgriculture    Industry = "agriculture"
	IndustryRetail         Industry = "retail"
	IndustryEducation      Industry = "education"
	IndustryGeneral        Industry = "general"
)

// Input carries the raw incident counts and exposure hours
type Input struct {
	RecordableInjuries int
	LostTimeInjuries   int
	TotalHoursWorked   float64
	TotalEmployees     int // optional, defaults to 1
	Industry           Industry

	// MonthlyRecordables is an optional series of recordable counts per
	// month, oldest first, used for trend analysis
	MonthlyRecordables []float64
}

// Benchmark holds the per-industry reference rates
type Benchmark struct {
	TRIR   float64
	DART   float64
	Target float64
}

// Metrics are the derived incident statistics
type Metrics struct {
	TRIR          float64
	DART          float64
	LTIFR         float64
	SeverityRate  float64
	FrequencyRate float64
	AvgHoursPerEmployee float64
}

// Comparison bands one rate against its industry benchmark
type Comparison struct {
	Level      string
	Difference float64
	Percent    float64
}

// Performance is the weighted score and tier across all three rates
type Performance struct {
	Rating string
	Score  int
}

// Improvement quantifies the TRIR reduction needed to reach target
type Improvement struct {
	Reduction float64
	Percent   float64
	Target    float64
}

// CostImpact is the estimated financial burden of the recorded injuries
type CostImpact struct {
	Direct    float64
	Indirect  float64
	Total     float64
	PerInjury float64
}

// Trend summarizes an optional monthly recordable series
type Trend struct {
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
	Slope     float64
	Direction string
}

// Result is the complete incident-rate assessment
type Result struct {
	core.Meta
	Input           Input
	Metrics         Metrics
	Benchmark       Benchmark
	TRIRComparison  Comparison
	DARTComparison  Comparison
	Performance     Performance
	Improvement     Improvement
	Cost            CostImpact
	Trend           *Trend // nil when no monthly series supplied
	Recommendations core.Recommendations
}
