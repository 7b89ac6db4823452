package incidentrate

// benchmarks is the fixed industry reference table. Immutable after load;
// lookups for unknown industries fall back to the general row.
var benchmarks = map[Industry]Benchmark{
	IndustryConstruction:   {TRIR: 3.0, DART: 2.0, Target: 2.5},
	IndustryManufacturing:  {TRIR: 2.5, DART: 1.8, Target: 2.0},
	IndustryTransportation: {TRIR: 4.0, DART: 2.5, Target: 3.0},
	IndustryHealthcare:     {TRIR: 4.5, DART: 3.0, Target: 3.5},
	IndustryOilGas:         {TRIR: 0.8, DART: 0.5, Target: 0.6},
	IndustryMining:         {TRIR: 2.0, DART: 1.2, Target: 1.5},
	IndustryAgriculture:    {TRIR: 5.0, DART: 3.5, Target: 4.0},
	IndustryRetail:         {TRIR: 3.5, DART: 2.2, Target: 2.8},
	IndustryEducation:      {TRIR: 2.8, DART: 1.9, Target: 2.2},
	IndustryGeneral:        {TRIR: 3.2, DART: 2.1, Target: 2.5},
}

// BenchmarkFor returns the industry row, falling back to general
func BenchmarkFor(industry Industry) Benchmark {
	if b, ok := benchmarks[industry]; ok {
		return b
	}
	return benchmarks[IndustryGeneral]
}

// Fixed per-incident cost assumptions (USD)
const (
	costPerRecordable  = 38000.0
	costPerLostTime    = 75000.0
	indirectMultiplier = 4.0
)

// Performance tier thresholds on the 0-100 weighted score
var performanceTiers = []struct {
	MinScore int
	Rating   string
}{
	{90, "World Class"},
	{80, "Excellent"},
	{70, "Good"},
	{60, "Fair"},
	{0, "Needs Improvement"},
}

// Trend slope threshold separating Stable from Improving/Worsening
const trendSlopeEpsilon = 0.05
