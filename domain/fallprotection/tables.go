package fallprotection

import "safetycalc/domain/core"

// Fixed physical and regulatory constants (OSHA 1926.502 where cited)
const (
	harnessStretch  = 0.5    // m, estimated harness stretch
	safetyMargin    = 1.0    // m
	dRingShift      = 0.5    // m
	gravity         = 9.81   // m/s²
	freeFallLimit   = 1.8    // m, OSHA 6 ft limit
	personalLimit   = 0.6    // m, personal system 2 ft guidance
	impactLimit     = 8000.0 // N, OSHA 8 kN limit
	impactWarnLevel = 6000.0 // N
	anchorOSHAMin   = 2268.0 // kg, 5000 lbf anchorage requirement
)

// defaultSurfaceFactor applies to surface tags without a table entry
const defaultSurfaceFactor = 0.5

// surfaceFactors is the additional clearance demanded by the surface below.
// Immutable after load.
var surfaceFactors = map[SurfaceType]float64{
	SurfaceConcrete: 0.3,
	SurfaceSteel:    0.5,
	SurfaceGround:   0.8,
	SurfaceWater:    2.0,
}

// Risk band labels in severity order
var (
	riskLow      = core.RiskLevel{Label: "Low Risk", Rank: 0}
	riskModerate = core.RiskLevel{Label: "Moderate Risk", Rank: 1}
	riskHigh     = core.RiskLevel{Label: "High Risk", Rank: 2}
	riskExtreme  = core.RiskLevel{Label: "Extreme Risk", Rank: 3}
)

var riskRationales = map[string]string{
	riskLow.Label:      "Minimal fall risk with current setup",
	riskModerate.Label: "Moderate fall risk - review required",
	riskHigh.Label:     "High fall risk - immediate action needed",
	riskExtreme.Label:  "Extreme fall risk - STOP WORK",
}

func surfaceFactor(s SurfaceType) float64 {
	if f, ok := surfaceFactors[s]; ok {
		return f
	}
	return defaultSurfaceFactor
}
