package fallprotection

import (
	"safetycalc/domain/core"
)

// SurfaceType is the surface below the working area. Unknown tags fall back
// to the default surface factor rather than failing.
type SurfaceType string

const (
	SurfaceConcrete SurfaceType = "concrete"
	SurfaceSteel    SurfaceType = "steel"
	SurfaceGround   SurfaceType = "ground"
	SurfaceWater    SurfaceType = "water"
)

// SystemType is the category of fall protection system in use
type SystemType string

const (
	SystemArrest    SystemType = "arrest"
	SystemRestraint SystemType = "restraint"
	SystemPersonal  SystemType = "personal"
)

// Input carries the raw fall-protection parameters. Distances are meters,
// weight is kilograms.
type Input struct {
	FallHeight           float64
	LanyardLength        float64
	DecelerationDistance float64 // optional, defaults to 1.0 m
	WorkerWeight         float64 // optional, defaults to 100 kg
	AnchorHeight         float64 // optional, defaults to 0 m
	SurfaceType          SurfaceType
	SystemType           SystemType
}

// Metrics are the derived distances and forces for one setup
type Metrics struct {
	FreeFallDistance   float64 // m
	TotalFallDistance  float64 // m
	ClearanceRequired  float64 // m
	ImpactForce        float64 // N
	SafetyFactor       float64
}

// SafetyFactorTier labels the clearance safety factor
type SafetyFactorTier string

const (
	SafetyAdequate     SafetyFactorTier = "Adequate"
	SafetyMarginal     SafetyFactorTier = "Marginal"
	SafetyInsufficient SafetyFactorTier = "Insufficient"
)

// Result is the complete fall-protection assessment handed to presentation
type Result struct {
	core.Meta
	Input            Input
	Metrics          Metrics
	SafetyTier       SafetyFactorTier
	Risk             core.ClassificationResult
	Compliance       core.ComplianceReport
	Recommendations  core.Recommendations
}

// AnchorType selects the anchor strength formula variant
type AnchorType string

const (
	AnchorBeamClamp      AnchorType = "beam-clamp"
	AnchorConcreteAnchor AnchorType = "concrete-anchor"
	AnchorRoofAnchor     AnchorType = "roof-anchor"
)

// AnchorInput carries the anchor strength parameters. Diameter and depth are
// millimeters.
type AnchorInput struct {
	Type     AnchorType
	Material string
	Diameter float64
	Depth    float64
}

// AnchorResult is the tagged variant record produced per anchor type
type AnchorResult struct {
	core.Meta
	Type           AnchorType
	Capacity       float64 // kg
	Description    string
	OSHACompliant  bool
	Recommendation string
}
