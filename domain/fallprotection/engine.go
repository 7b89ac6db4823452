// Package fallprotection computes free-fall distance, required clearance and
// impact force for a fall arrest setup and checks the results against OSHA
// 1926.502 criteria.
package fallprotection

import (
	"math"

	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

// Engine is the fall-protection assessment pipeline. It is stateless apart
// from its immutable reference tables and safe for repeated use.
type Engine struct{}

// NewEngine creates a fall-protection engine
func NewEngine() *Engine {
	return &Engine{}
}

func (in Input) withDefaults() Input {
	if in.DecelerationDistance <= 0 {
		in.DecelerationDistance = 1.0
	}
	if in.WorkerWeight <= 0 {
		in.WorkerWeight = 100
	}
	return in
}

func (e *Engine) validate(in Input) error {
	return validation.RuleSet{
		validation.Positive("fallHeight", in.FallHeight),
		validation.Number("fallHeight", in.FallHeight, 0.1, 100),
		validation.Positive("lanyardLength", in.LanyardLength),
		validation.Number("lanyardLength", in.LanyardLength, 0.1, 10),
		validation.Number("decelerationDistance", in.DecelerationDistance, 0.1, 3),
		validation.Number("workerWeight", in.WorkerWeight, 30, 300),
		validation.NonNegative("anchorHeight", in.AnchorHeight),
		validation.OneOf("systemType", string(in.SystemType),
			string(SystemArrest), string(SystemRestraint), string(SystemPersonal)),
	}.Validate()
}

// Calculate runs validate → compute → classify → recommend for one setup
func (e *Engine) Calculate(raw Input) (*Result, error) {
	in := raw.withDefaults()
	if err := e.validate(in); err != nil {
		return nil, err
	}

	m := e.compute(in)
	compliance := e.checkCompliance(m, in.SystemType)
	risk := e.assessRisk(in, m)

	res := &Result{
		Meta:            core.NewMeta("fall-protection"),
		Input:           in,
		Metrics:         m,
		SafetyTier:      safetyTier(m.SafetyFactor),
		Risk:            risk,
		Compliance:      compliance,
		Recommendations: e.recommend(in, m, compliance),
	}
	return res, nil
}

func (e *Engine) compute(in Input) Metrics {
	freeFall := math.Max(0, in.FallHeight-in.AnchorHeight+in.LanyardLength+harnessStretch)
	total := freeFall + in.DecelerationDistance
	clearance := total + safetyMargin + dRingShift + surfaceFactor(in.SurfaceType)
	impact := in.WorkerWeight * gravity * freeFall / in.DecelerationDistance

	// Available clearance is assumed to be 1.5× fall height. This is a design
	// heuristic carried over from the original model, not a cited standard.
	safety := (in.FallHeight * 1.5) / clearance

	return Metrics{
		FreeFallDistance:  freeFall,
		TotalFallDistance: total,
		ClearanceRequired: clearance,
		ImpactForce:       impact,
		SafetyFactor:      safety,
	}
}

func (e *Engine) checkCompliance(m Metrics, system SystemType) core.ComplianceReport {
	var r core.ComplianceReport

	if m.FreeFallDistance > freeFallLimit {
		r.AddViolation("Free fall distance exceeds OSHA limit of 1.8m (6ft)")
	} else {
		r.AddCompliant("Free fall distance within OSHA limits")
	}

	switch {
	case m.ImpactForce > impactLimit:
		r.AddViolation("Impact force exceeds OSHA limit of 8kN (1800 lbf)")
	case m.ImpactForce > impactWarnLevel:
		r.AddWarning("Impact force approaching OSHA limit - consider shock absorber")
	default:
		r.AddCompliant("Impact force within OSHA limits")
	}

	if system == SystemPersonal && m.FreeFallDistance > personalLimit {
		r.AddWarning("Personal fall arrest system should limit free fall to 0.6m (2ft)")
	}
	if system == SystemRestraint && m.FreeFallDistance > 0 {
		r.AddViolation("Fall restraint system should prevent any free fall")
	}

	return r
}

func (e *Engine) assessRisk(in Input, m Metrics) core.ClassificationResult {
	score := in.FallHeight/3 + m.FreeFallDistance/2 + m.ImpactForce/2000

	var level core.RiskLevel
	switch {
	case score < 3:
		level = riskLow
	case score < 6:
		level = riskModerate
	case score < 10:
		level = riskHigh
	default:
		level = riskExtreme
	}

	return core.ClassificationResult{
		Level:     level,
		Score:     score,
		Rationale: riskRationales[level.Label],
	}
}

func safetyTier(factor float64) SafetyFactorTier {
	switch {
	case factor >= 2.0:
		return SafetyAdequate
	case factor >= 1.5:
		return SafetyMarginal
	default:
		return SafetyInsufficient
	}
}

func (e *Engine) recommend(in Input, m Metrics, compliance core.ComplianceReport) core.Recommendations {
	var recs core.Recommendations

	// Baseline items always lead the list
	recs.Add(
		"Inspect all fall protection equipment before each use",
		"Ensure proper training for all workers at heights",
		"Develop rescue plan for fallen workers",
	)

	recs.AddIf(in.FallHeight > 3, "Use guardrails or safety nets for work above 3 meters")
	recs.AddIf(in.FallHeight > 6, "Implement 100% tie-off policy for work above 6 meters")

	recs.AddIf(m.FreeFallDistance > freeFallLimit,
		"Reduce lanyard length to limit free fall distance",
		"Consider using self-retracting lifelines")
	recs.AddIf(m.FreeFallDistance > personalLimit && in.SystemType == SystemPersonal,
		"Use shorter lanyard or reposition anchor point")

	recs.AddIf(m.ImpactForce > impactWarnLevel,
		"Use shock-absorbing lanyard to reduce impact force",
		"Ensure anchor point can withstand 22kN (5000 lbf)")

	recs.AddIf(m.ClearanceRequired > in.FallHeight*0.8,
		"Increase working height to ensure adequate clearance",
		"Consider using horizontal lifeline system")

	recs.AddIf(len(compliance.Violations) > 0, "Immediately address OSHA compliance violations")
	recs.AddIf(len(compliance.Warnings) > 0, "Address OSHA warning items promptly")

	recs.AddIf(in.SystemType == SystemRestraint, "Ensure restraint system prevents reaching fall edge")
	recs.AddIf(in.SystemType == SystemArrest,
		"Verify clearance below working area is sufficient",
		"Test rescue equipment and procedures regularly")

	return recs
}
