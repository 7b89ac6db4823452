package training

import (
	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

const needsEngineName = "training-needs"

func (in NeedsInput) withDefaults() NeedsInput {
	if in.RiskLevel == "" {
		in.RiskLevel = "medium"
	}
	if in.IncidentHistory == "" {
		in.IncidentHistory = "occasional"
	}
	if in.SkillGaps == "" {
		in.SkillGaps = "moderate"
	}
	return in
}

func (in NeedsInput) validate() error {
	return validation.RuleSet{
		validation.OneOf("riskLevel", in.RiskLevel, "low", "medium", "high"),
		validation.OneOf("incidentHistory", in.IncidentHistory, "none", "occasional", "frequent"),
		validation.OneOf("skillGaps", in.SkillGaps, "minimal", "moderate", "significant"),
	}.Validate()
}

// AssessNeeds builds a targeted curriculum for one department from its
// risk level, incident history and skill gaps.
func (e *Engine) AssessNeeds(input NeedsInput) (*NeedsResult, error) {
	in := input.withDefaults()
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	base, ok := departmentNeeds[in.Department]
	if !ok {
		base = generalDepartmentNeeds
	}
	needs := make([]string, 0, len(base)+9)
	needs = append(needs, base...)

	if in.RiskLevel == "high" {
		needs = append(needs, highRiskNeeds...)
	}
	if in.IncidentHistory == "frequent" {
		needs = append(needs, frequentIncidentNeeds...)
	}
	if in.SkillGaps == "significant" {
		needs = append(needs, significantGapNeeds...)
	}

	var recs core.Recommendations
	recs.Add("Prioritize high-risk area training first")
	recs.Add("Schedule training based on risk assessment results")
	recs.Add("Include both classroom and practical components")
	recs.Add("Assess competency after training completion")
	recs.Add("Document all training and assessment results")

	return &NeedsResult{
		Meta:            core.NewMeta(needsEngineName),
		Input:           in,
		Needs:           needs,
		Recommendations: recs,
	}, nil
}
