package fallprotection

import (
	"fmt"

	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

// AnchorStrength evaluates anchor capacity by type and checks the OSHA
// 2268 kg (5000 lbf) anchorage requirement. Each anchor type is a separate
// capacity formula with its own material and dimension multipliers.
func (e *Engine) AnchorStrength(in AnchorInput) (*AnchorResult, error) {
	err := validation.RuleSet{
		validation.OneOf("anchorType", string(in.Type),
			string(AnchorBeamClamp), string(AnchorConcreteAnchor), string(AnchorRoofAnchor)),
		validation.Positive("diameter", in.Diameter),
		validation.Positive("depth", in.Depth),
	}.Validate()
	if err != nil {
		return nil, err
	}

	var res *AnchorResult
	switch in.Type {
	case AnchorBeamClamp:
		res = beamClampStrength(in)
	case AnchorConcreteAnchor:
		res = concreteAnchorStrength(in)
	case AnchorRoofAnchor:
		res = roofAnchorStrength(in)
	}

	res.Meta = core.NewMeta("anchor-strength")
	res.Type = in.Type
	res.OSHACompliant = res.Capacity >= anchorOSHAMin
	return res, nil
}

func beamClampStrength(in AnchorInput) *AnchorResult {
	capacity := 1000.0
	if in.Material == "steel" {
		capacity *= 2
	}
	if in.Diameter >= 20 {
		capacity *= 1.5
	}

	rec := "Does not meet OSHA requirements - use stronger anchor"
	if capacity >= anchorOSHAMin {
		rec = "Meets OSHA 2268 kg (5000 lbs) requirement"
	}
	return &AnchorResult{
		Capacity:       capacity,
		Description:    fmt.Sprintf("Beam clamp capacity: %.0f kg", capacity),
		Recommendation: rec,
	}
}

func concreteAnchorStrength(in AnchorInput) *AnchorResult {
	capacity := 500 * in.Diameter * in.Depth
	switch in.Material {
	case "epoxy":
		capacity *= 1.5
	case "wedge":
		capacity *= 1.2
	}
	return &AnchorResult{
		Capacity:       capacity,
		Description:    fmt.Sprintf("Concrete anchor capacity: %.0f kg", capacity),
		Recommendation: fmt.Sprintf("Installation depth: %gmm, Diameter: %gmm", in.Depth, in.Diameter),
	}
}

func roofAnchorStrength(in AnchorInput) *AnchorResult {
	capacity := 800.0
	if in.Material == "through-bolt" {
		capacity *= 2
	}
	if in.Diameter >= 12 {
		capacity *= 1.3
	}

	rec := "Only suitable for restraint systems"
	if capacity >= anchorOSHAMin {
		rec = "Suitable for fall arrest"
	}
	return &AnchorResult{
		Capacity:       capacity,
		Description:    fmt.Sprintf("Roof anchor capacity: %.0f kg", capacity),
		Recommendation: rec,
	}
}
