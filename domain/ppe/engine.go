package ppe

import (
	"fmt"
	"strings"

	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

const engineName = "ppe-selection"

// Engine recommends a PPE ensemble from a declared hazard profile.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (in Input) withDefaults() Input {
	if in.TaskDuration == 0 {
		in.TaskDuration = 8
	}
	if in.Temperature == 0 {
		in.Temperature = 20
	}
	if in.Humidity == 0 {
		in.Humidity = 50
	}
	return in
}

func (in Input) validate() error {
	rules := validation.RuleSet{
		validation.Cross("hazards", "at least one hazard must be declared", func() bool {
			return len(in.Hazards) > 0
		}),
		validation.Number("taskDuration", in.TaskDuration, 0.1, 24),
		validation.Number("temperature", in.Temperature, -40, 60),
		validation.Number("humidity", in.Humidity, 0, 100),
	}
	for _, h := range in.Hazards {
		rules = append(rules,
			validation.OneOf("hazards.type", string(h.Type),
				string(HazardChemical), string(HazardMechanical), string(HazardThermal),
				string(HazardBiological), string(HazardRadiological),
				string(HazardElectrical), string(HazardFall)),
			validation.OneOf("hazards.severity", string(h.Severity),
				string(SeverityLow), string(SeverityMedium), string(SeverityHigh)),
		)
	}
	return rules.Validate()
}

// Calculate runs the full selection pipeline for one hazard profile.
func (e *Engine) Calculate(input Input) (*Result, error) {
	in := input.withDefaults()
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	assessment, overallRisk := assessHazards(in.Hazards, in.TaskDuration)
	required := determineRequired(assessment)
	items := selectItems(required, in.Hazards, in.Temperature)
	factors, overall := protectionFactors(required, items)
	compliance := assessCompliance(required, items, in.Industry)
	comfort := assessComfort(required, items, in.Temperature, in.TaskDuration)
	cost := estimateCost(required, items, in.TaskDuration)

	res := &Result{
		Meta:               core.NewMeta(engineName),
		Input:              in,
		HazardAssessment:   assessment,
		OverallRisk:        overallRisk,
		RequiredCategories: required,
		Items:              items,
		ProtectionFactors:  factors,
		OverallProtection:  overall,
		Compliance:         compliance,
		Comfort:            comfort,
		Cost:               cost,
	}
	res.Recommendations = recommend(res)
	return res, nil
}

// assessHazards scores each declared hazard, scales the score by task
// duration, and rolls the scaled scores up into an overall risk label.
func assessHazards(hazards []Hazard, duration float64) (map[HazardType]HazardScore, string) {
	assessment := make(map[HazardType]HazardScore, len(hazards))
	overall := "Low"

	for _, h := range hazards {
		var score float64
		var level, desc string

		if p, ok := hazardScores[h.Type]; ok {
			switch h.Severity {
			case SeverityHigh:
				score = p.high
			case SeverityMedium:
				score = p.medium
			default:
				score = p.low
			}
			switch {
			case score >= p.highMin:
				level, desc = "High", p.highDesc
			case score >= p.mediumMin:
				level, desc = "Medium", p.mediumDesc
			default:
				level, desc = "Low", p.lowDesc
			}
		} else {
			score = defaultHazardScore
			level, desc = "Low", "General hazard"
		}

		if duration > durationScaleThreshold {
			score *= durationScaleFactor
		}
		if duration > longDurationScaleThreshold {
			score *= longDurationScaleFactor
		}

		assessment[h.Type] = HazardScore{Level: level, Description: desc, Score: score}

		if score > overallHighMin {
			overall = "High"
		} else if score > overallMediumMin && overall != "High" {
			overall = "Medium"
		}
	}

	return assessment, overall
}

// determineRequired maps the assessed hazard set onto equipment categories.
func determineRequired(assessment map[HazardType]HazardScore) []Category {
	has := func(types ...HazardType) bool {
		for _, t := range types {
			if _, ok := assessment[t]; ok {
				return true
			}
		}
		return false
	}

	var required []Category
	for _, cat := range categoryOrder {
		needed := false
		switch cat {
		case CategoryHead:
			needed = has(HazardMechanical, HazardElectrical, HazardFall)
		case CategoryEye:
			needed = has(HazardChemical, HazardMechanical, HazardThermal, HazardRadiological)
		case CategoryHearing:
			m, ok := assessment[HazardMechanical]
			needed = ok && m.Score > 5
		case CategoryRespiratory:
			needed = has(HazardChemical, HazardBiological, HazardRadiological)
		case CategoryHand:
			needed = has(HazardChemical, HazardMechanical, HazardThermal)
		case CategoryFoot:
			needed = has(HazardMechanical, HazardElectrical, HazardChemical)
		case CategoryBody:
			needed = has(HazardChemical, HazardThermal, HazardRadiological, HazardBiological)
		case CategoryFall:
			f, ok := assessment[HazardFall]
			needed = ok && f.Score > 4
		}
		if needed {
			required = append(required, cat)
		}
	}
	return required
}

func selectItems(required []Category, hazards []Hazard, temperature float64) map[Category]Item {
	items := make(map[Category]Item, len(required))
	for _, cat := range required {
		switch cat {
		case CategoryHead:
			items[cat] = selectHeadProtection(hazards)
		case CategoryEye:
			items[cat] = selectEyeProtection(hazards)
		case CategoryHearing:
			items[cat] = selectHearingProtection(hazards)
		case CategoryRespiratory:
			items[cat] = selectRespiratoryProtection(hazards)
		case CategoryHand:
			items[cat] = selectHandProtection(hazards, temperature)
		case CategoryFoot:
			items[cat] = selectFootProtection(hazards)
		case CategoryBody:
			items[cat] = selectBodyProtection(hazards, temperature)
		case CategoryFall:
			items[cat] = selectFallArrest(hazards)
		}
	}
	return items
}

// protectionFactors credits each item with a fraction of exposure removed
// and combines them as independent layers.
func protectionFactors(required []Category, items map[Category]Item) (map[Category]float64, float64) {
	factors := make(map[Category]float64, len(items))
	residual := 1.0

	for _, cat := range required {
		item, ok := items[cat]
		if !ok {
			continue
		}
		factor, ok := protectionLevelFactors[item.ProtectionLevel]
		if !ok {
			factor = defaultProtectionFactor
		}
		if cat == CategoryRespiratory && item.ProtectionFactor > 0 {
			factor = 1 - 1/item.ProtectionFactor
		}
		factors[cat] = factor
		residual *= 1 - factor
	}

	return factors, 1 - residual
}

func assessCompliance(required []Category, items map[Category]Item, industry string) Compliance {
	var c Compliance

	for _, cat := range required {
		if _, ok := items[cat]; !ok {
			c.Missing = append(c.Missing, string(cat))
		}
	}

	for _, cat := range categoryOrder {
		item, ok := items[cat]
		if !ok {
			continue
		}
		if item.Standard == "" {
			c.Warnings = append(c.Warnings, fmt.Sprintf("%s: No standard specified", cat))
			continue
		}
		if strings.Contains(item.Standard, "ANSI") {
			c.ANSI = append(c.ANSI, fmt.Sprintf("%s: %s", cat, item.Standard))
		}
		if strings.Contains(item.Standard, "NFPA") {
			c.NFPA = append(c.NFPA, fmt.Sprintf("%s: %s", cat, item.Standard))
		}
		if strings.Contains(item.Standard, "NIOSH") || strings.Contains(item.Standard, "OSHA") {
			c.OSHA = append(c.OSHA, fmt.Sprintf("%s: Compliant", cat))
		}
	}

	if industry == "construction" {
		if _, ok := items[CategoryHead]; !ok {
			c.Missing = append(c.Missing, "head (hard hat required)")
		}
		if _, ok := items[CategoryFoot]; !ok {
			c.Missing = append(c.Missing, "foot (safety boots required)")
		}
	}
	if industry == "healthcare" {
		_, hasResp := items[CategoryRespiratory]
		_, hasEye := items[CategoryEye]
		if !hasResp && !hasEye {
			c.Warnings = append(c.Warnings, "Consider face shield for droplet protection")
		}
	}

	return c
}

func assessComfort(required []Category, items map[Category]Item, temperature, duration float64) Comfort {
	score := 100
	var issues []string

	_, hasBody := items[CategoryBody]
	if temperature > 25 && hasBody {
		score -= comfortHeatPenalty
		issues = append(issues, "Body protection may cause heat stress in warm conditions")
	}
	if temperature < 10 && !hasBody {
		score -= comfortColdPenalty
		issues = append(issues, "Consider additional insulation for cold conditions")
	}

	if duration > 4 {
		score -= comfortDurationPenalty
		issues = append(issues, "Extended wear may reduce comfort")
	}
	if duration > 8 {
		score -= comfortLongPenalty
		issues = append(issues, "Consider PPE rotation for tasks >8 hours")
	}

	if n := len(items); n > comfortItemThreshold {
		score -= (n - comfortItemThreshold) * comfortPerItemPenalty
		issues = append(issues, "Multiple PPE items may reduce mobility")
	}

	var level string
	switch {
	case score >= 80:
		level = "Good"
	case score >= 60:
		level = "Moderate"
	case score >= 40:
		level = "Poor"
	default:
		level = "Uncomfortable"
	}

	return Comfort{Level: level, Score: score, Issues: issues}
}

func estimateCost(required []Category, items map[Category]Item, duration float64) Cost {
	itemCosts := make(map[Category]float64, len(items))
	var total float64

	for _, cat := range required {
		item, ok := items[cat]
		if !ok {
			continue
		}
		r := costRanges[cat]

		var cost float64
		switch item.ProtectionLevel {
		case "Very High":
			cost = r.high * 0.8
		case "High":
			cost = r.high * 0.6
		case "Medium":
			cost = (r.low + r.high) / 2
		case "Low":
			cost = r.low * 1.2
		default:
			cost = r.low
		}

		if strings.Contains(item.Type, "PAPR") {
			cost = paprCost
		}
		if strings.Contains(item.Type, "Welding") {
			cost = weldingCost
		}

		itemCosts[cat] = cost
		total += cost
	}

	daily := total * dailyCostFraction
	return Cost{
		Purchase: total,
		Daily:    daily,
		Task:     daily * (duration / referenceShiftHrs),
		Items:    itemCosts,
	}
}

func recommend(r *Result) core.Recommendations {
	var recs core.Recommendations

	recs.Add("Conduct PPE fit testing for all items")
	recs.Add("Train workers on proper donning/doffing procedures")
	recs.Add("Establish PPE inspection and maintenance program")

	if r.OverallRisk == "High" {
		recs.Add("Implement buddy system for high-risk tasks")
		recs.Add("Consider additional engineering controls")
		recs.Add("Establish emergency response procedures")
	}

	if !r.Compliance.IsCompliant() {
		recs.Add(fmt.Sprintf("Address missing PPE: %s", strings.Join(r.Compliance.Missing, ", ")))
	}
	if len(r.Compliance.Warnings) > 0 {
		recs.Add(fmt.Sprintf("Address standards issues: %s", strings.Join(r.Compliance.Warnings, ", ")))
	}

	if r.Comfort.Level == "Poor" || r.Comfort.Level == "Uncomfortable" {
		for _, issue := range r.Comfort.Issues {
			recs.Add(fmt.Sprintf("Address comfort: %s", issue))
		}
		recs.Add("Consider PPE with better ergonomics")
		recs.Add("Implement regular comfort breaks")
	}

	recs.Add("Establish PPE replacement schedule based on manufacturer guidelines")
	recs.Add("Store PPE properly to maintain effectiveness")

	return recs
}

func formatTemp(t float64) string {
	return fmt.Sprintf("%g°C", t)
}
