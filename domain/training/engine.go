package training

import (
	"fmt"
	"math"

	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

const engineName = "safety-training"

// Engine sizes, costs and plans a safety training program.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (in Input) withDefaults() Input {
	if in.CompanySize == "" {
		in.CompanySize = SizeSmall
	}
	if in.Industry == "" {
		in.Industry = "general"
	}
	if in.Location == "" {
		in.Location = LocationUSA
	}
	if in.ExperienceLevel == "" {
		in.ExperienceLevel = ExperienceIntermediate
	}
	if in.TrainingFrequency == "" {
		in.TrainingFrequency = FrequencyYearly
	}
	if in.TrainingMethod == "" {
		in.TrainingMethod = MethodInPerson
	}
	return in
}

func (in Input) validate() error {
	rules := validation.RuleSet{
		validation.Number("totalEmployees", float64(in.TotalEmployees), 1, 1_000_000),
		validation.NonNegative("newHires", float64(in.NewHires)),
		validation.Cross("newHires", "new hires cannot exceed total employees", func() bool {
			return in.NewHires <= in.TotalEmployees
		}),
		validation.Number("turnoverRate", in.TurnoverRate, 0, 1),
		validation.NonNegative("currentTrainingHours", in.CurrentTrainingHours),
		validation.OneOf("companySize", string(in.CompanySize),
			string(SizeSmall), string(SizeMedium), string(SizeLarge), string(SizeVeryLarge)),
		validation.OneOf("location", string(in.Location),
			string(LocationUSA), string(LocationEU), string(LocationCanada),
			string(LocationAustralia), string(LocationUK)),
		validation.OneOf("experienceLevel", string(in.ExperienceLevel),
			string(ExperienceNovice), string(ExperienceIntermediate),
			string(ExperienceExperienced), string(ExperienceExpert)),
		validation.OneOf("trainingFrequency", string(in.TrainingFrequency),
			string(FrequencyDaily), string(FrequencyWeekly), string(FrequencyMonthly),
			string(FrequencyQuarterly), string(FrequencyYearly), string(FrequencyAsNeeded)),
		validation.OneOf("trainingMethod", string(in.TrainingMethod),
			string(MethodInPerson), string(MethodOnline), string(MethodBlended), string(MethodOnTheJob)),
	}
	for _, reg := range in.Regulations {
		rules = append(rules, validation.OneOf("regulations", string(reg),
			string(RegulationOSHA), string(RegulationISO45001),
			string(RegulationRCRA), string(RegulationDOT)))
	}
	return rules.Validate()
}

// Calculate runs the full training program analysis.
func (e *Engine) Calculate(input Input) (*Result, error) {
	in := input.withDefaults()
	if verr := in.validate(); verr != nil {
		return nil, verr
	}

	needs := assessNeeds(in)
	hours := requiredHours(needs, in.ExperienceLevel, in.CertificationRequired)
	costs := estimateCosts(hours, in.TrainingMethod, in.TotalEmployees)
	effectiveness := assessEffectiveness(in.CurrentTrainingHours, hours.Total, in.TrainingMethod, in.TrainingFrequency)
	compliance := checkCompliance(needs, hours, in.Regulations, in.Location)
	roi := analyzeROI(costs.Total, in.TotalEmployees, in.Industry, in.TurnoverRate)
	plan := buildPlan(needs, hours)

	res := &Result{
		Meta:          core.NewMeta(engineName),
		Input:         in,
		Needs:         needs,
		Hours:         hours,
		Costs:         costs,
		Effectiveness: effectiveness,
		Compliance:    compliance,
		ROI:           roi,
		Plan:          plan,
	}
	res.Recommendations = recommend(res)
	return res, nil
}

// assessNeeds assembles the mandatory and recommended curricula from the
// OSHA baseline, the industry, the regulations, and the workforce profile.
func assessNeeds(in Input) Needs {
	mandatory := make([]string, 0, len(oshaBaseline)+8)
	mandatory = append(mandatory, oshaBaseline...)
	mandatory = append(mandatory, industryCurricula[in.Industry]...)

	for _, reg := range in.Regulations {
		mandatory = append(mandatory, regulationCurricula[reg]...)
	}

	var recommended []string
	if in.CompanySize == SizeLarge || in.CompanySize == SizeVeryLarge {
		recommended = append(recommended, largeCompanyRecommended...)
	}
	if float64(in.NewHires) > float64(in.TotalEmployees)*highTurnoverFraction {
		recommended = append(recommended, highTurnoverRecommended...)
	}

	return Needs{
		Mandatory:        mandatory,
		Recommended:      recommended,
		TotalModules:     len(mandatory) + len(recommended),
		MandatoryCount:   len(mandatory),
		RecommendedCount: len(recommended),
	}
}

func moduleHours(modules []string) float64 {
	var total float64
	for _, m := range modules {
		if h, ok := baseHours[m]; ok {
			total += h
		} else {
			total += defaultModuleHours
		}
	}
	return total
}

// requiredHours scales curriculum delivery time by workforce experience and
// adds certification preparation on top, unscaled.
func requiredHours(needs Needs, experience Experience, certification bool) Hours {
	factor, ok := experienceFactors[experience]
	if !ok {
		factor = 1.0
	}

	mandatory := moduleHours(needs.Mandatory) * factor
	recommended := moduleHours(needs.Recommended) * factor

	var cert float64
	if certification {
		cert = certificationPrepHours
	}

	total := mandatory + recommended + cert
	annual := total / trainingCycleYears

	return Hours{
		Mandatory:            mandatory,
		Recommended:          recommended,
		Certification:        cert,
		Total:                total,
		AnnualPerEmployee:    annual,
		QuarterlyPerEmployee: annual / 4,
	}
}

func estimateCosts(hours Hours, method Method, employees int) Costs {
	rate, ok := methodHourlyRates[method]
	if !ok {
		rate = methodHourlyRates[MethodInPerson]
	}

	direct := rate * hours.Total
	productivity := float64(employees) * hours.Total * averageWagePerHour
	employee := float64(employees) * hours.AnnualPerEmployee * burdenedRatePerHour

	var development float64
	if method == MethodOnline || method == MethodBlended {
		development = hours.Total * developmentRatePerHour
	}

	total := direct + productivity + employee + development

	return Costs{
		Direct:       direct,
		Productivity: productivity,
		Employee:     employee,
		Development:  development,
		Total:        total,
		PerEmployee:  total / float64(employees),
		Annual:       total / trainingCycleYears,
		Method:       method,
	}
}

func assessEffectiveness(currentHours, requiredTotal float64, method Method, frequency Frequency) Effectiveness {
	coverage := math.Min(100, currentHours/requiredTotal*100)

	methodFactor, ok := methodEffectiveness[method]
	if !ok {
		methodFactor = defaultMethodEffectiveness
	}
	frequencyFactor, ok := frequencyEffectiveness[frequency]
	if !ok {
		frequencyFactor = defaultFrequencyEffectiveness
	}

	score := coverage * methodFactor * frequencyFactor

	var level, desc string
	switch {
	case score >= 90:
		level, desc = "Excellent", "Comprehensive and effective training program"
	case score >= 80:
		level, desc = "Good", "Effective training with room for improvement"
	case score >= 70:
		level, desc = "Fair", "Basic training coverage, needs enhancement"
	case score >= 60:
		level, desc = "Poor", "Inadequate training, significant improvements needed"
	default:
		level, desc = "Very Poor", "Critical training deficiencies, immediate action required"
	}

	return Effectiveness{
		Level:           level,
		Description:     desc,
		Score:           score,
		Coverage:        coverage,
		MethodFactor:    methodFactor,
		FrequencyFactor: frequencyFactor,
	}
}

func checkCompliance(needs Needs, hours Hours, regulations []Regulation, location Location) Compliance {
	c := Compliance{}

	minHours, ok := minimumAnnualHours[location]
	if !ok {
		minHours = defaultMinimumAnnualHours
	}
	c.MinimumHours = minHours

	if hours.AnnualPerEmployee < minHours {
		c.AddViolation(fmt.Sprintf("Training hours (%.1f) below %.0f hour minimum",
			hours.AnnualPerEmployee, minHours))
	} else {
		c.AddCompliant(fmt.Sprintf("Annual training hours meet the %.0f hour minimum", minHours))
	}

	if needs.MandatoryCount == 0 {
		c.AddWarning("No mandatory training identified, review requirements")
	}

	hasReg := func(r Regulation) bool {
		for _, reg := range regulations {
			if reg == r {
				return true
			}
		}
		return false
	}

	if hasReg(RegulationOSHA) && hours.Total < oshaRecommendedTotalHours {
		c.AddWarning("OSHA recommends minimum 40 hours of safety training")
	}

	if hasReg(RegulationISO45001) {
		found := false
		for _, m := range needs.Mandatory {
			if m == "OH&S Management System" {
				found = true
				break
			}
		}
		if !found {
			c.AddViolation("ISO 45001 requires OH&S management system training")
		}
	}

	if len(regulations) > 0 {
		c.Documentation = []string{
			"Training records for all employees",
			"Certification documentation",
			"Training program evaluation records",
		}
	}

	return c
}

func analyzeROI(totalCost float64, employees int, industry string, turnoverRate float64) ROI {
	injuryCost, ok := averageInjuryCost[industry]
	if !ok {
		injuryCost = averageInjuryCost["general"]
	}

	injuriesPrevented := float64(employees) * baselineInjuryRate
	injurySavings := injuriesPrevented * injuryCost * injuryReductionRate
	turnoverSavings := float64(employees) * turnoverRate * employeeReplacementCost * turnoverReductionRate
	productivitySavings := float64(employees) * averageAnnualSalary * productivityGainRate

	benefits := injurySavings + turnoverSavings + productivitySavings

	return ROI{
		InjurySavings:       injurySavings,
		TurnoverSavings:     turnoverSavings,
		ProductivitySavings: productivitySavings,
		TotalBenefits:       benefits,
		Percent:             (benefits*trainingCycleYears - totalCost) / totalCost * 100,
		PaybackYears:        totalCost / benefits,
		CostBenefitRatio:    benefits / (totalCost / trainingCycleYears),
	}
}

// buildPlan lays the curriculum out over a three year rollout.
func buildPlan(needs Needs, hours Hours) Plan {
	splitAt := 6
	if splitAt > len(needs.Mandatory) {
		splitAt = len(needs.Mandatory)
	}

	phases := []Phase{
		{
			Name:      "Phase 1: Mandatory Compliance",
			Duration:  "Months 1-6",
			Trainings: needs.Mandatory[:splitAt],
			Hours:     hours.Mandatory * 0.5,
			Priority:  "High",
		},
		{
			Name:      "Phase 2: Core Safety Skills",
			Duration:  "Months 7-12",
			Trainings: needs.Mandatory[splitAt:],
			Hours:     hours.Mandatory * 0.5,
			Priority:  "High",
		},
	}

	if needs.RecommendedCount > 0 {
		phases = append(phases, Phase{
			Name:      "Phase 3: Advanced & Specialized",
			Duration:  "Year 2",
			Trainings: needs.Recommended,
			Hours:     hours.Recommended,
			Priority:  "Medium",
		})
	}

	phases = append(phases, Phase{
		Name:      "Phase 4: Refresher & Certification",
		Duration:  "Year 3",
		Trainings: []string{"Annual Refresher Training", "Certification Renewal"},
		Hours:     hours.Total * 0.2,
		Priority:  "Ongoing",
	})

	return Plan{
		Phases: phases,
		Timeline: map[string]string{
			"immediate":  "First 30 days: High-risk training",
			"shortTerm":  "3-6 months: Core compliance training",
			"mediumTerm": "6-12 months: Skill development",
			"longTerm":   "1-3 years: Advanced and specialized training",
		},
		Resources: []string{
			"Qualified instructors or training providers",
			"Training facilities or online platform",
			"Training materials and equipment",
			"Assessment and testing tools",
			"Record-keeping system",
		},
		Evaluation: []string{
			"Pre- and post-training assessments",
			"Skills demonstration",
			"On-the-job observation",
			"Incident rate monitoring",
			"Employee feedback surveys",
			"Management review",
		},
	}
}

func recommend(r *Result) core.Recommendations {
	var recs core.Recommendations

	recs.Add("Develop written training program and policies")
	recs.Add("Maintain detailed training records for all employees")
	recs.Add("Conduct regular training needs assessments")

	if r.Effectiveness.Level == "Poor" || r.Effectiveness.Level == "Very Poor" {
		recs.Add("Increase training hours to meet minimum requirements")
		recs.Add("Consider blended learning approach for better retention")
		recs.Add("Implement more frequent refresher training")
	}

	if !r.Compliance.IsCompliant() {
		recs.Add("Address compliance violations immediately")
		for _, v := range r.Compliance.Violations {
			recs.Add(fmt.Sprintf("Fix: %s", v))
		}
	}

	if r.ROI.Percent > excellentROIThreshold {
		recs.Add("Training investment shows excellent ROI, consider expanding program")
	} else if r.ROI.Percent < weakROIThreshold {
		recs.Add("Optimize training methods to improve ROI")
	}

	if r.Costs.Total > highCostProgramThreshold {
		recs.Add("Consider online training to reduce costs")
		recs.Add("Negotiate volume discounts with training providers")
		recs.Add("Develop in-house training capabilities")
	}

	recs.Add("Implement Kirkpatrick model for training evaluation")
	recs.Add("Use competency-based assessment methods")
	recs.Add("Provide train-the-trainer programs")

	recs.Add("Consider Learning Management System (LMS) for tracking")
	recs.Add("Use mobile learning for remote employees")
	recs.Add("Implement virtual reality for high-risk scenario training")

	return recs
}
