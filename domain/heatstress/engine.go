// Package heatstress computes WBGT and heat-index exposure metrics, derives
// ACGIH-style work-rest schedules and hydration requirements, and classifies
// heat risk for a work shift.
package heatstress

import (
	"fmt"
	"math"

	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

// Engine is the heat-stress assessment pipeline
type Engine struct{}

// NewEngine creates a heat-stress engine
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) validate(in Input) error {
	rules := validation.RuleSet{
		validation.Number("dryBulbTemp", in.DryBulb, -20, 60),
		validation.Number("wetBulbTemp", in.WetBulb, -20, 60),
		validation.Number("humidity", in.Humidity, 0, 100),
	}
	if in.HasGlobeReading {
		rules = append(rules, validation.Number("globeTemp", in.GlobeTemp, -20, 100))
	}
	return rules.Validate()
}

// Calculate runs validate → compute → classify → recommend for one shift
func (e *Engine) Calculate(in Input) (*Result, error) {
	if err := e.validate(in); err != nil {
		return nil, err
	}

	m := Metrics{
		WBGT:      e.wbgt(in),
		HeatIndex: heatIndex(in.DryBulb, in.Humidity),
	}
	m.SweatRate = sweatRate(m.WBGT, in.WorkIntensity, in.Clothing)

	schedule := e.workRestSchedule(m.WBGT, in.WorkIntensity, in.Acclimatization)
	hydration := hydrationPlan(m.SweatRate, schedule)
	risk := e.assessRisk(m, in.WorkIntensity, in.Acclimatization)
	compliance := e.checkCompliance(m.WBGT, risk.Level)

	res := &Result{
		Meta:            core.NewMeta("heat-stress"),
		Input:           in,
		Metrics:         m,
		Schedule:        schedule,
		Hydration:       hydration,
		Risk:            risk,
		Symptoms:        riskSymptoms[risk.Level.Label],
		Action:          riskActions[risk.Level.Label],
		Compliance:      compliance,
		Recommendations: e.recommend(risk, schedule, hydration, m.WBGT),
	}
	return res, nil
}

// wbgt uses the indoor form when a globe reading is present and the outdoor
// form with an estimated globe temperature otherwise
func (e *Engine) wbgt(in Input) float64 {
	if in.HasGlobeReading {
		return 0.7*in.WetBulb + 0.3*in.GlobeTemp
	}
	estimatedGlobe := in.DryBulb + solarGlobeOffsets[in.SolarLoad]
	return 0.7*in.WetBulb + 0.2*estimatedGlobe + 0.1*in.DryBulb
}

// heatIndex evaluates the 9-term Rothfusz regression in °C
func heatIndex(temp, humidity float64) float64 {
	t, h := temp, humidity
	return hiC1 + hiC2*t + hiC3*h + hiC4*t*h +
		hiC5*t*t + hiC6*h*h +
		hiC7*t*t*h + hiC8*t*h*h +
		hiC9*t*t*h*h
}

func sweatRate(wbgt float64, intensity WorkIntensity, clothing ClothingType) float64 {
	base := 0.5 // fallback for unrecognized intensity bands
	if p, ok := sweatRateParams[intensity]; ok {
		base = p.Base + wbgt*p.Slope
	}

	factor := 1.0
	if f, ok := clothingFactors[clothing]; ok {
		factor = f
	}
	return base * factor
}

// scheduleStep is one named adjustment of the work-rest pipeline. Steps run
// in declaration order and the work percentage is clamped after each one.
type scheduleStep struct {
	name  string
	apply func(work int) int
}

func (e *Engine) workRestSchedule(wbgt float64, intensity WorkIntensity, acclim Acclimatization) WorkRestSchedule {
	work := 0
	label := noWorkLabel
	for _, b := range workRestBands {
		if wbgt <= b.UpperWBGT {
			work = b.WorkPercent
			label = b.Label
			break
		}
	}

	steps := []scheduleStep{
		{name: "work-intensity", apply: func(w int) int {
			if intensity == WorkHeavy || intensity == WorkVeryHeavy {
				return w - 25
			}
			return w
		}},
		{name: "acclimatization", apply: func(w int) int {
			switch acclim {
			case Acclimatized:
				return w + 10
			case Unacclimatized:
				return w - 15
			}
			return w
		}},
	}

	for _, s := range steps {
		work = clampPercent(s.apply(work))
	}

	return WorkRestSchedule{
		WorkPercent: work,
		RestPercent: 100 - work,
		CycleLabel:  label,
		MaxWorkTime: float64(work) / 100 * 60,
	}
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func hydrationPlan(sweatRate float64, schedule WorkRestSchedule) Hydration {
	const workHours = 8.0
	dailyLoss := sweatRate * workHours * float64(schedule.WorkPercent) / 100
	intake := dailyLoss * 1.5
	preShift := 0.5
	during := intake - preShift
	perHour := during / workHours

	return Hydration{
		HourlyLoss:        sweatRate,
		DailyLoss:         dailyLoss,
		RecommendedIntake: intake,
		PreShift:          preShift,
		DuringWork:        during,
		PerHour:           perHour,
		Schedule:          fmt.Sprintf("Drink %.2fL per hour during work", perHour),
	}
}

// assessRisk bands WBGT, then shifts one band better when acclimatized
// (Extreme never improves) and one band worse when unacclimatized
func (e *Engine) assessRisk(m Metrics, intensity WorkIntensity, acclim Acclimatization) core.ClassificationResult {
	level := wbgtScale.Classify(m.WBGT)

	switch acclim {
	case Acclimatized:
		if level.Rank != riskExtreme.Rank && level.Rank > 0 {
			level = riskLevels[level.Rank-1]
		}
	case Unacclimatized:
		if level.Rank < riskExtreme.Rank {
			level = riskLevels[level.Rank+1]
		}
	}

	score := m.WBGT + m.HeatIndex/10
	switch intensity {
	case WorkHeavy:
		score += 5
	case WorkVeryHeavy:
		score += 10
	}

	return core.ClassificationResult{
		Level:     level,
		Score:     score,
		Rationale: riskActions[level.Label],
	}
}

func (e *Engine) checkCompliance(wbgt float64, level core.RiskLevel) core.ComplianceReport {
	var r core.ComplianceReport

	if level.Rank >= riskVeryHigh.Rank {
		r.AddViolation("OSHA General Duty Clause violation - Serious hazard present")
	}
	if wbgt >= 27 {
		r.AddWarning("Cal/OSHA requires written heat illness prevention program")
	}
	if wbgt >= 30 {
		r.AddViolation("Cal/OSHA requires mandatory 10-minute cool-down rest every 2 hours")
	}
	if wbgt >= 29 {
		r.AddWarning("WA L&I requires additional precautions at 29°C WBGT")
	}
	return r
}

func (e *Engine) recommend(risk core.ClassificationResult, schedule WorkRestSchedule, hydration Hydration, wbgt float64) core.Recommendations {
	var recs core.Recommendations

	recs.Add(
		"Provide cool drinking water (10-15°C)",
		"Train workers on heat illness recognition",
		"Establish buddy system for heat monitoring",
	)

	rank := risk.Level.Rank
	recs.AddIf(rank == riskModerate.Rank || rank == riskHigh.Rank,
		"Implement work-rest schedule: "+schedule.CycleLabel,
		"Provide shaded or air-conditioned rest areas",
		"Monitor workers for heat illness symptoms")

	recs.AddIf(rank == riskHigh.Rank || rank == riskVeryHigh.Rank,
		"Assign dedicated heat safety observer",
		"Provide cooling vests or other personal cooling",
		"Schedule hardest work for cooler parts of day")

	recs.AddIf(rank == riskExtreme.Rank,
		"STOP ALL WORK IN HEAT",
		"Implement emergency response plan",
		"Provide immediate cooling facilities")

	recs.Add(
		"Hydration: "+hydration.Schedule,
		fmt.Sprintf("Drink %.1fL before shift, %.2fL during work", hydration.PreShift, hydration.DuringWork),
	)

	recs.AddIf(wbgt > 26,
		"Implement 7-day acclimatization program for new workers",
		"Gradually increase workload over first week")

	recs.Add(
		"Provide light-colored, loose-fitting clothing",
		"Allow for removal of unnecessary PPE during breaks",
	)

	return recs
}

// PersonalHydration computes an individual daily fluid plan from body weight,
// activity level and ambient temperature
func (e *Engine) PersonalHydration(in HydrationInput) (*HydrationResult, error) {
	err := validation.RuleSet{
		validation.Positive("bodyWeight", in.Weight),
		validation.Number("bodyWeight", in.Weight, 20, 250),
		validation.Number("temperature", in.Temperature, -20, 50),
	}.Validate()
	if err != nil {
		return nil, err
	}

	mult := 1.0
	if m, ok := activityMultipliers[in.Activity]; ok {
		mult = m
	}

	intakeML := in.Weight * 30 * mult * (1 + 0.04*math.Max(0, in.Temperature-25))
	daily := intakeML / 1000

	guide := make([]UrineColorRef, len(urineColorGuide))
	copy(guide, urineColorGuide)

	return &HydrationResult{
		Meta:        core.NewMeta("personal-hydration"),
		DailyIntake: daily,
		Hourly:      daily / 8,
		PreShift:    0.5,
		PostShift:   0.5,
		ColorGuide:  guide,
	}, nil
}
