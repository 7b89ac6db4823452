// Package incidentrate computes OSHA incident statistics (TRIR, DART, LTIFR,
// severity and frequency rates), compares them against industry benchmarks
// and scores overall safety performance.
package incidentrate

import (
	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

// Engine is the incident-rate assessment pipeline
type Engine struct{}

// NewEngine creates an incident-rate engine
func NewEngine() *Engine {
	return &Engine{}
}

func (in Input) withDefaults() Input {
	if in.TotalEmployees <= 0 {
		in.TotalEmployees = 1
	}
	return in
}

func (e *Engine) validate(in Input) error {
	return validation.RuleSet{
		validation.NonNegative("recordableInjuries", float64(in.RecordableInjuries)),
		validation.NonNegative("lostTimeInjuries", float64(in.LostTimeInjuries)),
		validation.Positive("totalHoursWorked", in.TotalHoursWorked),
		// Cross-field checks run after individual field checks
		validation.Cross("lostTimeInjuries",
			"lost time injuries cannot exceed recordable injuries",
			func() bool { return in.LostTimeInjuries <= in.RecordableInjuries }),
	}.Validate()
}

// Calculate runs validate → compute → classify → recommend for one period
func (e *Engine) Calculate(raw Input) (*Result, error) {
	in := raw.withDefaults()
	if err := e.validate(in); err != nil {
		return nil, err
	}

	m := e.compute(in)
	bench := BenchmarkFor(in.Industry)
	perf := e.assessPerformance(m, bench)

	res := &Result{
		Meta:           core.NewMeta("incident-rate"),
		Input:          in,
		Metrics:        m,
		Benchmark:      bench,
		TRIRComparison: compareWithBenchmark(m.TRIR, bench.TRIR),
		DARTComparison: compareWithBenchmark(m.DART, bench.DART),
		Performance:    perf,
		Improvement:    improvementNeeded(m.TRIR, bench.Target),
		Cost:           estimateCost(in.RecordableInjuries, in.LostTimeInjuries),
		Trend:          analyzeTrend(in.MonthlyRecordables),
		Recommendations: e.recommend(m, in, perf),
	}
	return res, nil
}

func (e *Engine) compute(in Input) Metrics {
	hours := in.TotalHoursWorked
	m := Metrics{
		TRIR:          float64(in.RecordableInjuries) * 200000 / hours,
		DART:          float64(in.LostTimeInjuries) * 200000 / hours,
		LTIFR:         float64(in.LostTimeInjuries) * 1000000 / hours,
		FrequencyRate: float64(in.RecordableInjuries) / hours * 1000000,
		AvgHoursPerEmployee: hours / float64(in.TotalEmployees),
	}
	if in.RecordableInjuries > 0 {
		m.SeverityRate = float64(in.LostTimeInjuries) / float64(in.RecordableInjuries) * 100
	}
	return m
}

// compareWithBenchmark bands a rate by its ratio to the benchmark
func compareWithBenchmark(rate, benchmark float64) Comparison {
	diff := rate - benchmark
	pct := diff / benchmark * 100

	var level string
	switch {
	case rate <= benchmark*0.5:
		level = "Excellent"
	case rate <= benchmark*0.8:
		level = "Good"
	case rate <= benchmark:
		level = "Average"
	case rate <= benchmark*1.2:
		level = "Below Average"
	default:
		level = "Poor"
	}
	return Comparison{Level: level, Difference: diff, Percent: pct}
}

func (e *Engine) assessPerformance(m Metrics, bench Benchmark) Performance {
	score := 0

	switch {
	case m.TRIR <= bench.Target:
		score += 30
	case m.TRIR <= bench.TRIR:
		score += 20
	default:
		score += 10
	}

	switch {
	case m.DART <= bench.Target*0.8:
		score += 30
	case m.DART <= bench.DART:
		score += 20
	default:
		score += 10
	}

	switch {
	case m.LTIFR <= 0.5:
		score += 40
	case m.LTIFR <= 1.0:
		score += 30
	case m.LTIFR <= 2.0:
		score += 20
	default:
		score += 10
	}

	for _, tier := range performanceTiers {
		if score >= tier.MinScore {
			return Performance{Rating: tier.Rating, Score: score}
		}
	}
	return Performance{Rating: "Needs Improvement", Score: score}
}

func improvementNeeded(trir, target float64) Improvement {
	reduction := trir - target
	pct := 0.0
	if trir > 0 {
		pct = reduction / trir * 100
	}
	return Improvement{Reduction: reduction, Percent: pct, Target: target}
}

func estimateCost(recordable, lostTime int) CostImpact {
	direct := float64(recordable)*costPerRecordable + float64(lostTime)*costPerLostTime
	total := direct * indirectMultiplier

	divisor := float64(recordable)
	if divisor == 0 {
		divisor = 1
	}
	return CostImpact{
		Direct:    direct,
		Indirect:  direct * (indirectMultiplier - 1),
		Total:     total,
		PerInjury: total / divisor,
	}
}

func (e *Engine) recommend(m Metrics, in Input, perf Performance) core.Recommendations {
	var recs core.Recommendations

	recs.AddIf(in.RecordableInjuries > 0,
		"Conduct incident investigation for all recordable injuries",
		"Implement corrective actions based on root cause analysis")

	recs.AddIf(in.LostTimeInjuries > 0,
		"Review lost time incidents with senior management",
		"Implement return-to-work programs")

	recs.AddIf(m.TRIR > 3.0,
		"Strengthen safety training programs",
		"Increase safety inspections and audits",
		"Implement behavior-based safety programs")

	recs.AddIf(m.DART > 2.0,
		"Focus on ergonomic improvements",
		"Implement job hazard analysis for high-risk tasks",
		"Enhance first aid and medical response capabilities")

	recs.AddIf(perf.Rating == "Needs Improvement",
		"Develop comprehensive safety improvement plan",
		"Increase management safety walkthroughs",
		"Consider hiring safety consultant",
		"Benchmark against industry leaders")
	recs.AddIf(perf.Rating == "World Class",
		"Maintain current safety programs",
		"Share best practices within organization",
		"Consider safety certification (ISO 45001)")

	recs.Add(
		"Review industry-specific safety standards and regulations",
		"Participate in industry safety groups and forums",
	)
	return recs
}
