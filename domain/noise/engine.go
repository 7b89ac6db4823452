// Package noise implements the OSHA noise-dose exposure model: permissible
// exposure time with a 3 dB doubling rate, daily and weekly dose, TWA and
// hearing-protection derating.
package noise

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"safetycalc/domain/core"
	"safetycalc/domain/validation"
)

// Risk band labels in severity order
var (
	riskLow      = core.RiskLevel{Label: "Low Risk", Rank: 0}
	riskModerate = core.RiskLevel{Label: "Moderate Risk", Rank: 1}
	riskHigh     = core.RiskLevel{Label: "High Risk", Rank: 2}
)

// Fixed recommendation sets per dose band, in declaration order
var bandRecommendations = map[string][]string{
	riskLow.Label: {
		"Noise levels are acceptable",
		"Continue routine monitoring",
		"Maintain hearing conservation program",
	},
	riskModerate.Label: {
		"Consider implementing engineering controls",
		"Provide hearing protection",
		"Conduct annual audiometric testing",
	},
	riskHigh.Label: {
		"Implement engineering controls immediately",
		"Mandatory hearing protection use",
		"Post warning signs",
		"Conduct quarterly audiometric testing",
		"Implement hearing conservation program",
	},
}

var bandActions = map[string]ActionRequired{
	riskLow.Label:      ActionNone,
	riskModerate.Label: ActionRecommended,
	riskHigh.Label:     ActionRequiredNow,
}

// Engine is the noise-exposure assessment pipeline
type Engine struct{}

// NewEngine creates a noise-exposure engine
func NewEngine() *Engine {
	return &Engine{}
}

func (in Input) withDefaults() Input {
	if in.WorkDaysPerWeek <= 0 {
		in.WorkDaysPerWeek = 5
	}
	return in
}

func (e *Engine) validate(in Input) error {
	rules := validation.RuleSet{
		validation.Number("noiseLevel", in.NoiseLevel, 50, 140),
		validation.Number("exposureDuration", in.ExposureDuration, 0.1, 24),
		validation.Number("workDays", float64(in.WorkDaysPerWeek), 1, 7),
	}
	if in.HearingProtection {
		rules = append(rules, validation.Number("protectionRating", in.ProtectionRating, 0, 40))
	}
	for _, lvl := range in.SourceLevels {
		rules = append(rules, validation.Number("sourceLevels", lvl, 50, 140))
	}
	return rules.Validate()
}

// Calculate runs validate → compute → classify → recommend for one exposure
func (e *Engine) Calculate(raw Input) (*Result, error) {
	in := raw.withDefaults()
	if err := e.validate(in); err != nil {
		return nil, err
	}

	level := in.NoiseLevel
	if len(in.SourceLevels) > 0 {
		level = CombinedLevel(in.SourceLevels)
	}

	m := e.compute(level, in)
	prot := e.derate(level, in)
	risk := e.classify(m.DailyDose)

	res := &Result{
		Meta:       core.NewMeta("noise-exposure"),
		Input:      in,
		Metrics:    m,
		Protection: prot,
		Risk:       risk,
		Action:     bandActions[risk.Level.Label],
	}
	res.Recommendations = append(core.Recommendations{}, bandRecommendations[risk.Level.Label]...)
	return res, nil
}

// PermissibleExposure returns the OSHA permissible exposure time in hours
// for a given level: T = 8 / 2^((L-85)/3)
func PermissibleExposure(level float64) float64 {
	return 8 / math.Pow(2, (level-85)/3)
}

// CombinedLevel sums simultaneous sources energetically:
// L = 10·log10(Σ 10^(Li/10))
func CombinedLevel(levels []float64) float64 {
	powers := make([]float64, len(levels))
	for i, l := range levels {
		powers[i] = math.Pow(10, l/10)
	}
	return 10 * math.Log10(floats.Sum(powers))
}

func (e *Engine) compute(level float64, in Input) Metrics {
	permissible := PermissibleExposure(level)
	daily := in.ExposureDuration / permissible * 100

	weeklyExposure := in.ExposureDuration * float64(in.WorkDaysPerWeek)
	weeklyPermissible := permissible * 5 // OSHA standard week
	weekly := weeklyExposure / weeklyPermissible * 100

	return Metrics{
		NoiseLevel:          level,
		PermissibleExposure: permissible,
		DailyDose:           daily,
		WeeklyDose:          weekly,
		TWA:                 85 + 3*math.Log2(daily/100),
	}
}

func (e *Engine) derate(level float64, in Input) Protection {
	p := Protection{Used: in.HearingProtection, Rating: in.ProtectionRating}
	p.ProtectedLevel = level
	p.ProtectedDose = in.ExposureDuration / PermissibleExposure(level) * 100

	if in.HearingProtection && in.ProtectionRating > 0 {
		p.ProtectedLevel = math.Max(0, level-in.ProtectionRating)
		p.ProtectedDose = in.ExposureDuration / PermissibleExposure(p.ProtectedLevel) * 100
		p.Effective = p.ProtectedDose < 100
	}
	return p
}

func (e *Engine) classify(dailyDose float64) core.ClassificationResult {
	var level core.RiskLevel
	switch {
	case dailyDose <= 50:
		level = riskLow
	case dailyDose <= 100:
		level = riskModerate
	default:
		level = riskHigh
	}
	return core.ClassificationResult{
		Level: level,
		Score: dailyDose,
	}
}
