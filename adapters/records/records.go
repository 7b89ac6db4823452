// Package records flattens typed engine results into presentation-neutral
// ResultRecords for the excel, report and ui renderers.
package records

import (
	"fmt"
	"strings"

	"safetycalc/domain/fallprotection"
	"safetycalc/domain/heatstress"
	"safetycalc/domain/incidentrate"
	"safetycalc/domain/noise"
	"safetycalc/domain/ppe"
	"safetycalc/domain/training"
	"safetycalc/ports"
)

func field(label, format string, args ...interface{}) ports.Field {
	return ports.Field{Label: label, Value: fmt.Sprintf(format, args...)}
}

// FromFallProtection flattens a fall-protection result
func FromFallProtection(r *fallprotection.Result) ports.ResultRecord {
	return ports.ResultRecord{
		ID:        r.ID,
		Engine:    r.Engine,
		CreatedAt: r.CreatedAt,
		Title:     fmt.Sprintf("Fall protection at %.1f m", r.Input.FallHeight),
		RiskLabel: r.Risk.Level.Label,
		Fields: []ports.Field{
			field("Free fall distance", "%.2f m", r.Metrics.FreeFallDistance),
			field("Total fall distance", "%.2f m", r.Metrics.TotalFallDistance),
			field("Clearance required", "%.2f m", r.Metrics.ClearanceRequired),
			field("Impact force", "%.0f N", r.Metrics.ImpactForce),
			field("Safety factor", "%.2f (%s)", r.Metrics.SafetyFactor, r.SafetyTier),
			field("System type", "%s", r.Input.SystemType),
		},
		Compliance:      r.Compliance,
		Recommendations: r.Recommendations,
	}
}

// FromHeatStress flattens a heat-stress result
func FromHeatStress(r *heatstress.Result) ports.ResultRecord {
	return ports.ResultRecord{
		ID:        r.ID,
		Engine:    r.Engine,
		CreatedAt: r.CreatedAt,
		Title:     fmt.Sprintf("Heat stress at %.1f°C WBGT", r.Metrics.WBGT),
		RiskLabel: r.Risk.Level.Label,
		Fields: []ports.Field{
			field("WBGT", "%.1f °C", r.Metrics.WBGT),
			field("Heat index", "%.1f °C", r.Metrics.HeatIndex),
			field("Sweat rate", "%.2f L/h", r.Metrics.SweatRate),
			field("Work-rest cycle", "%s", r.Schedule.CycleLabel),
			field("Recommended intake", "%.1f L", r.Hydration.RecommendedIntake),
			field("Expected symptoms", "%s", r.Symptoms),
			field("Required action", "%s", r.Action),
		},
		Compliance:      r.Compliance,
		Recommendations: r.Recommendations,
	}
}

// FromIncidentRate flattens an incident-rate result
func FromIncidentRate(r *incidentrate.Result) ports.ResultRecord {
	fields := []ports.Field{
		field("TRIR", "%.2f", r.Metrics.TRIR),
		field("DART", "%.2f", r.Metrics.DART),
		field("LTIFR", "%.2f", r.Metrics.LTIFR),
		field("Severity rate", "%.1f%%", r.Metrics.SeverityRate),
		field("TRIR vs industry", "%s (%+.1f%%)", r.TRIRComparison.Level, r.TRIRComparison.Percent),
		field("Performance", "%s (%d/100)", r.Performance.Rating, r.Performance.Score),
		field("Estimated cost", "$%.0f", r.Cost.Total),
	}
	if r.Trend != nil {
		fields = append(fields, field("Trend", "%s (slope %.3f/month)", r.Trend.Direction, r.Trend.Slope))
	}
	return ports.ResultRecord{
		ID:              r.ID,
		Engine:          r.Engine,
		CreatedAt:       r.CreatedAt,
		Title:           fmt.Sprintf("Incident rates, %s industry", r.Input.Industry),
		RiskLabel:       r.Performance.Rating,
		Fields:          fields,
		Recommendations: r.Recommendations,
	}
}

// FromNoise flattens a noise-exposure result
func FromNoise(r *noise.Result) ports.ResultRecord {
	fields := []ports.Field{
		field("Noise level", "%.1f dBA", r.Metrics.NoiseLevel),
		field("Permissible exposure", "%.2f h", r.Metrics.PermissibleExposure),
		field("Daily dose", "%.1f%%", r.Metrics.DailyDose),
		field("Weekly dose", "%.1f%%", r.Metrics.WeeklyDose),
		field("TWA", "%.1f dBA", r.Metrics.TWA),
		field("Action", "%s", r.Action),
	}
	if r.Protection.Used {
		fields = append(fields,
			field("Protected level", "%.1f dBA (NRR %.0f)", r.Protection.ProtectedLevel, r.Protection.Rating),
			field("Protection effective", "%t", r.Protection.Effective))
	}
	return ports.ResultRecord{
		ID:              r.ID,
		Engine:          r.Engine,
		CreatedAt:       r.CreatedAt,
		Title:           fmt.Sprintf("Noise exposure at %.0f dBA", r.Metrics.NoiseLevel),
		RiskLabel:       r.Risk.Level.Label,
		Fields:          fields,
		Recommendations: r.Recommendations,
	}
}

// FromPPE flattens a PPE-selection result
func FromPPE(r *ppe.Result) ports.ResultRecord {
	fields := []ports.Field{
		field("Overall risk", "%s", r.OverallRisk),
		field("Required categories", "%s", joinCategories(r.RequiredCategories)),
		field("Overall protection", "%.1f%%", r.OverallProtection*100),
		field("Comfort", "%s (%d/100)", r.Comfort.Level, r.Comfort.Score),
		field("Purchase cost", "$%.2f", r.Cost.Purchase),
		field("Cost per task", "$%.2f", r.Cost.Task),
	}
	for _, cat := range r.RequiredCategories {
		if item, ok := r.Items[cat]; ok {
			fields = append(fields, field(string(cat), "%s (%s)", item.Type, item.Standard))
		}
	}

	// PPE's bucketed compliance maps onto the shared report shape
	rec := ports.ResultRecord{
		ID:              r.ID,
		Engine:          r.Engine,
		CreatedAt:       r.CreatedAt,
		Title:           fmt.Sprintf("PPE selection: %s", r.Input.TaskDescription),
		RiskLabel:       r.OverallRisk,
		Fields:          fields,
		Recommendations: r.Recommendations,
	}
	for _, m := range r.Compliance.Missing {
		rec.Compliance.AddViolation("Missing required PPE: " + m)
	}
	for _, w := range r.Compliance.Warnings {
		rec.Compliance.AddWarning(w)
	}
	for _, s := range r.Compliance.ANSI {
		rec.Compliance.AddCompliant("ANSI " + s)
	}
	for _, s := range r.Compliance.NFPA {
		rec.Compliance.AddCompliant("NFPA " + s)
	}
	for _, s := range r.Compliance.OSHA {
		rec.Compliance.AddCompliant("OSHA " + s)
	}
	return rec
}

// FromTraining flattens a training-program result
func FromTraining(r *training.Result) ports.ResultRecord {
	return ports.ResultRecord{
		ID:        r.ID,
		Engine:    r.Engine,
		CreatedAt: r.CreatedAt,
		Title:     fmt.Sprintf("Training program, %d employees", r.Input.TotalEmployees),
		RiskLabel: r.Effectiveness.Level,
		Fields: []ports.Field{
			field("Modules", "%d (%d mandatory, %d recommended)",
				r.Needs.TotalModules, r.Needs.MandatoryCount, r.Needs.RecommendedCount),
			field("Total hours", "%.1f h", r.Hours.Total),
			field("Annual per employee", "%.1f h", r.Hours.AnnualPerEmployee),
			field("Effectiveness", "%s (%.1f/100)", r.Effectiveness.Level, r.Effectiveness.Score),
			field("Total cost", "$%.0f", r.Costs.Total),
			field("ROI", "%.1f%%", r.ROI.Percent),
			field("Payback", "%.1f years", r.ROI.PaybackYears),
		},
		Compliance:      r.Compliance.ComplianceReport,
		Recommendations: r.Recommendations,
	}
}

func joinCategories(cats []ppe.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
