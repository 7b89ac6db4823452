package core

// RiskLevel is an ordered classification label. Rank increases with severity
// so levels can be compared and shifted deterministically.
type RiskLevel struct {
	Label string
	Rank  int
}

// ClassificationResult pairs a risk band with the score that produced it and
// a human-readable rationale.
type ClassificationResult struct {
	Level     RiskLevel
	Score     float64
	Rationale string
}

// Band is one contiguous interval of a classification scale. Upper is the
// inclusive upper bound; the final band of a scale is unbounded.
type Band struct {
	Upper RiskLevelBound
	Level RiskLevel
}

// RiskLevelBound is the inclusive upper edge of a band.
type RiskLevelBound float64

// Scale is an ordered list of contiguous bands over the real line. The zero
// Scale is invalid; construct with at least one band.
type Scale []Band

// Classify maps any value to exactly one band. Values above the last declared
// bound fall into the final band, so the mapping is total over the reals.
func (s Scale) Classify(value float64) RiskLevel {
	for _, b := range s[:len(s)-1] {
		if value <= float64(b.Upper) {
			return b.Level
		}
	}
	return s[len(s)-1].Level
}

// ComplianceReport groups the outcome of every applicable regulatory rule.
// Invariant: IsCompliant() is true iff Violations is empty.
type ComplianceReport struct {
	Violations []string
	Warnings   []string
	Compliant  []string
}

// IsCompliant reports whether no rule produced a violation
func (r ComplianceReport) IsCompliant() bool {
	return len(r.Violations) == 0
}

// HasWarnings reports whether any rule produced a warning
func (r ComplianceReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddViolation records a failed regulatory rule
func (r *ComplianceReport) AddViolation(msg string) {
	r.Violations = append(r.Violations, msg)
}

// AddWarning records a rule that passed but merits attention
func (r *ComplianceReport) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddCompliant records a rule that passed cleanly
func (r *ComplianceReport) AddCompliant(msg string) {
	r.Compliant = append(r.Compliant, msg)
}

// Recommendations is an ordered list of advisory strings. Order is rule
// declaration order, not severity order; renderers must preserve it.
type Recommendations []string

// Add appends recommendation texts in declaration order
func (r *Recommendations) Add(texts ...string) {
	*r = append(*r, texts...)
}

// AddIf appends texts only when the predicate held
func (r *Recommendations) AddIf(cond bool, texts ...string) {
	if cond {
		r.Add(texts...)
	}
}
