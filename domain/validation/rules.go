// Package validation implements the field-rule layer shared by every
// assessment engine: each engine declares its checks in order, evaluation
// stops at the first failure, and a single error names the offending field
// and its acceptable range or set.
package validation

import (
	"safetycalc/domain/core"
)

// Rule is one declared input check
type Rule interface {
	Check() *core.ValidationError
}

// RuleSet evaluates rules in declaration order and stops at the first failure
type RuleSet []Rule

// Validate runs every rule in order. It returns the first failure, or nil
// when all checks pass. Cross-field rules are conventionally declared after
// individual field rules so they only see values that passed their own checks.
func (rs RuleSet) Validate() error {
	for _, r := range rs {
		if ve := r.Check(); ve != nil {
			return ve
		}
	}
	return nil
}

type numberRule struct {
	field    string
	value    float64
	required bool
	min, max float64
	bounded  bool
}

// Number declares a numeric field bounded to [min, max]
func Number(field string, value, min, max float64) Rule {
	return &numberRule{field: field, value: value, min: min, max: max, bounded: true, required: true}
}

// Positive declares a numeric field that must be strictly greater than zero
func Positive(field string, value float64) Rule {
	return &positiveRule{field: field, value: value}
}

// NonNegative declares a numeric field that must be zero or greater
func NonNegative(field string, value float64) Rule {
	return &nonNegativeRule{field: field, value: value}
}

func (r *numberRule) Check() *core.ValidationError {
	if r.value < r.min || r.value > r.max {
		return core.OutOfRange(r.field, r.value, r.min, r.max)
	}
	return nil
}

type positiveRule struct {
	field string
	value float64
}

func (r *positiveRule) Check() *core.ValidationError {
	if r.value <= 0 {
		return &core.ValidationError{
			Field:      r.field,
			Constraint: "range",
			Message:    "value must be greater than zero",
		}
	}
	return nil
}

type nonNegativeRule struct {
	field string
	value float64
}

func (r *nonNegativeRule) Check() *core.ValidationError {
	if r.value < 0 {
		return &core.ValidationError{
			Field:      r.field,
			Constraint: "range",
			Message:    "value must not be negative",
		}
	}
	return nil
}

type enumRule struct {
	field   string
	value   string
	allowed []string
}

// OneOf declares an enum field restricted to the allowed tags
func OneOf(field, value string, allowed ...string) Rule {
	return &enumRule{field: field, value: value, allowed: allowed}
}

func (r *enumRule) Check() *core.ValidationError {
	for _, a := range r.allowed {
		if r.value == a {
			return nil
		}
	}
	return core.NotInSet(r.field, r.value, r.allowed)
}

type crossRule struct {
	field   string
	message string
	ok      func() bool
}

// Cross declares a constraint spanning multiple fields. It fails with the
// given message when ok() returns false.
func Cross(field, message string, ok func() bool) Rule {
	return &crossRule{field: field, message: message, ok: ok}
}

func (r *crossRule) Check() *core.ValidationError {
	if !r.ok() {
		return core.CrossField(r.field, r.message)
	}
	return nil
}
