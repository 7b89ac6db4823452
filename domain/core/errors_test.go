package core

import (
	"errors"
	"testing"
)

func TestValidationError_Unwrap(t *testing.T) {
	err := OutOfRange("noiseLevel", 150, 50, 140)

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError must unwrap to ErrValidation")
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError must recognize a ValidationError")
	}

	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatal("AsValidationError must extract the structured error")
	}
	if ve.Field != "noiseLevel" {
		t.Errorf("Field = %q, want noiseLevel", ve.Field)
	}
	if ve.Constraint != "range" {
		t.Errorf("Constraint = %q, want range", ve.Constraint)
	}
}

func TestValidationError_Constructors(t *testing.T) {
	cases := []struct {
		err        *ValidationError
		constraint string
	}{
		{MissingField("weight"), "required"},
		{OutOfRange("weight", -1, 20, 250), "range"},
		{NotInSet("industry", "space", []string{"construction", "general"}), "enum"},
		{CrossField("lostTimeInjuries", "exceeds recordables"), "cross-field"},
	}
	for _, tc := range cases {
		if tc.err.Constraint != tc.constraint {
			t.Errorf("Constraint = %q, want %q", tc.err.Constraint, tc.constraint)
		}
		if tc.err.Error() == "" {
			t.Error("Error() must not be empty")
		}
	}
}

func TestIsValidationError_ForeignError(t *testing.T) {
	if IsValidationError(errors.New("boom")) {
		t.Error("foreign errors must not be classified as validation failures")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Fatal("NewID returned empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}
