package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// AssessmentID identifies a single calculation result
type AssessmentID ID

// NewAssessmentID creates a fresh assessment identifier
func NewAssessmentID() AssessmentID {
	return AssessmentID(NewID())
}

func (id AssessmentID) String() string { return ID(id).String() }
