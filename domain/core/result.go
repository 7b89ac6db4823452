package core

import "time"

// Meta is the envelope shared by every engine result. A result is constructed
// fresh per calculation, never cached or mutated after construction. The
// envelope carries a new ID and timestamp each time, so it sits outside the
// determinism guarantee: for identical input, everything in a result except
// Meta is identical across invocations.
type Meta struct {
	ID        AssessmentID
	Engine    string
	CreatedAt time.Time
}

// NewMeta stamps a fresh result envelope for the named engine
func NewMeta(engine string) Meta {
	return Meta{
		ID:        NewAssessmentID(),
		Engine:    engine,
		CreatedAt: time.Now().UTC(),
	}
}
