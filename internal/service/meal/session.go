package meal

import "github.com/platelog/platelog-backend/internal/domain"

// Session is an in-memory editing session over a single meal record. The
// caller owns the session and passes it into every edit operation, which
// keeps mutation scope explicit instead of living on ambient state.
//
// A session is not safe for concurrent use: edits are synchronous
// read-modify-recompute steps, and a meal record must only ever have one
// writer at a time.
type Session struct {
	Record *domain.MealRecord
}

// NewSession wraps a loaded meal record and recomputes its totals, so a
// session always starts from a consistent aggregate.
func NewSession(record *domain.MealRecord) *Session {
	Recompute(record)
	return &Session{Record: record}
}

// HasUnsavedEdits reports whether the record was mutated since the last save.
func (s *Session) HasUnsavedEdits() bool {
	return s.Record.Dirty
}
