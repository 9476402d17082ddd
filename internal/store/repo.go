package store

import "context"

// SessionRecord is the persisted form of a study session. Dates are
// YYYY-MM-DD and clock values HH:MM.
type SessionRecord struct {
	ID       string
	Subject  string
	Date     string
	Start    string
	End      string
	Priority string
	Status   string
}

// SessionRepo persists the full list of sessions.
type SessionRepo interface {
	// Load returns every stored session in saved order, or an empty
	// slice if none exist.
	Load(ctx context.Context) ([]SessionRecord, error)

	// Save atomically replaces the stored list with records.
	Save(ctx context.Context, records []SessionRecord) error
}
