package app

import "context"

// RecordStore abstracts the durable key-value store holding the user's data
// (local sqlite file, Redis, or an in-memory map for tests).
type RecordStore interface {
	// Get returns the value of a named record and whether it exists.
	Get(ctx context.Context, name string) (string, bool, error)
	// Set writes a named record, replacing any previous value.
	Set(ctx context.Context, name, value string) error
	// Delete removes a named record. Deleting an absent record is not an error.
	Delete(ctx context.Context, name string) error
}

// Record names in the store. They match the original browser localStorage
// keys so the persisted layout is a stable, documented contract.
const (
	recordUserName = "quiz_user_name"
	recordAttempts = "quiz_attempts"
)
