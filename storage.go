package probearm

import "context"

// HistoryKey is the storage slot that holds the serialized history.
const HistoryKey = "sessions"

// Storage is a key-value store of opaque values.
type Storage interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key holds no value.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// HistoryStore persists the list of finalized sessions as a whole.
type HistoryStore interface {
	// Load returns the persisted sessions in order. Missing or malformed
	// data yields an empty list and a nil error.
	Load(ctx context.Context) ([]Session, error)

	// Save overwrites the persisted list with sessions.
	Save(ctx context.Context, sessions []Session) error
}
