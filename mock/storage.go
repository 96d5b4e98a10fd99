// Package mock provides test doubles for probearm interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/probearm"
)

// Interface compliance checks.
var (
	_ probearm.Storage      = (*Storage)(nil)
	_ probearm.HistoryStore = (*HistoryStore)(nil)
)

// Storage is a test double for probearm.Storage.
// Set the function fields for the methods you need.
type Storage struct {
	GetFn func(ctx context.Context, key string) ([]byte, error)
	SetFn func(ctx context.Context, key string, value []byte) error
}

// Get delegates to GetFn.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.GetFn(ctx, key)
}

// Set delegates to SetFn.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.SetFn(ctx, key, value)
}

// HistoryStore is a test double for probearm.HistoryStore.
type HistoryStore struct {
	LoadFn func(ctx context.Context) ([]probearm.Session, error)
	SaveFn func(ctx context.Context, sessions []probearm.Session) error
}

// Load delegates to LoadFn.
func (h *HistoryStore) Load(ctx context.Context) ([]probearm.Session, error) {
	return h.LoadFn(ctx)
}

// Save delegates to SaveFn.
func (h *HistoryStore) Save(ctx context.Context, sessions []probearm.Session) error {
	return h.SaveFn(ctx, sessions)
}
