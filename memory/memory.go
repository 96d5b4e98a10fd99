// Package memory provides an in-process probearm.Storage.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/fwojciec/probearm"
)

var _ probearm.Storage = (*Storage)(nil)

// Storage keeps values in a map. Nothing survives the process.
type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStorage creates an empty Storage.
func NewStorage() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, probearm.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = slices.Clone(value)
	return nil
}
