package json

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/probearm"
)

var _ probearm.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps the whole history in one Storage slot.
type HistoryStore struct {
	storage probearm.Storage
	key     string
	logger  *slog.Logger
}

// Option configures a HistoryStore.
type Option func(*HistoryStore)

// WithKey sets the storage slot. The default is probearm.HistoryKey.
func WithKey(key string) Option {
	return func(h *HistoryStore) {
		h.key = key
	}
}

// WithLogger sets the logger used to report malformed history.
func WithLogger(l *slog.Logger) Option {
	return func(h *HistoryStore) {
		h.logger = l
	}
}

// NewHistoryStore creates a HistoryStore on top of storage.
func NewHistoryStore(storage probearm.Storage, opts ...Option) *HistoryStore {
	h := &HistoryStore{
		storage: storage,
		key:     probearm.HistoryKey,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Load returns the persisted sessions. A missing slot or malformed data
// yields an empty list; only storage failures are returned as errors.
func (h *HistoryStore) Load(ctx context.Context) ([]probearm.Session, error) {
	data, err := h.storage.Get(ctx, h.key)
	if errors.Is(err, probearm.ErrNotFound) {
		return []probearm.Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", h.key, err)
	}
	sessions, err := UnmarshalHistory(data)
	if err != nil {
		h.logger.Warn("discarding malformed history", "key", h.key, "error", err)
		return []probearm.Session{}, nil
	}
	return sessions, nil
}

// Save overwrites the slot with sessions.
func (h *HistoryStore) Save(ctx context.Context, sessions []probearm.Session) error {
	data, err := MarshalHistory(sessions)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := h.storage.Set(ctx, h.key, data); err != nil {
		return fmt.Errorf("write %q: %w", h.key, err)
	}
	return nil
}
