package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/probearm"
	"github.com/fwojciec/probearm/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Get(t *testing.T) {
	t.Parallel()
	t.Run("delegates to GetFn", func(t *testing.T) {
		t.Parallel()
		s := mock.Storage{
			GetFn: func(ctx context.Context, key string) ([]byte, error) {
				return []byte(key + "-value"), nil
			},
		}
		got, err := s.Get(context.Background(), "sessions")
		require.NoError(t, err)
		assert.Equal(t, []byte("sessions-value"), got)
	})

	t.Run("panics when GetFn not set", func(t *testing.T) {
		t.Parallel()
		s := mock.Storage{}
		assert.Panics(t, func() {
			_, _ = s.Get(context.Background(), "k")
		})
	})
}

func TestStorage_Set(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("disk full")
	var gotKey string
	s := mock.Storage{
		SetFn: func(ctx context.Context, key string, value []byte) error {
			gotKey = key
			return wantErr
		},
	}
	err := s.Set(context.Background(), "sessions", []byte("[]"))
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, "sessions", gotKey)
}

func TestHistoryStore(t *testing.T) {
	t.Parallel()
	var saved []probearm.Session
	h := mock.HistoryStore{
		LoadFn: func(ctx context.Context) ([]probearm.Session, error) {
			return []probearm.Session{{Keys: []probearm.Command{'k', 'l'}}}, nil
		},
		SaveFn: func(ctx context.Context, sessions []probearm.Session) error {
			saved = sessions
			return nil
		},
	}
	got, err := h.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NoError(t, h.Save(context.Background(), got))
	assert.Equal(t, got, saved)
}
