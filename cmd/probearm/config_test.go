package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/probearm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads yaml over defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
storage: sqlite
sqlite_path: /tmp/arm.db
probe: "3,3"
step_delay: 50ms
log_level: debug
`), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "sqlite", cfg.Storage)
		assert.Equal(t, "/tmp/arm.db", cfg.SQLitePath)
		assert.Equal(t, "3,3", cfg.Probe)
		assert.Equal(t, 50*time.Millisecond, cfg.StepDelay)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, DefaultConfig().DataDir, cfg.DataDir, "unset keys keep defaults")
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("storage: [unterminated"), 0o600))
		_, err := loadConfig(path)
		require.ErrorContains(t, err, "parse config")
	})
}

func TestParseCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    probearm.Coordinate
		wantErr bool
	}{
		{in: "3,3", want: probearm.Coordinate{X: 3, Y: 3}},
		{in: " 0 , 7 ", want: probearm.Coordinate{X: 0, Y: 7}},
		{in: "8,0", wantErr: true},
		{in: "-1,2", wantErr: true},
		{in: "3", wantErr: true},
		{in: "a,b", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := parseCoordinate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, probearm.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitialProbe(t *testing.T) {
	t.Parallel()

	t.Run("configured position wins", func(t *testing.T) {
		t.Parallel()
		got, err := initialProbe(Config{Probe: "5,6", Seed: 42})
		require.NoError(t, err)
		assert.Equal(t, probearm.Coordinate{X: 5, Y: 6}, got)
	})

	t.Run("seed is reproducible", func(t *testing.T) {
		t.Parallel()
		a, err := initialProbe(Config{Seed: 42})
		require.NoError(t, err)
		b, err := initialProbe(Config{Seed: 42})
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.True(t, a.InBounds())
	})

	t.Run("random position is on the grid", func(t *testing.T) {
		t.Parallel()
		for range 50 {
			c, err := initialProbe(Config{})
			require.NoError(t, err)
			assert.True(t, c.InBounds())
		}
	})
}
