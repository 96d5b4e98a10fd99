package probearm_test

import (
	"testing"

	"github.com/fwojciec/probearm"
	"github.com/stretchr/testify/assert"
)

func TestParseCommands(t *testing.T) {
	t.Parallel()

	t.Run("lower-cases and splits", func(t *testing.T) {
		t.Parallel()
		got := probearm.ParseCommands("WaSdKL")
		assert.Equal(t, []probearm.Command{
			probearm.CommandUp, probearm.CommandLeft, probearm.CommandDown,
			probearm.CommandRight, probearm.CommandGrab, probearm.CommandDrop,
		}, got)
	})

	t.Run("keeps unrecognized characters", func(t *testing.T) {
		t.Parallel()
		got := probearm.ParseCommands("w x1 ")
		assert.Equal(t, []probearm.Command{'w', ' ', 'x', '1', ' '}, got)
	})

	t.Run("empty input yields no commands", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, probearm.ParseCommands(""))
	})
}

func TestCommand_Delta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd    probearm.Command
		dx, dy int
		ok     bool
	}{
		{probearm.CommandUp, 0, -1, true},
		{probearm.CommandDown, 0, 1, true},
		{probearm.CommandLeft, -1, 0, true},
		{probearm.CommandRight, 1, 0, true},
		{probearm.CommandGrab, 0, 0, false},
		{probearm.CommandDrop, 0, 0, false},
		{'z', 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.cmd.String(), func(t *testing.T) {
			t.Parallel()
			dx, dy, ok := tt.cmd.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
