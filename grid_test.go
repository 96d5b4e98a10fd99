package probearm_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/probearm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinate_Move(t *testing.T) {
	t.Parallel()

	t.Run("moves within bounds", func(t *testing.T) {
		t.Parallel()
		c := probearm.Coordinate{X: 3, Y: 3}
		assert.Equal(t, probearm.Coordinate{X: 4, Y: 3}, c.Move(1, 0))
		assert.Equal(t, probearm.Coordinate{X: 3, Y: 2}, c.Move(0, -1))
	})

	t.Run("clamps at the top-left corner", func(t *testing.T) {
		t.Parallel()
		c := probearm.Coordinate{X: 0, Y: 0}
		assert.Equal(t, c, c.Move(-1, 0))
		assert.Equal(t, c, c.Move(0, -1))
	})

	t.Run("clamps at the bottom-right corner", func(t *testing.T) {
		t.Parallel()
		c := probearm.Coordinate{X: probearm.GridSize - 1, Y: probearm.GridSize - 1}
		assert.Equal(t, c, c.Move(1, 0))
		assert.Equal(t, c, c.Move(0, 1))
	})

	t.Run("clamps large displacements", func(t *testing.T) {
		t.Parallel()
		c := probearm.Coordinate{X: 2, Y: 5}
		assert.Equal(t, probearm.Coordinate{X: 7, Y: 0}, c.Move(100, -100))
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, probearm.Coordinate{X: 0, Y: 7}.Validate())

	err := probearm.Coordinate{X: 8, Y: 0}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, probearm.ErrValidation))
	assert.Contains(t, err.Error(), "(8,0)")

	assert.False(t, probearm.Coordinate{X: -1, Y: 0}.InBounds())
}

func TestCoordinate_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(3,1)", probearm.Coordinate{X: 3, Y: 1}.String())
}
