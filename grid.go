package probearm

import "fmt"

// GridSize is the width and height of the square grid.
const GridSize = 8

// Coordinate is a cell on the grid. X grows to the right, Y grows downward.
type Coordinate struct {
	X int
	Y int
}

// String returns the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether c lies on the grid.
func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// Move returns c shifted by (dx, dy) with both axes clamped to the grid.
func (c Coordinate) Move(dx, dy int) Coordinate {
	return Coordinate{X: clamp(c.X + dx), Y: clamp(c.Y + dy)}
}

// Validate returns ErrValidation if c lies outside the grid.
func (c Coordinate) Validate() error {
	if !c.InBounds() {
		return fmt.Errorf("coordinate %s outside %dx%d grid: %w", c, GridSize, GridSize, ErrValidation)
	}
	return nil
}

func clamp(v int) int {
	return max(0, min(GridSize-1, v))
}
