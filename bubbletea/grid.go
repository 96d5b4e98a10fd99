package bubbletea

import (
	"strings"

	"github.com/fwojciec/probearm"
)

// Cell is what occupies one grid cell for rendering purposes.
type Cell int

const (
	CellEmpty Cell = iota
	CellBot
	CellArm
	CellProbe
	CellArmOnProbe
)

// cellWidth is the rendered width of one cell in columns.
const cellWidth = 3

// GridWidth is the rendered width of the whole grid in columns.
const GridWidth = probearm.GridSize * cellWidth

// CellAt classifies c. The bot wins over everything, then the probe; an arm
// standing on the probe is drawn as the probe with the arm glyph.
func CellAt(s probearm.State, c probearm.Coordinate) Cell {
	probeAt, onGrid := s.ProbeAt()
	isProbe := onGrid && probeAt == c
	isArm := s.Arm == c
	switch {
	case s.Bot == c:
		return CellBot
	case isProbe && isArm:
		return CellArmOnProbe
	case isProbe:
		return CellProbe
	case isArm:
		return CellArm
	}
	return CellEmpty
}

// RenderGrid draws the grid one row per line.
func RenderGrid(s probearm.State, styles Styles) string {
	var b strings.Builder
	for y := range probearm.GridSize {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := range probearm.GridSize {
			b.WriteString(renderCell(CellAt(s, probearm.Coordinate{X: x, Y: y}), styles))
		}
	}
	return b.String()
}

func renderCell(c Cell, styles Styles) string {
	switch c {
	case CellBot:
		return styles.Bot.Render(" B ")
	case CellArm:
		return styles.Arm.Render(" A ")
	case CellProbe:
		return styles.Probe.Render(" P ")
	case CellArmOnProbe:
		return styles.Probe.Render(" @ ")
	}
	return styles.Empty.Render(" · ")
}
