package probearm

// Probe is a sealed interface describing where the probe is.
// It is either lying on the grid or held by the arm, never both.
type Probe interface {
	probe()
}

// ProbeOnGrid is a probe lying on a grid cell.
type ProbeOnGrid struct {
	At Coordinate
}

func (ProbeOnGrid) probe() {}

// ProbeHeld is a probe carried by the arm.
type ProbeHeld struct{}

func (ProbeHeld) probe() {}

// Interface compliance checks.
var (
	_ Probe = ProbeOnGrid{}
	_ Probe = ProbeHeld{}
)
