package probearm

import "time"

// Default starting positions.
var (
	DefaultBot = Coordinate{X: 0, Y: 0}
	DefaultArm = Coordinate{X: 0, Y: 1}
)

// State is the full simulation state: the entities on the grid and the
// session in progress. Session is nil while no probe is held.
type State struct {
	Bot     Coordinate
	Arm     Coordinate
	Probe   Probe
	Session *Session
}

// NewState returns the starting state with the probe lying at probe.
func NewState(probe Coordinate) State {
	return State{
		Bot:   DefaultBot,
		Arm:   DefaultArm,
		Probe: ProbeOnGrid{At: probe},
	}
}

// Holding reports whether the arm carries the probe.
func (s State) Holding() bool {
	_, held := s.Probe.(ProbeHeld)
	return held
}

// ProbeAt returns the probe's cell. ok is false while the probe is held.
func (s State) ProbeAt() (at Coordinate, ok bool) {
	p, ok := s.Probe.(ProbeOnGrid)
	return p.At, ok
}

// Clone returns a copy of s that shares no mutable data with it.
func (s State) Clone() State {
	if s.Session != nil {
		sess := s.Session.Clone()
		s.Session = &sess
	}
	return s
}

// Apply executes one command against s and returns the next state together
// with the Event describing what happened. s itself is not modified.
//
// While a session is open, the command character is appended to its keys
// after the command takes effect, so a session's keys start with the grab
// and end with the drop.
func (s State) Apply(c Command, now time.Time) (State, Event) {
	next := s.Clone()
	var evt Event = EventIgnored{Command: c}
	dropped := false

	if dx, dy, ok := c.Delta(); ok {
		next.Arm = s.Arm.Move(dx, dy)
		evt = EventMoved{Command: c, From: s.Arm, To: next.Arm}
	}

	switch c {
	case CommandGrab:
		if at, ok := s.ProbeAt(); ok && at == s.Arm {
			next.Probe = ProbeHeld{}
			next.Session = &Session{
				Start:     now,
				Keys:      []Command{},
				ProbeMove: ProbeMove{From: s.Arm},
			}
			evt = EventGrabbed{At: s.Arm}
		}
	case CommandDrop:
		if s.Holding() {
			next.Probe = ProbeOnGrid{At: s.Arm}
			if next.Session == nil {
				// Only reachable from a hand-built State.
				next.Session = &Session{Start: now, Keys: []Command{}, ProbeMove: ProbeMove{From: s.Arm}}
			}
			dropped = true
		}
	}

	if next.Session != nil {
		next.Session.Keys = append(next.Session.Keys, c)
	}

	if dropped {
		closed := *next.Session
		to := s.Arm
		closed.End = now
		closed.ProbeMove.To = &to
		next.Session = nil
		evt = EventDropped{Session: closed}
	}

	return next, evt
}
