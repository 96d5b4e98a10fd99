package probearm

// Event is a sealed interface describing the outcome of applying one Command.
// Every applied command yields exactly one Event.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventMoved reports a movement command. From equals To when the move was
// clamped at the grid edge.
type EventMoved struct {
	Command Command
	From    Coordinate
	To      Coordinate
}

func (EventMoved) event() {}

// EventGrabbed reports a successful grab and the opening of a session.
type EventGrabbed struct {
	At Coordinate
}

func (EventGrabbed) event() {}

// EventDropped reports a successful drop with the finalized session.
type EventDropped struct {
	Session Session
}

func (EventDropped) event() {}

// EventIgnored reports a command with no effect on the arm or probe:
// unrecognized characters, misaligned or repeated grabs, drops while empty.
type EventIgnored struct {
	Command Command
}

func (EventIgnored) event() {}

// Interface compliance checks.
var (
	_ Event = EventMoved{}
	_ Event = EventGrabbed{}
	_ Event = EventDropped{}
	_ Event = EventIgnored{}
)
