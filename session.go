package probearm

import (
	"slices"
	"strings"
	"time"
)

// Session is one grab-to-drop interaction.
type Session struct {
	Start     time.Time
	End       time.Time
	Keys      []Command
	ProbeMove ProbeMove
}

// ProbeMove records where the probe was picked up and where it was put down.
// To is nil until the session closes.
type ProbeMove struct {
	From Coordinate
	To   *Coordinate
}

// Open reports whether the session has started and not yet ended.
func (s Session) Open() bool {
	return !s.Start.IsZero() && s.End.IsZero()
}

// Duration returns the time between grab and drop, or zero for an open session.
func (s Session) Duration() time.Duration {
	if s.Start.IsZero() || s.End.IsZero() {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	c := s
	c.Keys = slices.Clone(s.Keys)
	if s.ProbeMove.To != nil {
		to := *s.ProbeMove.To
		c.ProbeMove.To = &to
	}
	return c
}

// KeysString returns the recorded keys joined with sep.
func (s Session) KeysString(sep string) string {
	parts := make([]string, len(s.Keys))
	for i, k := range s.Keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, sep)
}
