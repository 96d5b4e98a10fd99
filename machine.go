package probearm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Machine drives a State through a queue of commands and records finalized
// sessions into a persisted history. It is not safe for concurrent use.
type Machine struct {
	state    State
	queue    []Command
	history  []Session
	store    HistoryStore
	now      func() time.Time
	handlers []func(Event)
	logger   *slog.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock sets the time source used for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

// WithEventHandler adds a callback that receives each Event after it is
// applied. Handlers run in registration order.
func WithEventHandler(h func(Event)) Option {
	return func(m *Machine) {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = l
	}
}

// NewMachine creates a Machine starting from state and persisting to store.
func NewMachine(state State, store HistoryStore, opts ...Option) *Machine {
	m := &Machine{
		state:  state.Clone(),
		store:  store,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load replaces the in-memory history with the persisted one.
func (m *Machine) Load(ctx context.Context) error {
	sessions, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	m.history = sessions
	m.logger.Debug("history loaded", "sessions", len(sessions))
	return nil
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state.Clone()
}

// History returns a copy of the finalized sessions, oldest first.
func (m *Machine) History() []Session {
	out := make([]Session, len(m.history))
	for i, s := range m.history {
		out[i] = s.Clone()
	}
	return out
}

// Pending returns the number of queued commands.
func (m *Machine) Pending() int {
	return len(m.queue)
}

// Submit parses input and appends the commands to the queue.
func (m *Machine) Submit(input string) {
	m.queue = append(m.queue, ParseCommands(input)...)
}

// Step pops the next command, applies it and notifies event handlers.
// A drop appends the session to history and saves the whole list; a save
// failure is returned but the session stays in the in-memory history.
// ok is false when the queue was empty.
func (m *Machine) Step(ctx context.Context) (evt Event, ok bool, err error) {
	if len(m.queue) == 0 {
		return nil, false, nil
	}
	c := m.queue[0]
	m.queue = m.queue[1:]

	m.state, evt = m.state.Apply(c, m.now())
	m.logger.Debug("command applied", "command", c.String(), "event", fmt.Sprintf("%T", evt), "arm", m.state.Arm.String())

	if d, isDrop := evt.(EventDropped); isDrop {
		m.history = append(m.history, d.Session.Clone())
		m.logger.Info("session finalized",
			"keys", d.Session.KeysString(""),
			"from", d.Session.ProbeMove.From.String(),
			"to", d.Session.ProbeMove.To.String(),
			"duration", d.Session.Duration(),
		)
		if serr := m.store.Save(ctx, m.History()); serr != nil {
			m.logger.Error("save history failed", "error", serr)
			err = fmt.Errorf("save history: %w", serr)
		}
	}

	for _, h := range m.handlers {
		h(evt)
	}
	return evt, true, err
}

// Run submits input and steps until the queue is empty. It stops early if
// ctx is cancelled between steps or a step returns an error.
func (m *Machine) Run(ctx context.Context, input string) error {
	m.Submit(input)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, ok, err := m.Step(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
