package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/probearm"
)

var _ tea.Model = Model{}

const (
	title       = "Robot control panel"
	placeholder = "Move: w, a, s, d | Grab: k | Drop: l"
	gutter      = 2
)

// Model is the Bubble Tea model for the arm TUI.
type Model struct {
	// Input is the command field. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable session log. Exported for test access.
	Viewport viewport.Model

	ctx     context.Context
	machine *probearm.Machine
	styles  Styles
	config  Config

	last    probearm.Event
	running bool
	err     error
	ready   bool
}

// New creates a TUI Model driving machine. The machine's history should
// already be loaded.
func New(machine *probearm.Machine, theme probearm.Theme, config Config) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:   ti,
		ctx:     context.Background(),
		machine: machine,
		styles:  NewStyles(theme),
		config:  config,
	}
}

// Running returns whether a command batch is being executed.
func (m Model) Running() bool { return m.running }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StepMsg:
		return m.step()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.running {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")

	grid := RenderGrid(m.machine.State(), m.styles)
	panel := m.styles.Accent.Render(fmt.Sprintf("Sessions (%d)", len(m.machine.History()))) + "\n" + m.Viewport.View()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, strings.Repeat(" ", gutter), panel))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	b.WriteString(m.Input.View())

	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	headerHeight := 1
	statusHeight := 1
	inputHeight := 1
	logTitleHeight := 1
	vpHeight := msg.Height - headerHeight - statusHeight - inputHeight - logTitleHeight
	vpWidth := msg.Width - GridWidth - gutter

	vpHeight = max(vpHeight, 1)
	vpWidth = max(vpWidth, 10)

	if !m.ready {
		m.Viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = vpWidth
		m.Viewport.Height = vpHeight
	}
	m = m.refreshHistory()

	m.Input.Width = msg.Width - lipgloss.Width(m.Input.Prompt) - 1
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.running {
			return m, nil
		}
		text := m.Input.Value()
		if text == "" {
			return m, nil
		}
		return m.submit(text)
	}

	if m.running {
		return m, nil
	}

	// Letters are commands, so only non-character keys scroll the log.
	var cmd tea.Cmd
	var cmds []tea.Cmd
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.Input.Blur()
	m.err = nil
	m.machine.Submit(text)
	m.running = true
	return m, nextStep(m.config.StepDelay)
}

// step executes one queued command and schedules the next one while the
// queue is non-empty.
func (m Model) step() (tea.Model, tea.Cmd) {
	evt, ok, err := m.machine.Step(m.ctx)
	if err != nil {
		m.err = err
	}
	if ok {
		m.last = evt
		if _, dropped := evt.(probearm.EventDropped); dropped {
			m = m.refreshHistory()
		}
	}
	if ok && m.machine.Pending() > 0 {
		return m, nextStep(m.config.StepDelay)
	}
	m.running = false
	return m, m.Input.Focus()
}

func (m Model) refreshHistory() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(RenderHistory(m.machine.History(), m.Viewport.Width, m.styles))
	m.Viewport.GotoBottom()
	return m
}

func (m Model) header() string {
	h := m.styles.Accent.Render(title)
	if m.config.StorageName != "" {
		h += m.styles.Muted.Render("  storage: " + m.config.StorageName)
	}
	return h
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	state := m.machine.State()
	pos := "arm " + state.Arm.String()
	if state.Holding() {
		pos += " holding probe"
	}
	if m.running {
		return m.styles.Muted.Render(fmt.Sprintf("%s │ %s │ executing, %d queued", pos, describe(m.last), m.machine.Pending()))
	}
	if m.last != nil {
		return m.styles.Muted.Render(fmt.Sprintf("%s │ %s │ Enter to run, Esc to quit", pos, describe(m.last)))
	}
	return m.styles.Muted.Render(pos + " │ Enter to run, Esc to quit")
}

// describe returns a short human-readable summary of evt.
func describe(evt probearm.Event) string {
	switch e := evt.(type) {
	case probearm.EventMoved:
		if e.From == e.To {
			return fmt.Sprintf("%s blocked at edge", e.Command)
		}
		return fmt.Sprintf("%s %s→%s", e.Command, e.From, e.To)
	case probearm.EventGrabbed:
		return "grabbed at " + e.At.String()
	case probearm.EventDropped:
		return "dropped at " + e.Session.ProbeMove.To.String()
	case probearm.EventIgnored:
		return fmt.Sprintf("%q ignored", string(e.Command))
	}
	return "ready"
}
