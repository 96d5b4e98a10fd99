// Package bubbletea provides a Bubble Tea TUI for driving the arm.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Config holds display and pacing settings for the TUI.
type Config struct {
	// StepDelay is the pause between queued commands. Zero runs the next
	// command on the following update.
	StepDelay time.Duration
	// StorageName labels where history is persisted, shown in the header.
	StorageName string
}

// DefaultStepDelay paces queued commands so each move is visible.
const DefaultStepDelay = 150 * time.Millisecond

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown and for storage calls made
// while stepping.
func Run(ctx context.Context, m Model) error {
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StepMsg asks the model to execute the next queued command.
type StepMsg struct{}

// nextStep schedules the following StepMsg after delay.
func nextStep(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return StepMsg{} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg { return StepMsg{} })
}
