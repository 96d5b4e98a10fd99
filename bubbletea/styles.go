package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/probearm"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Bot    lipgloss.Style
	Arm    lipgloss.Style
	Probe  lipgloss.Style
	Empty  lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t probearm.Theme) Styles {
	return Styles{
		Bot:    lipgloss.NewStyle().Background(ansiColor(t.Bot)).Foreground(lipgloss.Color("15")).Bold(true),
		Arm:    lipgloss.NewStyle().Background(ansiColor(t.Arm)).Foreground(lipgloss.Color("0")).Bold(true),
		Probe:  lipgloss.NewStyle().Background(ansiColor(t.Probe)).Foreground(lipgloss.Color("0")).Bold(true),
		Empty:  lipgloss.NewStyle().Background(ansiColor(t.Empty)).Foreground(ansiColor(t.Muted)),
		Error:  lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
