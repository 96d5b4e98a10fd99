package bubbletea_test

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/probearm"
	bt "github.com/fwojciec/probearm/bubbletea"
	probejson "github.com/fwojciec/probearm/json"
	"github.com/fwojciec/probearm/memory"
	"github.com/stretchr/testify/require"
)

// newMachine returns a machine with the probe at probe, persisting to a
// fresh in-memory slot.
func newMachine(t *testing.T, probe probearm.Coordinate) *probearm.Machine {
	t.Helper()
	m := probearm.NewMachine(probearm.NewState(probe), probejson.NewHistoryStore(memory.NewStorage()))
	require.NoError(t, m.Load(context.Background()))
	return m
}

// initModel creates a model around machine and sends a WindowSizeMsg to
// initialize the viewport.
func initModel(t *testing.T, machine *probearm.Machine) bt.Model {
	t.Helper()
	m := bt.New(machine, probearm.DefaultTheme(), bt.Config{})
	return updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// submit types text into the input and presses Enter.
func submit(t *testing.T, m bt.Model, text string) bt.Model {
	t.Helper()
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updateModel(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// drain delivers StepMsg until the model stops running.
func drain(t *testing.T, m bt.Model) bt.Model {
	t.Helper()
	for i := 0; m.Running(); i++ {
		require.Less(t, i, 1000, "queue did not drain")
		m = updateModel(t, m, bt.StepMsg{})
	}
	return m
}
