package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/probearm"
	bt "github.com/fwojciec/probearm/bubbletea"
	"github.com/spf13/cobra"
)

func newPlayCmd(fv *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "play <commands>...",
		Short: "Run commands without the TUI and print the resulting grid",
		Example: `  probearm play dddssk dl
  probearm play --storage memory --probe 3,3 dddsskdl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, *fv, true)
			if err != nil {
				return err
			}
			defer a.Close()

			before := len(a.machine.History())
			if err := a.machine.Run(cmd.Context(), strings.Join(args, "")); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			state := a.machine.State()
			fmt.Fprintln(out, bt.RenderGrid(state, bt.NewStyles(probearm.DefaultTheme())))
			fmt.Fprintln(out, summary(state, len(a.machine.History())-before))
			return nil
		},
	}
}

// summary describes the final state in one line.
func summary(s probearm.State, recorded int) string {
	probe := "held"
	if at, ok := s.ProbeAt(); ok {
		probe = at.String()
	}
	return fmt.Sprintf("arm %s probe %s sessions recorded %d", s.Arm, probe, recorded)
}

// eventAttrs flattens evt into slog key-value pairs.
func eventAttrs(evt probearm.Event) []any {
	switch e := evt.(type) {
	case probearm.EventMoved:
		return []any{"type", "moved", "command", e.Command.String(), "from", e.From.String(), "to", e.To.String()}
	case probearm.EventGrabbed:
		return []any{"type", "grabbed", "at", e.At.String()}
	case probearm.EventDropped:
		return []any{"type", "dropped", "at", e.Session.ProbeMove.To.String(), "keys", e.Session.KeysString("")}
	case probearm.EventIgnored:
		return []any{"type", "ignored", "command", e.Command.String()}
	}
	return []any{"type", fmt.Sprintf("%T", evt)}
}
