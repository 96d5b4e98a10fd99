package main

import (
	"fmt"

	"github.com/fwojciec/probearm"
	bt "github.com/fwojciec/probearm/bubbletea"
	probejson "github.com/fwojciec/probearm/json"
	"github.com/spf13/cobra"
)

func newHistoryCmd(fv *flagValues) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recorded sessions, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, *fv, true)
			if err != nil {
				return err
			}
			defer a.Close()

			sessions := a.machine.History()
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := probejson.MarshalHistory(sessions)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintln(out, bt.RenderHistory(sessions, 0, bt.NewStyles(probearm.DefaultTheme())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sessions in the stored JSON format")
	return cmd
}
