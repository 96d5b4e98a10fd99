// Command probearm drives a robotic arm that carries a probe around an 8x8
// grid and records every grab-to-drop session.
//
// Usage:
//
//	probearm [flags]                  interactive TUI
//	probearm play [flags] <commands>  run commands headless, print the grid
//	probearm history [--json]         print recorded sessions
//
// Commands are w/a/s/d to move the arm, k to grab the probe and l to drop it.
// Flags override values from the YAML config file (default
// .probearm/config.yaml).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "probearm: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
