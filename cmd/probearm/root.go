package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/probearm"
	bt "github.com/fwojciec/probearm/bubbletea"
	"github.com/spf13/cobra"
)

// flagValues receives the persistent flags. Only flags the user actually set
// override the config file.
type flagValues struct {
	configPath  string
	storage     string
	dataDir     string
	redisAddr   string
	sqlitePath  string
	probe       string
	seed        int64
	stepDelay   time.Duration
	logLevel    string
	logFile     string
	metricsAddr string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	root := &cobra.Command{
		Use:           "probearm",
		Short:         "Drive a robotic arm that moves a probe around a grid",
		Long:          `Move the arm with w/a/s/d, grab the probe with k and drop it with l. Every grab-to-drop session is recorded and persisted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, fv, false)
			if err != nil {
				return err
			}
			defer a.Close()

			model := bt.New(a.machine, probearm.DefaultTheme(), bt.Config{
				StepDelay:   a.cfg.StepDelay,
				StorageName: a.label,
			})
			if err := bt.Run(cmd.Context(), model); err != nil {
				return fmt.Errorf("TUI: %w", err)
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&fv.configPath, "config", defaultConfigPath, "Path to YAML config file")
	pf.StringVar(&fv.storage, "storage", defaultStorage, "History storage: fs, memory, redis, sqlite")
	pf.StringVar(&fv.dataDir, "data-dir", defaultDataDir, "Directory for fs storage")
	pf.StringVar(&fv.redisAddr, "redis-addr", defaultRedisAddr, "Redis address for redis storage")
	pf.StringVar(&fv.sqlitePath, "sqlite-path", defaultSQLitePath, "Database file for sqlite storage")
	pf.StringVar(&fv.probe, "probe", "", "Initial probe position as x,y (random if omitted)")
	pf.Int64Var(&fv.seed, "seed", 0, "Seed for the random probe position (0 picks a fresh seed)")
	pf.DurationVar(&fv.stepDelay, "step-delay", bt.DefaultStepDelay, "Pause between queued commands in the TUI")
	pf.StringVar(&fv.logLevel, "log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	pf.StringVar(&fv.logFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&fv.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")

	root.AddCommand(newPlayCmd(&fv), newHistoryCmd(&fv))
	return root
}
