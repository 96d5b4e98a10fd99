package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/probearm"
	"github.com/fwojciec/probearm/fs"
	probejson "github.com/fwojciec/probearm/json"
	"github.com/fwojciec/probearm/logging"
	"github.com/fwojciec/probearm/memory"
	"github.com/fwojciec/probearm/prometheus"
	"github.com/fwojciec/probearm/redis"
	"github.com/fwojciec/probearm/sqlite"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// app is the wired object graph shared by every subcommand.
type app struct {
	cfg     Config
	logger  *slog.Logger
	store   *probejson.HistoryStore
	machine *probearm.Machine
	label   string
	closers []func() error
}

// setup resolves configuration, opens storage, loads history and builds the
// machine. Headless commands also log to stderr and log every event; the TUI
// logs only to the log file so nothing is written over the screen.
func setup(cmd *cobra.Command, fv flagValues, headless bool) (_ *app, err error) {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd, fv)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	var logSink io.Writer
	if headless {
		logSink = cmd.ErrOrStderr()
	}
	if err := a.openLogger(logSink); err != nil {
		return nil, err
	}

	storage, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	a.store = probejson.NewHistoryStore(storage, probejson.WithLogger(a.logger))

	probe, err := initialProbe(cfg)
	if err != nil {
		return nil, err
	}

	opts := []probearm.Option{probearm.WithLogger(a.logger)}
	if headless {
		opts = append(opts, probearm.WithEventHandler(func(evt probearm.Event) {
			a.logger.Info("event", eventAttrs(evt)...)
		}))
	}
	if cfg.MetricsAddr != "" {
		metrics, err := a.serveMetrics()
		if err != nil {
			return nil, err
		}
		opts = append(opts, probearm.WithEventHandler(metrics.Observe))
	}

	a.machine = probearm.NewMachine(probearm.NewState(probe), a.store, opts...)
	if err := a.machine.Load(ctx); err != nil {
		return nil, err
	}
	a.logger.Debug("machine ready", "storage", a.label, "probe", probe.String(), "sessions", len(a.machine.History()))
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.logger != nil {
			a.logger.Warn("close", "error", err)
		}
	}
	a.closers = nil
}

func (a *app) openLogger(sink io.Writer) error {
	level, err := logging.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	var writers []io.Writer
	if sink != nil {
		writers = append(writers, sink)
	}
	if a.cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(a.cfg.LogFile), 0o700); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f.Close)
		writers = append(writers, f)
	}
	a.logger = logging.New(level, writers...)
	return nil
}

func (a *app) openStorage(ctx context.Context) (probearm.Storage, error) {
	switch a.cfg.Storage {
	case "fs":
		a.label = "fs:" + a.cfg.DataDir
		return fs.NewStorage(a.cfg.DataDir), nil

	case "memory":
		a.label = "memory"
		return memory.NewStorage(), nil

	case "redis":
		s := redis.New(a.cfg.RedisAddr, a.cfg.RedisPassword, a.cfg.RedisDB)
		a.closers = append(a.closers, s.Close)
		if err := s.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis %s: %w", a.cfg.RedisAddr, err)
		}
		a.label = "redis:" + a.cfg.RedisAddr
		return s, nil

	case "sqlite":
		s, err := sqlite.Open(a.cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s.Close)
		a.label = "sqlite:" + s.Path()
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage %q (want fs, memory, redis or sqlite): %w", a.cfg.Storage, probearm.ErrValidation)
}

// serveMetrics registers the collectors on a fresh registry and serves them
// until Close. The listener is bound here so a bad address fails startup.
func (a *app) serveMetrics() (*prometheus.Metrics, error) {
	reg := promclient.NewRegistry()
	metrics, err := prometheus.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", a.cfg.MetricsAddr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	srv := &http.Server{
		Handler:           prometheus.NewHandler(reg),
		ReadHeaderTimeout: shutdownTimeout,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", "error", err)
		}
	}()
	a.logger.Info("serving metrics", "addr", ln.Addr().String())

	a.closers = append(a.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	})
	return metrics, nil
}
