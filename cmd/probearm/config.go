package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/probearm"
	bt "github.com/fwojciec/probearm/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = ".probearm/config.yaml"
	defaultStorage    = "fs"
	defaultDataDir    = ".probearm"
	defaultRedisAddr  = "localhost:6379"
	defaultSQLitePath = ".probearm/probearm.db"
	defaultLogLevel   = "info"
)

// Config is the resolved runtime configuration.
type Config struct {
	Storage       string        `yaml:"storage"`
	DataDir       string        `yaml:"data_dir"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	SQLitePath    string        `yaml:"sqlite_path"`
	Probe         string        `yaml:"probe"`
	Seed          int64         `yaml:"seed"`
	StepDelay     time.Duration `yaml:"step_delay"`
	LogLevel      string        `yaml:"log_level"`
	LogFile       string        `yaml:"log_file"`
	MetricsAddr   string        `yaml:"metrics_addr"`
}

// DefaultConfig returns the configuration used when no file or flag says
// otherwise.
func DefaultConfig() Config {
	return Config{
		Storage:    defaultStorage,
		DataDir:    defaultDataDir,
		RedisAddr:  defaultRedisAddr,
		SQLitePath: defaultSQLitePath,
		StepDelay:  bt.DefaultStepDelay,
		LogLevel:   defaultLogLevel,
	}
}

// loadConfig reads path over the defaults. A missing file is tolerated only
// for the default path.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && path == defaultConfigPath:
		return cfg, nil
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig loads the config file named by the flags and applies every
// flag the user explicitly set.
func resolveConfig(cmd *cobra.Command, fv flagValues) (Config, error) {
	cfg, err := loadConfig(fv.configPath)
	if err != nil {
		return Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") {
		cfg.Storage = fv.storage
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = fv.dataDir
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = fv.redisAddr
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = fv.sqlitePath
	}
	if flags.Changed("probe") {
		cfg.Probe = fv.probe
	}
	if flags.Changed("seed") {
		cfg.Seed = fv.seed
	}
	if flags.Changed("step-delay") {
		cfg.StepDelay = fv.stepDelay
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = fv.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = fv.logFile
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = fv.metricsAddr
	}
	return cfg, nil
}

// parseCoordinate parses "x,y".
func parseCoordinate(s string) (probearm.Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return probearm.Coordinate{}, fmt.Errorf("probe %q: want x,y: %w", s, probearm.ErrValidation)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return probearm.Coordinate{}, fmt.Errorf("probe %q: bad x: %w", s, probearm.ErrValidation)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return probearm.Coordinate{}, fmt.Errorf("probe %q: bad y: %w", s, probearm.ErrValidation)
	}
	c := probearm.Coordinate{X: x, Y: y}
	if err := c.Validate(); err != nil {
		return probearm.Coordinate{}, err
	}
	return c, nil
}

// initialProbe returns the configured probe position, or a random cell.
// A non-zero seed makes the random cell reproducible.
func initialProbe(cfg Config) (probearm.Coordinate, error) {
	if cfg.Probe != "" {
		return parseCoordinate(cfg.Probe)
	}
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))
	return probearm.Coordinate{X: r.IntN(probearm.GridSize), Y: r.IntN(probearm.GridSize)}, nil
}
