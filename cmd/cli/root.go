package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/limaJavier/tournament/internal/config"
	"github.com/limaJavier/tournament/internal/logger"
	"github.com/limaJavier/tournament/internal/metrics"
	"github.com/limaJavier/tournament/pkg/sat"
)

var (
	cfgPath        string
	solverName     string
	timeoutSeconds int
)

var rootCmd = &cobra.Command{
	Use:           "tournament",
	Short:         "Round-robin tournament scheduling through SAT-Solvers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (default: config.json next to the executable)")
	rootCmd.PersistentFlags().StringVarP(&solverName, "solver", "s", "", fmt.Sprintf("SAT-Solver to use, one of: %v", strings.Join(sat.ValidSolvers, ", ")))
	rootCmd.PersistentFlags().IntVarP(&timeoutSeconds, "timeout", "t", 0, "solver timeout in seconds, 0 for none")
}

// environment bundles what every command needs once flags and configuration are resolved
type environment struct {
	cfg      *config.Config
	log      logger.Logger
	recorder *metrics.Recorder
}

func setup(cmd *cobra.Command, component string) (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("solver") {
		cfg.Solver.Name = strings.ToLower(solverName)
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Solver.TimeoutSeconds = timeoutSeconds
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	return &environment{
		cfg:      cfg,
		log:      logger.New(component, cfg.Logging.Level),
		recorder: recorder,
	}, nil
}

// loadConfig reads the file given through --config, or the optional config.json placed next to the executable
func loadConfig() (*config.Config, error) {
	if cfgPath != "" {
		return config.Load(cfgPath, false)
	}

	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("cannot determine executable path: %w", err)
	}
	return config.Load(filepath.Join(filepath.Dir(execPath), "config.json"), true)
}

// solver returns the configured SAT-Solver, observed by the metrics recorder
func (env *environment) solver() (sat.SATSolver, error) {
	solver, err := sat.NewSolver(env.cfg.Solver.Name, env.cfg.Solver.SAT())
	if err != nil {
		return nil, err
	}
	return env.recorder.ObserveSolver(env.cfg.Solver.Name, solver), nil
}

// solveContext returns a context cancelled on interruption or once the solver timeout elapses
func (env *environment) solveContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	timeout := env.cfg.Solver.Timeout()
	if timeout == 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

func (env *environment) flushMetrics() {
	if env.cfg.Metrics.Textfile == "" {
		return
	}
	if err := env.recorder.WriteTextfile(env.cfg.Metrics.Textfile); err != nil {
		env.log.Warnf("cannot write metrics to %v: %v", env.cfg.Metrics.Textfile, err)
	}
}
