package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/limaJavier/tournament/pkg/sat"
)

const EnvPrefix = "TOURNAMENT_"

type Config struct {
	Solver  SolverConfig  `json:"solver"`
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
}

// SolverConfig selects the SAT-Solver and tells where the external ones live.
type SolverConfig struct {
	// Name is one of sat.ValidSolvers.
	Name string `json:"name"`
	// TimeoutSeconds bounds a single solver run; 0 disables the timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
	// WorkDir holds the temporary DIMACS files of solvers reading from files.
	WorkDir string `json:"workdir"`
	Paths   struct {
		Kissat        string `json:"kissat"`
		Cadical       string `json:"cadical"`
		Cryptominisat string `json:"cryptominisat"`
		Minisat       string `json:"minisat"`
		Glucose       string `json:"glucose"`
	} `json:"paths"`
}

type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `json:"level"`
}

type MetricsConfig struct {
	// Textfile is where encoding and solving metrics are written in Prometheus text format; empty disables them.
	Textfile string `json:"textfile"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// Load reads the configuration file at path (JSON or YAML) and applies TOURNAMENT_ environment overrides, where a
// double underscore separates nested keys (TOURNAMENT_SOLVER__NAME=kissat). A missing file is not an error when
// optional is set; the defaults and environment are used instead.
func Load(path string, optional bool) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			if !optional || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	}
	return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	defaults := sat.DefaultConfig()
	if c.Solver.Name == "" {
		c.Solver.Name = "gini"
	}
	c.Solver.Name = strings.ToLower(c.Solver.Name)
	if c.Solver.Paths.Kissat == "" {
		c.Solver.Paths.Kissat = defaults.KissatPath
	}
	if c.Solver.Paths.Cadical == "" {
		c.Solver.Paths.Cadical = defaults.CadicalPath
	}
	if c.Solver.Paths.Cryptominisat == "" {
		c.Solver.Paths.Cryptominisat = defaults.CryptominisatPath
	}
	if c.Solver.Paths.Minisat == "" {
		c.Solver.Paths.Minisat = defaults.MinisatPath
	}
	if c.Solver.Paths.Glucose == "" {
		c.Solver.Paths.Glucose = defaults.GlucosePath
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if !slices.Contains(sat.ValidSolvers, c.Solver.Name) {
		return fmt.Errorf("%w: %q", sat.ErrUnknownSolver, c.Solver.Name)
	}
	if c.Solver.TimeoutSeconds < 0 {
		return fmt.Errorf("solver timeout must not be negative: %d", c.Solver.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the solver timeout, 0 meaning none.
func (c SolverConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SAT returns the settings of the solver adapters.
func (c SolverConfig) SAT() sat.Config {
	return sat.Config{
		KissatPath:        c.Paths.Kissat,
		CadicalPath:       c.Paths.Cadical,
		CryptominisatPath: c.Paths.Cryptominisat,
		MinisatPath:       c.Paths.Minisat,
		GlucosePath:       c.Paths.Glucose,
		WorkDir:           c.WorkDir,
	}
}
