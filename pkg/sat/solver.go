package sat

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownSolver    = errors.New("unknown solver")
	ErrUnexpectedOutput = errors.New("unexpected solver output")
)

type SATSolver interface {
	Solve(ctx context.Context, instance SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// Config holds the executables of the external solvers and the directory for their temporary files
type Config struct {
	KissatPath        string
	CadicalPath       string
	CryptominisatPath string
	MinisatPath       string
	GlucosePath       string
	WorkDir           string // Empty stands for the default temporary directory
}

func DefaultConfig() Config {
	return Config{
		KissatPath:        "kissat",
		CadicalPath:       "cadical",
		CryptominisatPath: "cryptominisat5",
		MinisatPath:       "minisat",
		GlucosePath:       "glucose",
	}
}

var ValidSolvers = []string{"gini", "kissat", "cadical", "cryptominisat", "minisat", "glucose"}

func NewSolver(name string, config Config) (SATSolver, error) {
	switch name {
	case "gini":
		return NewGiniSolver(), nil
	case "kissat":
		return NewKissatSolver(config.KissatPath), nil
	case "cadical":
		return NewCadicalSolver(config.CadicalPath), nil
	case "cryptominisat":
		return NewCryptominisatSolver(config.CryptominisatPath), nil
	case "minisat":
		return NewMinisatSolver(config.MinisatPath, config.WorkDir), nil
	case "glucose":
		return NewGlucoseSolver(config.GlucosePath, config.WorkDir), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}
