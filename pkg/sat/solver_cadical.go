package sat

import (
	"context"
	"strings"
)

type cadicalSolver struct {
	path string
}

func NewCadicalSolver(path string) SATSolver {
	return &cadicalSolver{path: path}
}

func (solver *cadicalSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS()

	// Feed dimacs into cadical's standard input
	output, satisfiable, err := execute(ctx, "cadical", solver.path, []string{"-q"}, strings.NewReader(dimacs))
	if err != nil {
		return nil, err
	} else if !satisfiable {
		return nil, nil
	}

	return ParseSolution(output)
}
