package sat

import (
	"context"
	"strings"
)

type kissatSolver struct {
	path string
}

func NewKissatSolver(path string) SATSolver {
	return &kissatSolver{path: path}
}

func (solver *kissatSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	// Feed dimacs into kissat's standard input
	output, satisfiable, err := execute(ctx, "kissat", solver.path, []string{"-q", "--relaxed"}, strings.NewReader(dimacs))
	if err != nil {
		return nil, err
	} else if !satisfiable {
		return nil, nil
	}

	return ParseSolution(output)
}
