package sat

import (
	"context"
	"strings"
)

type cryptominisatSolver struct {
	path string
}

func NewCryptominisatSolver(path string) SATSolver {
	return &cryptominisatSolver{path: path}
}

func (solver *cryptominisatSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	dimacs := instance.ToDIMACS()

	output, satisfiable, err := execute(ctx, "cryptominisat", solver.path, []string{"--verb", "0"}, strings.NewReader(dimacs))
	if err != nil {
		return nil, err
	} else if !satisfiable {
		return nil, nil
	}

	return ParseSolution(output)
}
