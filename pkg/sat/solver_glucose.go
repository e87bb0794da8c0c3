package sat

import "context"

type glucoseSolver struct {
	path    string
	workDir string
}

func NewGlucoseSolver(path, workDir string) SATSolver {
	return &glucoseSolver{path: path, workDir: workDir}
}

func (solver *glucoseSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	inputFile, err := writeTempDIMACS(solver.workDir, instance)
	if err != nil {
		return nil, err
	}
	defer removeTemp(inputFile)

	// "-model" makes glucose print the "s" and "v" lines on its standard output
	output, satisfiable, err := execute(ctx, "glucose", solver.path, []string{"-model", "-verb=0", inputFile}, nil)
	if err != nil {
		return nil, err
	} else if !satisfiable {
		return nil, nil
	}

	return ParseSolution(output)
}
