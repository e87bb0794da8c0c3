package sat

import (
	"context"
	"fmt"
	"os"
)

type minisatSolver struct {
	path    string
	workDir string
}

func NewMinisatSolver(path, workDir string) SATSolver {
	return &minisatSolver{path: path, workDir: workDir}
}

func (solver *minisatSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	// Minisat reads the instance from a file and writes its result into another one
	inputFile, err := writeTempDIMACS(solver.workDir, instance)
	if err != nil {
		return nil, err
	}
	defer removeTemp(inputFile)

	outputTempFile, err := os.CreateTemp(solver.workDir, "minisat_output-*.out")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	outputTempFile.Close()
	defer removeTemp(outputTempFile.Name())

	_, satisfiable, err := execute(ctx, "minisat", solver.path, []string{"-verb=0", inputFile, outputTempFile.Name()}, nil)
	if err != nil {
		return nil, err
	} else if !satisfiable {
		return nil, nil
	}

	output, err := os.ReadFile(outputTempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}
	return parseMinisatSolution(string(output))
}
