package sat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	satisfiableExitCode   = 10
	unsatisfiableExitCode = 20
)

// Runs a solver executable and returns its standard output. Exit-code of 10 stands for satisfiable and exit-code
// 20 stands for unsatisfiable; any other failure is reported as an error
func execute(ctx context.Context, name, path string, args []string, stdin io.Reader) (stdOut string, satisfiable bool, err error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = stdin

	var stdOutBuffer bytes.Buffer
	cmd.Stdout = &stdOutBuffer
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", false, fmt.Errorf("%v execution interrupted: %w", name, ctxErr)
	} else if cmd.ProcessState == nil { // The process never started
		return "", false, fmt.Errorf("cannot run %v: %w", name, err)
	}

	exitCode := cmd.ProcessState.ExitCode()
	if err != nil && exitCode != satisfiableExitCode && exitCode != unsatisfiableExitCode {
		return "", false, fmt.Errorf("an error occurred during %v execution: %v : %v", name, err.Error(), stderr.String())
	}

	return stdOutBuffer.String(), exitCode == satisfiableExitCode, nil
}

// Writes the instance into a temporary DIMACS file and returns its name
func writeTempDIMACS(dir string, instance SAT) (string, error) {
	tmpFile, err := os.CreateTemp(dir, "dimacs-*.cnf")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	if err := instance.WriteDIMACS(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("failed to write DIMACS to temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}

	return tmpFile.Name(), nil
}

// ParseSolution parses the output of a solver following the SAT-competition format, where the "s" line states
// whether the instance is satisfiable and "v" lines list the model's literals terminated by 0. It returns nil for
// unsatisfiable instances
func ParseSolution(solverOutput string) (SATSolution, error) {
	lines := lo.Map(strings.Split(solverOutput, "\n"), func(line string, _ int) string { return strings.TrimSpace(line) })

	statusLine, ok := lo.Find(lines, func(line string) bool { return strings.HasPrefix(line, "s ") })
	if ok {
		switch strings.TrimSpace(statusLine[2:]) {
		case "SATISFIABLE":
		case "UNSATISFIABLE":
			return nil, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedOutput, statusLine)
		}
	}

	values := lo.FlatMap(
		lo.Filter(lines, func(line string, _ int) bool { return strings.HasPrefix(line, "v") }),
		func(line string, _ int) []string { return strings.Fields(line[1:]) },
	)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no model found", ErrUnexpectedOutput)
	}

	return parseLiterals(values)
}

// parseMinisatSolution parses the result file written by minisat (and glucose when given an output file): a status
// line ("SAT", "UNSAT" or "INDET") followed by the model's literals terminated by 0
func parseMinisatSolution(solverOutput string) (SATSolution, error) {
	lines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool { return strings.TrimSpace(line) != "" })
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrUnexpectedOutput)
	}

	switch strings.TrimSpace(lines[0]) {
	case "SAT":
	case "UNSAT":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedOutput, lines[0])
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: no model found", ErrUnexpectedOutput)
	}
	return parseLiterals(strings.Fields(lines[1]))
}

func parseLiterals(values []string) (SATSolution, error) {
	solution := make(SATSolution, 0, len(values))
	for _, valueStr := range values {
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid literal: %v", ErrUnexpectedOutput, err)
		}
		if value == 0 {
			break
		}
		solution = append(solution, value)
	}
	return solution, nil
}

// removeTemp deletes a temporary file, ignoring failures
func removeTemp(name string) {
	_ = os.Remove(name)
}
