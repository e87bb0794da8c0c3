package sat

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const pollInterval = 10 * time.Millisecond

// giniSolver solves instances in-process, hence it needs no executable
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(ctx context.Context, instance SAT) (SATSolution, error) {
	g := gini.NewVc(int(instance.Variables), len(instance.Clauses))
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			g.Add(z.Dimacs2Lit(int(literal)))
		}
		g.Add(z.LitNull)
	}

	handle := g.GoSolve()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var result int
	for {
		var done bool
		if result, done = handle.Test(); done {
			break
		}
		select {
		case <-ctx.Done():
			handle.Stop()
			return nil, fmt.Errorf("gini execution interrupted: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	switch result {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: gini could not determine satisfiability", ErrUnexpectedOutput)
	}

	// Variables above the solver's maximum never appeared in a clause, they're reported false
	solution := make(SATSolution, 0, instance.Variables)
	maxVar := uint64(g.MaxVar())
	for variable := uint64(1); variable <= instance.Variables; variable++ {
		if variable <= maxVar && g.Value(z.Var(variable).Pos()) {
			solution = append(solution, int64(variable))
		} else {
			solution = append(solution, -int64(variable))
		}
	}
	return solution, nil
}
