package metrics

import (
	"context"
	"time"

	"github.com/limaJavier/tournament/pkg/sat"
)

type observedSolver struct {
	name     string
	solver   sat.SATSolver
	recorder *Recorder
}

// ObserveSolver wraps solver so that every run is recorded under the given solver name.
func (r *Recorder) ObserveSolver(name string, solver sat.SATSolver) sat.SATSolver {
	return &observedSolver{name: name, solver: solver, recorder: r}
}

func (s *observedSolver) Solve(ctx context.Context, instance sat.SAT) (sat.SATSolution, error) {
	start := time.Now()
	solution, err := s.solver.Solve(ctx, instance)
	s.recorder.RecordSolve(s.name, time.Since(start), solution != nil, err)
	return solution, err
}
