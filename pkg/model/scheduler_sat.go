package model

import (
	"context"
	"fmt"

	"github.com/limaJavier/tournament/pkg/sat"
	"github.com/samber/lo"
)

type satScheduler struct {
	solver sat.SATSolver
}

func NewSatScheduler(solver sat.SATSolver) Scheduler {
	return &satScheduler{
		solver: solver,
	}
}

func (scheduler *satScheduler) Build(ctx context.Context, tournament Tournament) ([]Match, uint64, uint64, error) {
	//** Build SAT instance
	model, err := BuildModel(tournament.Shape())
	if err != nil {
		return nil, 0, 0, err
	}

	schedule, err := scheduler.Solve(ctx, tournament, model)
	return schedule, model.MaxVariable, model.ClauseCount, err
}

func (scheduler *satScheduler) Solve(ctx context.Context, tournament Tournament, model Model) ([]Match, error) {
	if shape := tournament.Shape(); model.Indexer.Shape() != shape {
		return nil, fmt.Errorf("%w: model built for %+v, tournament is %+v", ErrInvalidShape, model.Indexer.Shape(), shape)
	}

	//** Solve SAT instance
	solution, err := scheduler.solver.Solve(ctx, model.SAT(tournament.Name))
	if err != nil {
		return nil, err
	} else if solution == nil { // Return an empty schedule if the SAT instance is not satisfiable
		return nil, nil
	}

	// Acknowledge only positive variables addressing an actual match, solvers are free to set the variables the
	// header declares but no clause mentions
	literals := lo.Filter(sat.Positives(solution), func(literal int64, _ int) bool {
		return model.Indexer.Contains(uint64(literal))
	})

	return DecodeMatches(model.Indexer, literals), nil
}

func (scheduler *satScheduler) Verify(schedule []Match, tournament Tournament) bool {
	return verify(schedule, tournament)
}
