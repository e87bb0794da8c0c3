package model

import "context"

type Scheduler interface {
	// Returns the matches of a schedule satisfying every tournament constraint, or an empty schedule (with a nil
	// error) when no such schedule exists
	Build(
		ctx context.Context,
		tournament Tournament,
	) (schedule []Match, variables uint64, clauses uint64, err error)

	// Solve is Build over a model already built from the tournament's shape
	Solve(
		ctx context.Context,
		tournament Tournament,
		model Model,
	) (schedule []Match, err error)

	Verify(
		schedule []Match,
		tournament Tournament,
	) bool
}
