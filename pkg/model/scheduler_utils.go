package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

func verify(schedule []Match, tournament Tournament) bool {
	shape := tournament.Shape()
	if shape.Validate() != nil {
		return false
	}

	occupiedSlots := make(map[[2]uint64]bool)
	playing := make(map[[2]uint64]bool)  // (participant, day)
	hosting := make(map[[2]uint64]bool)  // (participant, day)
	visiting := make(map[[2]uint64]bool) // (participant, day)

	for _, match := range schedule {
		slot := [2]uint64{match.Day, match.Block}
		localDay, visitDay := [2]uint64{match.Local, match.Day}, [2]uint64{match.Visit, match.Day}

		// Check that:
		// - Coordinates are within the shape and the participants are different
		// - No other match takes place on the same slot
		// - Neither participant has already played that day
		if match.Local >= shape.Participants ||
			match.Visit >= shape.Participants ||
			match.Local == match.Visit ||
			match.Day >= shape.Days ||
			match.Block >= shape.Blocks ||
			occupiedSlots[slot] ||
			playing[localDay] ||
			playing[visitDay] {
			return false
		}

		occupiedSlots[slot] = true
		playing[localDay] = true
		playing[visitDay] = true
		hosting[localDay] = true
		visiting[visitDay] = true
	}

	// Check no participant repeats its role on consecutive days
	for key := range hosting {
		if hosting[[2]uint64{key[0], key[1] + 1}] {
			return false
		}
	}
	for key := range visiting {
		if visiting[[2]uint64{key[0], key[1] + 1}] {
			return false
		}
	}

	return covers(schedule, shape)
}

// Checks whether every fixture is played exactly once, i.e. whether fixtures and scheduled matches admit a perfect
// matching where a fixture is related to the matches between its participants in its local-visit arrangement
func covers(schedule []Match, shape Shape) bool {
	fixtures := newConstraintState(shape).fixtures()
	if len(fixtures) != len(schedule) {
		return false
	}

	neighbors := func(fixtureAny any, matchAny any) (bool, error) {
		f := fixtureAny.(fixture)
		match := matchAny.(Match)

		return f.local == match.Local && f.visit == match.Visit, nil
	}

	fixturesAny, matchesAny := lo.Map(fixtures, func(f fixture, _ int) any { return f }), lo.Map(schedule, func(match Match, _ int) any { return match })

	graph, err := bipartitegraph.NewBipartiteGraph(fixturesAny, matchesAny, neighbors)
	if err != nil {
		return false
	}

	return len(graph.LargestMatching()) == len(fixtures)
}
