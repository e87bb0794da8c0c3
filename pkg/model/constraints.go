package model

type constraintState struct {
	indexer Indexer

	days,
	blocks,
	participants uint64
}

func newConstraintState(shape Shape) constraintState {
	return constraintState{
		indexer:      NewIndexer(shape),
		days:         shape.Days,
		blocks:       shape.Blocks,
		participants: shape.Participants,
	}
}

// fixture is an ordered pair of participants where local hosts visit
type fixture struct {
	local, visit uint64
}

func (f fixture) shares(other fixture) bool {
	return f.local == other.local || f.local == other.visit || f.visit == other.local || f.visit == other.visit
}

// Returns every fixture following the total order local*participants + visit
func (state constraintState) fixtures() []fixture {
	fixtures := make([]fixture, 0, state.participants*(state.participants-1))
	for local := range state.participants {
		for visit := range state.participants {
			if local != visit {
				fixtures = append(fixtures, fixture{local, visit})
			}
		}
	}
	return fixtures
}

func (state constraintState) literal(f fixture, day, block uint64) int64 {
	return state.indexer.Literal(f.local, f.visit, day, block)
}

type constraintFamily struct {
	name     string
	generate func(state constraintState) [][]int64
}

// Families are independent from each other, this order only fixes the layout of the written model
var constraintFamilies = []constraintFamily{
	{"coverage", coverageConstraints},
	{"non-repetition", nonRepetitionConstraints},
	{"one-per-day", onePerDayConstraints},
	{"role-repetition", roleRepetitionConstraints},
	{"slot-exclusivity", slotExclusivityConstraints},
}

// Every fixture is played at least once: one clause per fixture holding all of its slots
func coverageConstraints(state constraintState) [][]int64 {
	fixtures := state.fixtures()
	clauses := make([][]int64, 0, len(fixtures))

	for _, f := range fixtures {
		clause := make([]int64, 0, state.days*state.blocks)
		for day := range state.days {
			for block := range state.blocks {
				clause = append(clause, state.literal(f, day, block))
			}
		}
		clauses = append(clauses, clause)
	}

	return clauses
}

// A fixture is not played on two different days. The second slot is always on a later day, hence
// each pair of slots is visited once; repetitions within the same day are left to onePerDayConstraints
func nonRepetitionConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for _, f := range state.fixtures() {
		for day := range state.days {
			for block := range state.blocks {
				literal := -state.literal(f, day, block)
				for day2 := day + 1; day2 < state.days; day2++ {
					for block2 := range state.blocks {
						clauses = append(clauses, []int64{literal, -state.literal(f, day2, block2)})
					}
				}
			}
		}
	}

	return clauses
}

// A participant plays at most once per day. Two fixtures sharing a participant (the fixture itself
// and its mirror included) cannot be placed on different blocks of the same day. The pair is emitted
// from the member on the earlier block only; fixtures on the same block are left to slotExclusivityConstraints
func onePerDayConstraints(state constraintState) [][]int64 {
	fixtures := state.fixtures()
	clauses := make([][]int64, 0)

	// Fixtures sharing at least one participant with fixtures[i]
	sharing := make([][]fixture, len(fixtures))
	for i, f := range fixtures {
		for _, other := range fixtures {
			if f.shares(other) {
				sharing[i] = append(sharing[i], other)
			}
		}
	}

	for i, f := range fixtures {
		for day := range state.days {
			for block := range state.blocks {
				literal := -state.literal(f, day, block)
				for block2 := block + 1; block2 < state.blocks; block2++ {
					for _, other := range sharing[i] {
						clauses = append(clauses, []int64{literal, -state.literal(other, day, block2)})
					}
				}
			}
		}
	}

	return clauses
}

// A participant cannot play two consecutive days in the same role: if local hosts on day d it does not host
// any other opponent on day d+1, and if visit is a guest on day d it is not a guest of any other host on day d+1.
// The clause always pairs a coordinate of day d with one of day d+1, hence no pair is emitted twice. Repeating
// the very same fixture on day d+1 is left to nonRepetitionConstraints
func roleRepetitionConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)

	for _, f := range state.fixtures() {
		for day := uint64(0); day+1 < state.days; day++ {
			for block := range state.blocks {
				literal := -state.literal(f, day, block)
				for block2 := range state.blocks {
					// Local hosts again
					for visit2 := range state.participants {
						if visit2 != f.local && visit2 != f.visit {
							clauses = append(clauses, []int64{literal, -state.literal(fixture{f.local, visit2}, day+1, block2)})
						}
					}
					// Visit is a guest again
					for local2 := range state.participants {
						if local2 != f.local && local2 != f.visit {
							clauses = append(clauses, []int64{literal, -state.literal(fixture{local2, f.visit}, day+1, block2)})
						}
					}
				}
			}
		}
	}

	return clauses
}

// At most one match takes place on each slot. Each unordered pair of distinct fixtures is visited once, the second
// fixture always coming after the first one in the fixtures' total order
func slotExclusivityConstraints(state constraintState) [][]int64 {
	fixtures := state.fixtures()
	clauses := make([][]int64, 0, state.days*state.blocks*uint64(len(fixtures)*(len(fixtures)-1)/2))

	for day := range state.days {
		for block := range state.blocks {
			for i := range len(fixtures) {
				literal := -state.literal(fixtures[i], day, block)
				for j := i + 1; j < len(fixtures); j++ {
					clauses = append(clauses, []int64{literal, -state.literal(fixtures[j], day, block)})
				}
			}
		}
	}

	return clauses
}
