package model

import (
	"fmt"
	"slices"
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var constraintShapes = []Shape{
	{Days: 1, Blocks: 1, Participants: 2},
	{Days: 2, Blocks: 2, Participants: 4},
	{Days: 3, Blocks: 2, Participants: 4},
	{Days: 4, Blocks: 3, Participants: 3},
	{Days: 2, Blocks: 4, Participants: 5},
}

func familyClauses(t *testing.T, shape Shape, name string) [][]int64 {
	t.Helper()
	state := newConstraintState(shape)
	for _, family := range constraintFamilies {
		if family.name == name {
			return family.generate(state)
		}
	}
	require.FailNow(t, "unknown family", name)
	return nil
}

// Returns the clauses falsified when exactly the given matches are true
func violated(clauses [][]int64, indexer Indexer, matches []Match) [][]int64 {
	assigned := make(map[int64]bool)
	for _, match := range matches {
		assigned[indexer.Literal(match.Local, match.Visit, match.Day, match.Block)] = true
	}

	result := make([][]int64, 0)
	for _, clause := range clauses {
		satisfied := slices.ContainsFunc(clause, func(literal int64) bool {
			if literal > 0 {
				return assigned[literal]
			}
			return !assigned[-literal]
		})
		if !satisfied {
			result = append(result, clause)
		}
	}
	return result
}

func TestConstraintFamilySizes(t *testing.T) {
	for _, shape := range constraintShapes {
		d, b, p := shape.Days, shape.Blocks, shape.Participants
		fixtures := p * (p - 1)
		sharing := fixtures - (p-2)*(p-3)

		expected := map[string]uint64{
			"coverage":         fixtures,
			"non-repetition":   fixtures * b * b * d * (d - 1) / 2,
			"one-per-day":      fixtures * sharing * d * b * (b - 1) / 2,
			"role-repetition":  fixtures * (d - 1) * b * b * 2 * (p - 2),
			"slot-exclusivity": d * b * fixtures * (fixtures - 1) / 2,
		}

		for name, size := range expected {
			assert.Len(t, familyClauses(t, shape, name), int(size), "%v of %+v", name, shape)
		}
	}
}

func TestCoverageConstraints(t *testing.T) {
	g := gomega.NewWithT(t)
	shape := Shape{Days: 3, Blocks: 2, Participants: 3}
	indexer := NewIndexer(shape)

	clauses := familyClauses(t, shape, "coverage")

	g.Expect(clauses).To(gomega.HaveLen(6))
	for _, clause := range clauses {
		g.Expect(clause).To(gomega.HaveLen(int(shape.Slots())))
		g.Expect(clause).To(gomega.HaveEach(gomega.BeNumerically(">", 0)))

		// Every literal of the clause belongs to the same fixture
		local, visit, _, _ := indexer.LiteralAttributes(clause[0])
		slots := make(map[[2]uint64]bool)
		for _, literal := range clause {
			l, v, d, b := indexer.LiteralAttributes(literal)
			g.Expect([]uint64{l, v}).To(gomega.Equal([]uint64{local, visit}))
			slots[[2]uint64{d, b}] = true
		}
		g.Expect(slots).To(gomega.HaveLen(int(shape.Slots())))
	}
}

func TestConstraintsWithTwoParticipants(t *testing.T) {
	g := gomega.NewWithT(t)
	shape := Shape{Days: 1, Blocks: 1, Participants: 2}
	indexer := NewIndexer(shape)

	g.Expect(familyClauses(t, shape, "coverage")).To(gomega.Equal([][]int64{
		{indexer.Literal(0, 1, 0, 0)},
		{indexer.Literal(1, 0, 0, 0)},
	}))
	g.Expect(familyClauses(t, shape, "slot-exclusivity")).To(gomega.Equal([][]int64{
		{-indexer.Literal(0, 1, 0, 0), -indexer.Literal(1, 0, 0, 0)},
	}))
	g.Expect(familyClauses(t, shape, "non-repetition")).To(gomega.BeEmpty())
	g.Expect(familyClauses(t, shape, "one-per-day")).To(gomega.BeEmpty())
	g.Expect(familyClauses(t, shape, "role-repetition")).To(gomega.BeEmpty())
}

func TestSlotExclusivityConstraints(t *testing.T) {
	shape := Shape{Days: 2, Blocks: 2, Participants: 3}
	indexer := NewIndexer(shape)

	for _, clause := range familyClauses(t, shape, "slot-exclusivity") {
		require.Len(t, clause, 2)
		l1, v1, d1, b1 := indexer.LiteralAttributes(clause[0])
		l2, v2, d2, b2 := indexer.LiteralAttributes(clause[1])

		assert.Negative(t, clause[0])
		assert.Negative(t, clause[1])
		assert.Equal(t, []uint64{d1, b1}, []uint64{d2, b2}, "both literals share the slot")
		assert.Less(t, l1*shape.Participants+v1, l2*shape.Participants+v2, "fixtures follow their total order")
	}
}

func TestConstraintsHaveNoDuplicates(t *testing.T) {
	for _, shape := range constraintShapes {
		seen := make(map[string]string)
		for _, family := range constraintFamilies {
			for _, clause := range family.generate(newConstraintState(shape)) {
				sorted := slices.Sorted(slices.Values(clause))
				key := fmt.Sprint(sorted)
				if previous, ok := seen[key]; ok {
					t.Errorf("clause %v of %v repeats a clause of %v in %+v", clause, family.name, previous, shape)
				}
				seen[key] = family.name
			}
		}
	}
}

func TestConstraintsReferenceValidCoordinates(t *testing.T) {
	for _, shape := range constraintShapes {
		indexer := NewIndexer(shape)
		for _, family := range constraintFamilies {
			for _, clause := range family.generate(newConstraintState(shape)) {
				for _, literal := range clause {
					if literal < 0 {
						literal = -literal
					}
					assert.True(t, indexer.Contains(uint64(literal)), "%v references %v in %+v", family.name, literal, shape)
				}
			}
		}
	}
}

func TestConstraintsForbidViolations(t *testing.T) {
	shape := Shape{Days: 3, Blocks: 2, Participants: 3}
	indexer := NewIndexer(shape)

	testCases := []struct {
		name    string
		family  string
		matches []Match
	}{
		{
			name:    "fixture repeated on a later day",
			family:  "non-repetition",
			matches: []Match{{0, 1, 0, 0}, {0, 1, 2, 1}},
		},
		{
			name:    "fixture repeated on the same day",
			family:  "one-per-day",
			matches: []Match{{0, 1, 1, 0}, {0, 1, 1, 1}},
		},
		{
			name:    "participant playing twice a day",
			family:  "one-per-day",
			matches: []Match{{0, 1, 0, 0}, {2, 0, 0, 1}},
		},
		{
			name:    "host on consecutive days",
			family:  "role-repetition",
			matches: []Match{{0, 1, 0, 1}, {0, 2, 1, 0}},
		},
		{
			name:    "guest on consecutive days",
			family:  "role-repetition",
			matches: []Match{{0, 1, 1, 0}, {2, 1, 2, 1}},
		},
		{
			name:    "two matches on a slot",
			family:  "slot-exclusivity",
			matches: []Match{{0, 1, 2, 1}, {1, 2, 2, 1}},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			clauses := familyClauses(t, shape, testCase.family)
			assert.NotEmpty(t, violated(clauses, indexer, testCase.matches))
		})
	}
}

func TestConstraintsAcceptValidSchedule(t *testing.T) {
	shape := Shape{Days: 6, Blocks: 2, Participants: 3}
	model, err := BuildModel(shape)
	require.NoError(t, err)

	assert.Empty(t, violated(model.Clauses, model.Indexer, validSchedule))
}
