package model

import (
	"fmt"

	"github.com/limaJavier/tournament/pkg/sat"
)

// FamilySize reports how many clauses a constraint family contributed to a model
type FamilySize struct {
	Name    string
	Clauses uint64
}

// Model is the CNF encoding of a tournament shape
type Model struct {
	Indexer     Indexer
	Clauses     [][]int64
	MaxVariable uint64
	ClauseCount uint64
	Families    []FamilySize
}

// BuildModel encodes the shape into clauses. Invalid shapes are rejected before any clause is generated
func BuildModel(shape Shape) (Model, error) {
	if err := shape.Validate(); err != nil {
		return Model{}, err
	}

	state := newConstraintState(shape)

	model := Model{
		Indexer:  state.indexer,
		Clauses:  [][]int64{},
		Families: make([]FamilySize, 0, len(constraintFamilies)),
	}

	for _, family := range constraintFamilies {
		clauses := family.generate(state)
		model.Clauses = append(model.Clauses, clauses...)
		model.Families = append(model.Families, FamilySize{Name: family.name, Clauses: uint64(len(clauses))})
	}

	// The header bound must never be smaller than a written literal, whatever the shape
	model.MaxVariable = max(state.indexer.MaxIndex(), maxVariable(model.Clauses))
	model.ClauseCount = uint64(len(model.Clauses))

	return model, nil
}

// SAT returns the model as a SAT instance whose comment line is the given name
func (model Model) SAT(name string) sat.SAT {
	return sat.SAT{
		Comment:   name,
		Variables: model.MaxVariable,
		Clauses:   model.Clauses,
	}
}

func (model Model) String() string {
	return fmt.Sprintf("variables: %d, clauses: %d", model.MaxVariable, model.ClauseCount)
}

func maxVariable(clauses [][]int64) uint64 {
	var result uint64
	for _, clause := range clauses {
		for _, literal := range clause {
			if literal < 0 {
				literal = -literal
			}
			result = max(result, uint64(literal))
		}
	}
	return result
}
