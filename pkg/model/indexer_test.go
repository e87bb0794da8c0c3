package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	//** Arrange
	scenarios := []Shape{
		{Days: 1, Blocks: 1, Participants: 2},
		{Days: 2, Blocks: 2, Participants: 4},
		{Days: 6, Blocks: 4, Participants: 4},
		{Days: 3, Blocks: 9, Participants: 5},
		{Days: 30, Blocks: 5, Participants: 12},
	}

	for _, shape := range scenarios {
		indexer := NewIndexer(shape)

		//** Act
		indices := make([]uint64, 0, shape.Participants*shape.Participants*shape.Days*shape.Blocks)
		for local := range shape.Participants {
			for visit := range shape.Participants {
				for day := range shape.Days {
					for block := range shape.Blocks {
						index := indexer.Index(local, visit, day, block)
						indices = append(indices, index)

						//** Assert
						l, v, d, b := indexer.Attributes(index)
						assert.Equal(t, []uint64{local, visit, day, block}, []uint64{l, v, d, b})
					}
				}
			}
		}

		slices.Sort(indices)
		assert.Len(t, slices.Compact(indices), len(indices), "indices of %+v are not unique", shape)
		assert.Positive(t, indices[0])
	}
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		//** Arrange
		shape := Shape{
			Days:         uint64(rand.Intn(30) + 1),
			Blocks:       uint64(rand.Intn(8) + 1),
			Participants: uint64(rand.Intn(20) + 2),
		}
		indexer := NewIndexer(shape)

		for range 200 {
			local := uint64(rand.Intn(int(shape.Participants)))
			visit := uint64(rand.Intn(int(shape.Participants)))
			day := uint64(rand.Intn(int(shape.Days)))
			block := uint64(rand.Intn(int(shape.Blocks)))

			//** Act
			index := indexer.Index(local, visit, day, block)
			l, v, d, b := indexer.Attributes(index)

			//** Assert
			assert.Equal(t, []uint64{local, visit, day, block}, []uint64{l, v, d, b})
		}
	}
}

func TestIndexIsContiguousOverRadixCube(t *testing.T) {
	indexer := NewIndexer(Shape{Days: 3, Blocks: 2, Participants: 3})
	radix := indexer.Radix()
	assert.Equal(t, uint64(3), radix)

	indices := make([]uint64, 0, radix*radix*radix*radix)
	for local := range radix {
		for visit := range radix {
			for day := range radix {
				for block := range radix {
					indices = append(indices, indexer.Index(local, visit, day, block))
				}
			}
		}
	}
	slices.Sort(indices)

	for i, index := range indices {
		assert.Equal(t, uint64(i+1), index)
	}
}

func TestIndexFormula(t *testing.T) {
	indexer := NewIndexer(Shape{Days: 2, Blocks: 2, Participants: 4})

	assert.Equal(t, uint64(1), indexer.Index(0, 0, 0, 0))
	assert.Equal(t, uint64(2+1*4+1*16+0*64+1), indexer.Index(2, 1, 1, 0))
	assert.Equal(t, uint64(96), indexer.Index(3, 3, 1, 1))
	assert.Equal(t, uint64(96), indexer.MaxIndex())
	assert.Equal(t, int64(96), indexer.Literal(3, 3, 1, 1))
}

func TestLiteralAttributesStripsSign(t *testing.T) {
	indexer := NewIndexer(Shape{Days: 4, Blocks: 3, Participants: 5})
	literal := indexer.Literal(4, 2, 3, 1)

	l, v, d, b := indexer.LiteralAttributes(-literal)

	assert.Equal(t, []uint64{4, 2, 3, 1}, []uint64{l, v, d, b})
}

func TestContains(t *testing.T) {
	indexer := NewIndexer(Shape{Days: 4, Blocks: 2, Participants: 3})

	assert.True(t, indexer.Contains(indexer.Index(0, 1, 0, 0)))
	assert.True(t, indexer.Contains(indexer.Index(2, 1, 3, 1)))

	assert.False(t, indexer.Contains(0))
	assert.False(t, indexer.Contains(indexer.Index(1, 1, 0, 0)), "diagonal")
	assert.False(t, indexer.Contains(indexer.Index(0, 3, 0, 0)), "participant out of range")
	assert.False(t, indexer.Contains(indexer.Index(0, 1, 0, 2)), "block out of range")
	assert.False(t, indexer.Contains(indexer.Index(3, 3, 3, 3)+1), "beyond the radix cube")
}
