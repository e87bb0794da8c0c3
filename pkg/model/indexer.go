package model

// Indexer gives a unique index to a match coordinate (local, visit, day, block) and vice versa.
//
// Indices are a mixed-radix number whose radix is the largest dimension of the shape, so every
// zero-based attribute fits in one digit:
//
//	index = local + visit*radix + day*radix^2 + block*radix^3 + 1
//
// An Indexer is an immutable value; the one used to decode a solution must be built from the same
// shape as the one used to encode it.
type Indexer struct {
	shape Shape
	radix uint64
}

func NewIndexer(shape Shape) Indexer {
	return Indexer{
		shape: shape,
		radix: max(shape.Days, shape.Blocks, shape.Participants),
	}
}

func (indexer Indexer) Radix() uint64 {
	return indexer.radix
}

func (indexer Indexer) Shape() Shape {
	return indexer.shape
}

// Index returns the (always positive) index of a match coordinate. Negative literals are formed by the caller
func (indexer Indexer) Index(local, visit, day, block uint64) uint64 {
	radix := indexer.radix
	return local + radix*visit + radix*radix*day + radix*radix*radix*block + 1
}

// Literal is Index as a positive DIMACS literal
func (indexer Indexer) Literal(local, visit, day, block uint64) int64 {
	return int64(indexer.Index(local, visit, day, block))
}

// Attributes returns the match coordinate of an index previously produced by Index
func (indexer Indexer) Attributes(index uint64) (local, visit, day, block uint64) {
	radix := indexer.radix
	index = index - 1

	local = index % radix
	index = index / radix

	visit = index % radix
	index = index / radix

	day = index % radix
	index = index / radix

	block = index % radix

	return local, visit, day, block
}

// LiteralAttributes strips the literal's sign and returns the coordinate of its variable
func (indexer Indexer) LiteralAttributes(literal int64) (local, visit, day, block uint64) {
	if literal < 0 {
		literal = -literal
	}
	return indexer.Attributes(uint64(literal))
}

// Contains checks whether the index addresses a valid match coordinate of the shape
func (indexer Indexer) Contains(index uint64) bool {
	if index == 0 || index > indexer.Index(indexer.radix-1, indexer.radix-1, indexer.radix-1, indexer.radix-1) {
		return false
	}
	local, visit, day, block := indexer.Attributes(index)
	return local < indexer.shape.Participants &&
		visit < indexer.shape.Participants &&
		local != visit &&
		day < indexer.shape.Days &&
		block < indexer.shape.Blocks
}

// MaxIndex returns the index of the highest coordinate of the shape
func (indexer Indexer) MaxIndex() uint64 {
	return indexer.Index(indexer.shape.Participants-1, indexer.shape.Participants-1, indexer.shape.Days-1, indexer.shape.Blocks-1)
}
