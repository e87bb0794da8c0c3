package model

// DecodeMatches turns the literals reported true by a solver into matches, keeping their order.
// The sign of each literal is dropped and no range check is performed, so the indexer must be the one
// the model was built with
func DecodeMatches(indexer Indexer, literals []int64) []Match {
	matches := make([]Match, 0, len(literals))
	for _, literal := range literals {
		match := Match{}
		match.Local, match.Visit, match.Day, match.Block = indexer.LiteralAttributes(literal)
		matches = append(matches, match)
	}
	return matches
}
