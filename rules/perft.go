package rules

// Perft counts leaf nodes (move sequences) from the position for a given
// depth. Recorded positions are not filtered.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.AllLegalMoves() {
		if depth == 1 {
			nodes++
			continue
		}
		b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf
// nodes reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.AllLegalMoves() {
		b.MakeMove(m)
		result[m] = Perft(b, depth-1)
		b.UnmakeMove()
	}
	return result
}
