package board

// CountMoves counts the pseudo-legal move sequences of the given depth
// reachable from the position. Because move application does not yet toggle
// the side to move, every ply in a sequence is played by the same side; the
// count exercises generation and application, it is not a perft figure.
func CountMoves(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := *b
		child.ApplyMove(m)
		nodes += CountMoves(&child, depth-1)
	}
	return nodes
}
