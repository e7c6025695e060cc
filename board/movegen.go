package board

import "golang.org/x/exp/slices"

// GenerateMoves produces the pseudo-legal moves for every piece identity
// belonging to the side to move. No legality filtering is applied: moves that
// leave the king in check are included, and castling, en passant and
// promotion moves are not produced.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesFor(AllPieces[:]...)
}

// GenerateMovesFor produces the pseudo-legal moves for the requested piece
// identities, silently skipping any that do not belong to the side to move.
// Output order is deterministic: ascending piece identity, then ascending
// source square, then ascending destination square.
func (b *Board) GenerateMovesFor(pieces ...Piece) []Move {
	requested := slices.Clone(pieces)
	slices.Sort(requested)
	requested = slices.Compact(requested)

	side := b.meta.SideToMove
	own := b.colors[side]
	opp := b.colors[side.Other()]

	var moves []Move
	for _, p := range requested {
		if p.Color() != side {
			continue
		}
		for bb := b.pieces[p]; bb != 0; {
			var from Square
			from, bb, _ = bb.PopLSB()

			var targets Bitboard
			switch p.Type() {
			case Pawn:
				targets = PawnTargets(side, from, b.occupied, opp)
			case Knight:
				targets = KnightTargets(from)
			case Bishop:
				targets = BishopTargets(from, b.occupied)
			case Rook:
				targets = RookTargets(from, b.occupied)
			case Queen:
				targets = QueenTargets(from, b.occupied)
			case King:
				targets = KingTargets(from)
			}
			targets &^= own

			for targets != 0 {
				var to Square
				to, targets, _ = targets.PopLSB()
				if opp.IsSet(to) {
					moves = append(moves, Capture(from, to, p))
				} else {
					moves = append(moves, Quiet(from, to, p))
				}
			}
		}
	}
	return moves
}
