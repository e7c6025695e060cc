package board

import "fmt"

// ApplyMove plays a move on the board in place, maintaining the aggregates,
// the occupancy and the zobrist key incrementally. The move is trusted: it
// must have come from this position's generator. Promotion moves are not
// supported and panic.
//
// On a capture, only the opposing side's piece sets are scanned for the
// victim, so a destination square shared with a stale same-side set can never
// shadow the real capture.
func (b *Board) ApplyMove(m Move) {
	if m.Promotion != NoPiece {
		panic(fmt.Sprintf("board: promotion is not supported (move %s)", m))
	}

	us := m.Piece.Color()
	them := us.Other()
	delta := SquareBB(m.From) ^ SquareBB(m.To)

	b.pieces[m.Piece] ^= delta
	b.colors[us] ^= delta
	b.occupied ^= delta
	b.key ^= zobristPiece[m.Piece][m.From] ^ zobristPiece[m.Piece][m.To]

	if m.IsCapture {
		victimBB := SquareBB(m.To)
		for p := Piece(them); p < NoPiece; p += 2 {
			if b.pieces[p]&victimBB != 0 {
				b.pieces[p] ^= victimBB
				b.colors[them] ^= victimBB
				// The delta toggled the destination off; the victim's removal
				// toggles it back on under the mover.
				b.occupied ^= victimBB
				b.key ^= zobristPiece[p][m.To]
				break
			}
		}
	}
}
