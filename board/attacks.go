package board

import "math/bits"

// Precomputed attack masks for kings and knights from each square.
var kingMoves [64]Bitboard
var knightMoves [64]Bitboard

// Pawn capture masks: pawnCaptures[color][sq] is the set of squares a pawn of
// that color attacks diagonally from sq.
var pawnCaptures [2][64]Bitboard

// Directional rays for sliders, excluding the origin square.
// Rook directions: 0=N, 1=S, 2=E, 3=W.
var rookRays [64][4]Bitboard

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW.
var bishopRays [64][4]Bitboard

// Masks and lookup tables for the subset-indexed slider attacks (software
// pext over the relevant-occupancy mask).
var rookMask [64]Bitboard
var bishopMask [64]Bitboard
var rookAttTable [64][]Bitboard
var bishopAttTable [64][]Bitboard

func init() {
	initLeaperTables()
	initRays()
	initSliderTables()
}

// initLeaperTables precomputes king, knight, and pawn-capture masks.
func initLeaperTables() {
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var km Bitboard
		for _, off := range kingOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				km.Set(Square(r*8 + f))
			}
		}
		kingMoves[sq] = km

		var nm Bitboard
		for _, off := range knightOffsets {
			r, f := rank+off[0], file+off[1]
			if r >= 0 && r < 8 && f >= 0 && f < 8 {
				nm.Set(Square(r*8 + f))
			}
		}
		knightMoves[sq] = nm

		// White pawns capture upward, black pawns downward. The file bounds
		// prevent a/h wraparound.
		if rank < 7 {
			if file > 0 {
				pawnCaptures[White][sq].Set(Square((rank+1)*8 + file - 1))
			}
			if file < 7 {
				pawnCaptures[White][sq].Set(Square((rank+1)*8 + file + 1))
			}
		}
		if rank > 0 {
			if file > 0 {
				pawnCaptures[Black][sq].Set(Square((rank-1)*8 + file - 1))
			}
			if file < 7 {
				pawnCaptures[Black][sq].Set(Square((rank-1)*8 + file + 1))
			}
		}
	}
}

// initRays precomputes directional rays for the sliding pieces.
func initRays() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var ray Bitboard
		for r := rank + 1; r < 8; r++ {
			ray.Set(Square(r*8 + file))
		}
		rookRays[sq][0] = ray // N

		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray.Set(Square(r*8 + file))
		}
		rookRays[sq][1] = ray // S

		ray = 0
		for f := file + 1; f < 8; f++ {
			ray.Set(Square(rank*8 + f))
		}
		rookRays[sq][2] = ray // E

		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray.Set(Square(rank*8 + f))
		}
		rookRays[sq][3] = ray // W

		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray.Set(Square(r*8 + f))
		}
		bishopRays[sq][0] = ray // NE

		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray.Set(Square(r*8 + f))
		}
		bishopRays[sq][1] = ray // NW

		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray.Set(Square(r*8 + f))
		}
		bishopRays[sq][2] = ray // SE

		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray.Set(Square(r*8 + f))
		}
		bishopRays[sq][3] = ray // SW
	}
}

// initSliderTables builds the relevant-occupancy masks and, for every subset
// of each mask, the resulting attack set. Lookup is then a pext + table read.
func initSliderTables() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		// Relevant occupancy excludes board edges: a blocker on the edge
		// cannot shorten the ray any further.
		var rm Bitboard
		for r := rank + 1; r < 7; r++ {
			rm.Set(Square(r*8 + file))
		}
		for r := rank - 1; r > 0; r-- {
			rm.Set(Square(r*8 + file))
		}
		for f := file + 1; f < 7; f++ {
			rm.Set(Square(rank*8 + f))
		}
		for f := file - 1; f > 0; f-- {
			rm.Set(Square(rank*8 + f))
		}
		rookMask[sq] = rm

		var bm Bitboard
		for r, f := rank+1, file+1; r < 7 && f < 7; r, f = r+1, f+1 {
			bm.Set(Square(r*8 + f))
		}
		for r, f := rank+1, file-1; r < 7 && f > 0; r, f = r+1, f-1 {
			bm.Set(Square(r*8 + f))
		}
		for r, f := rank-1, file+1; r > 0 && f < 7; r, f = r-1, f+1 {
			bm.Set(Square(r*8 + f))
		}
		for r, f := rank-1, file-1; r > 0 && f > 0; r, f = r-1, f-1 {
			bm.Set(Square(r*8 + f))
		}
		bishopMask[sq] = bm

		rBits := rm.PopCount()
		bBits := bm.PopCount()
		rookAttTable[sq] = make([]Bitboard, 1<<rBits)
		bishopAttTable[sq] = make([]Bitboard, 1<<bBits)

		for idx := 0; idx < 1<<rBits; idx++ {
			occ := pdep(Bitboard(idx), rm)
			rookAttTable[sq][idx] = rookAttacksClassical(sq, occ)
		}
		for idx := 0; idx < 1<<bBits; idx++ {
			occ := pdep(Bitboard(idx), bm)
			bishopAttTable[sq][idx] = bishopAttacksClassical(sq, occ)
		}
	}
}

// software pext: extract bits of x at positions where mask has 1s, packed
// into the low bits.
func pext(x, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(uint64(m)))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// software pdep: deposit the low bits of x into the positions of mask.
func pdep(x, mask Bitboard) Bitboard {
	var res Bitboard
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(uint64(m)))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}

// rookAttacksClassical ray-walks via first-blocker truncation; only used to
// seed the lookup tables.
func rookAttacksClassical(sq int, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := rookRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			first := firstBlocker(blockers, d == 0 || d == 2)
			ray &^= rookRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

func bishopAttacksClassical(sq int, occ Bitboard) Bitboard {
	var attacks Bitboard
	for d := 0; d < 4; d++ {
		ray := bishopRays[sq][d]
		if blockers := ray & occ; blockers != 0 {
			// NE and NW rays run toward increasing indices.
			first := firstBlocker(blockers, d == 0 || d == 1)
			ray &^= bishopRays[first][d]
		}
		attacks |= ray
	}
	return attacks
}

// firstBlocker picks the blocker nearest the origin: lowest bit on rays that
// run toward increasing indices, highest bit otherwise.
func firstBlocker(blockers Bitboard, increasing bool) int {
	if increasing {
		return bits.TrailingZeros64(uint64(blockers))
	}
	return 63 - bits.LeadingZeros64(uint64(blockers))
}

// KingTargets returns the one-step king attack set from sq.
func KingTargets(sq Square) Bitboard { return kingMoves[sq] }

// KnightTargets returns the knight attack set from sq.
func KnightTargets(sq Square) Bitboard { return knightMoves[sq] }

// RookTargets returns rook attacks from sq under the given occupancy,
// including the first blocker in each direction.
func RookTargets(sq Square, occupied Bitboard) Bitboard {
	idx := pext(occupied, rookMask[sq])
	return rookAttTable[sq][idx]
}

// BishopTargets returns bishop attacks from sq under the given occupancy,
// including the first blocker in each direction.
func BishopTargets(sq Square, occupied Bitboard) Bitboard {
	idx := pext(occupied, bishopMask[sq])
	return bishopAttTable[sq][idx]
}

// QueenTargets combines rook and bishop attacks.
func QueenTargets(sq Square, occupied Bitboard) Bitboard {
	return RookTargets(sq, occupied) | BishopTargets(sq, occupied)
}

// PawnCaptureMask returns the diagonal attack squares of a pawn of the given
// color on sq, before any occupancy masking.
func PawnCaptureMask(c Color, sq Square) Bitboard { return pawnCaptures[c][sq] }

// PawnTargets returns the pawn move set from sq: a single push onto an empty
// square, a double push from the home rank through an empty intermediate, and
// diagonal captures restricted to opponent-held squares. The capture masks
// never wrap across the a/h boundary.
func PawnTargets(c Color, sq Square, occupied, opponents Bitboard) Bitboard {
	targets := pawnCaptures[c][sq] & opponents
	if c == White {
		one := SquareBB(sq) << 8
		if one&occupied == 0 {
			targets |= one
			if SquareBB(sq)&Rank2BB != 0 {
				if two := one << 8; two&occupied == 0 {
					targets |= two
				}
			}
		}
	} else {
		one := SquareBB(sq) >> 8
		if one&occupied == 0 {
			targets |= one
			if SquareBB(sq)&Rank7BB != 0 {
				if two := one >> 8; two&occupied == 0 {
					targets |= two
				}
			}
		}
	}
	return targets
}
