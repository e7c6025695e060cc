package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares: bit i is set when square i is a member.
// Square indexing is rank-major with a1=0 and h8=63.
type Bitboard uint64

const (
	// Files (bit 0 = a1).
	FileABB Bitboard = 0x0101010101010101
	FileHBB Bitboard = FileABB << 7

	// Ranks.
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << 8
	Rank7BB Bitboard = Rank1BB << 48
	Rank8BB Bitboard = Rank1BB << 56
)

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return Bitboard(1) << uint(sq)
}

// IsSet reports whether the square's bit is set.
func (b Bitboard) IsSet(sq Square) bool { return b&SquareBB(sq) != 0 }

// Set sets the square's bit in place.
func (b *Bitboard) Set(sq Square) { *b |= SquareBB(sq) }

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Shift shifts left for non-negative amounts and right otherwise.
func (b Bitboard) Shift(amount int) Bitboard {
	if amount >= 0 {
		return b << uint(amount)
	}
	return b >> uint(-amount)
}

// LS1B returns the lowest set bit as a singleton bitboard, or 0 for an empty set.
func (b Bitboard) LS1B() Bitboard { return b & -b }

// ClearLS1B returns the set with its lowest bit cleared; an empty set is unchanged.
func (b Bitboard) ClearLS1B() Bitboard {
	if b == 0 {
		return b
	}
	return b & (b - 1)
}

// LSB returns the index of the lowest set bit. The second result is false for
// an empty set, in which case the square is NoSquare.
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// PopLSB returns the lowest set square, the set without it, and whether a bit
// was present. The receiver is a value; iteration restarts from any bitboard.
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	if b == 0 {
		return NoSquare, b, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), b & (b - 1), true
}

// errBitboardText reports a malformed 0/1 board description.
var errBitboardText = errors.New("bitboard text must contain exactly 64 '0'/'1' symbols")

// BitboardFromString builds a bitboard from a 0/1 grid written rank 8 first,
// file a to h within each rank. Any rune other than '0' or '1' (spaces, line
// breaks) is ignored; after filtering exactly 64 symbols must remain.
func BitboardFromString(text string) (Bitboard, error) {
	var b Bitboard
	n := 0
	for _, r := range text {
		if r != '0' && r != '1' {
			continue
		}
		if n >= 64 {
			return 0, errBitboardText
		}
		if r == '1' {
			rank := 7 - n/8
			file := n % 8
			b.Set(Square(rank*8 + file))
		}
		n++
	}
	if n != 64 {
		return 0, errBitboardText
	}
	return b, nil
}

// String returns the raw 64-bit pattern, most significant bit (h8) first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// Draw renders the 8x8 membership grid with rank 8 on top, followed by the
// raw bit pattern. Diagnostic only.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "  %d ", rank+1)
		for file := 0; file < 8; file++ {
			if b.IsSet(Square(rank*8 + file)) {
				sb.WriteString(" 1")
			} else {
				sb.WriteString(" 0")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("     a b c d e f g h\n")
	sb.WriteString(b.String())
	sb.WriteByte('\n')
	return sb.String()
}
