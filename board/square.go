package board

import (
	"errors"
	"fmt"
	"strings"
)

// Square identifies a board position (0-63, rank-major, a1=0).
type Square int

const NoSquare Square = -1

// Named square constants. The numeric value is the bit position in a Bitboard.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// ErrInvalidSquare reports coordinate text outside the a1-h8 grid.
var ErrInvalidSquare = errors.New("invalid square")

// ParseSquare converts case-insensitive 2-character algebraic text ("e4",
// "C7") into a Square.
func ParseSquare(text string) (Square, error) {
	s := strings.ToLower(text)
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

// Rank returns the rank number, 1 through 8.
func (sq Square) Rank() int { return int(sq)/8 + 1 }

// File returns the file letter, 'a' through 'h'.
func (sq Square) File() byte { return byte(int(sq)%8) + 'a' }

// String returns the algebraic form, file letter then rank digit.
func (sq Square) String() string {
	return string([]byte{sq.File(), byte('0' + sq.Rank())})
}
