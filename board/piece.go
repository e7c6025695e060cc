package board

import (
	"errors"
	"fmt"
)

// Color of a piece or side. White is 0 and Black is 1 so a Color can index
// per-color tables directly.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece identifies one of the twelve colored piece kinds. The ordinal order
// is fixed and load-bearing: white/black pairs interleave so that an even
// ordinal is always a white piece, and the ordinal indexes the board's piece
// bitboard array.
type Piece uint8

const (
	WhitePawn Piece = iota
	BlackPawn
	WhiteKnight
	BlackKnight
	WhiteBishop
	BlackBishop
	WhiteRook
	BlackRook
	WhiteQueen
	BlackQueen
	WhiteKing
	BlackKing

	NoPiece
)

// AllPieces lists the twelve piece identities in ordinal order.
var AllPieces = [12]Piece{
	WhitePawn, BlackPawn,
	WhiteKnight, BlackKnight,
	WhiteBishop, BlackBishop,
	WhiteRook, BlackRook,
	WhiteQueen, BlackQueen,
	WhiteKing, BlackKing,
}

// PieceType is the colorless kind of a piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceChars maps ordinals to FEN letters; uppercase is white.
const pieceChars = "PpNnBbRrQqKk"

// pieceGlyphs maps ordinals to unicode chess glyphs, for rendering.
var pieceGlyphs = [12]rune{'♙', '♟', '♘', '♞', '♗', '♝', '♖', '♜', '♕', '♛', '♔', '♚'}

// ErrInvalidPieceChar reports a letter outside the "PpNnBbRrQqKk" alphabet.
var ErrInvalidPieceChar = errors.New("invalid piece character")

// PieceFromChar converts a FEN piece letter into its Piece identity.
func PieceFromChar(c byte) (Piece, error) {
	for i := 0; i < len(pieceChars); i++ {
		if pieceChars[i] == c {
			return Piece(i), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: %q", ErrInvalidPieceChar, string(c))
}

// Char returns the piece's FEN letter, the total inverse of PieceFromChar.
func (p Piece) Char() byte { return pieceChars[p] }

// Glyph returns the piece's unicode symbol.
func (p Piece) Glyph() rune { return pieceGlyphs[p] }

// Color derives the side from ordinal parity in O(1).
func (p Piece) Color() Color { return Color(p & 1) }

// Type returns the colorless kind; the white/black pair of a kind share one
// ordinal half.
func (p Piece) Type() PieceType { return PieceType(p >> 1) }

// Paired returns the same kind in the opposing color.
func (p Piece) Paired() Piece { return p ^ 1 }

func (p Piece) String() string {
	if p == NoPiece {
		return "-"
	}
	return string(p.Char())
}
