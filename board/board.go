package board

import (
	"fmt"
	"strings"

	"chess-core/fen"
)

// CastlingRights is a bitmask of the four castle permissions.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ

	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Metadata carries the position fields beyond piece placement. It is decoded
// from position text and read by move generation for the side-to-move filter;
// move application does not update it yet.
type Metadata struct {
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square // NoSquare when none
	HalfmoveClock  int
	FullmoveNumber int
}

// Board is a bitboard position: one set per piece identity, one aggregate per
// color, and the overall occupancy. It is a plain value; copying the struct
// yields an independent position, which is how a search layer is expected to
// branch.
//
// Invariants between operations: occupied is the union of both aggregates and
// of all twelve piece sets; each aggregate is the union of the same-parity
// piece sets; the twelve piece sets are pairwise disjoint.
type Board struct {
	pieces   [12]Bitboard
	colors   [2]Bitboard
	occupied Bitboard
	meta     Metadata
	key      uint64
}

// Standard initial layout, one constant per piece identity.
const (
	initialWhitePawns   Bitboard = 0x000000000000FF00
	initialBlackPawns   Bitboard = 0x00FF000000000000
	initialWhiteKnights Bitboard = 0x0000000000000042
	initialBlackKnights Bitboard = 0x4200000000000000
	initialWhiteBishops Bitboard = 0x0000000000000024
	initialBlackBishops Bitboard = 0x2400000000000000
	initialWhiteRooks   Bitboard = 0x0000000000000081
	initialBlackRooks   Bitboard = 0x8100000000000000
	initialWhiteQueens  Bitboard = 0x0000000000000008
	initialBlackQueens  Bitboard = 0x0800000000000000
	initialWhiteKing    Bitboard = 0x0000000000000010
	initialBlackKing    Bitboard = 0x1000000000000000
)

// Empty returns a board with no pieces and default metadata.
func Empty() *Board {
	b := &Board{meta: Metadata{EnPassant: NoSquare, FullmoveNumber: 1}}
	b.key = b.computeZobrist()
	return b
}

// InitialPosition returns the standard starting position.
func InitialPosition() *Board {
	b := &Board{
		pieces: [12]Bitboard{
			WhitePawn:   initialWhitePawns,
			BlackPawn:   initialBlackPawns,
			WhiteKnight: initialWhiteKnights,
			BlackKnight: initialBlackKnights,
			WhiteBishop: initialWhiteBishops,
			BlackBishop: initialBlackBishops,
			WhiteRook:   initialWhiteRooks,
			BlackRook:   initialBlackRooks,
			WhiteQueen:  initialWhiteQueens,
			BlackQueen:  initialBlackQueens,
			WhiteKing:   initialWhiteKing,
			BlackKing:   initialBlackKing,
		},
		meta: Metadata{
			Castling:       CastlingAll,
			EnPassant:      NoSquare,
			FullmoveNumber: 1,
		},
	}
	b.recomputeAggregates()
	b.key = b.computeZobrist()
	return b
}

// scanSquare maps a scan position (rank 8 to 1, file a to h) to its square.
func scanSquare(i int) Square { return Square((7-i/8)*8 + i%8) }

// Decode builds a board from position text. The fen package splits the
// fields; each of the twelve piece sets is then built by membership test over
// the 64-entry placement scan, and the aggregates are recomputed from
// scratch. Metadata is stored but not otherwise threaded into behavior yet.
func Decode(text string) (*Board, error) {
	pos, err := fen.Parse(text)
	if err != nil {
		return nil, err
	}

	var placement [64]Piece
	for i, ch := range pos.Placement {
		if ch == 0 {
			placement[i] = NoPiece
			continue
		}
		p, err := PieceFromChar(ch)
		if err != nil {
			return nil, err
		}
		placement[i] = p
	}

	b := &Board{}
	for _, p := range AllPieces {
		var bb Bitboard
		for i, occupant := range placement {
			if occupant == p {
				bb.Set(scanSquare(i))
			}
		}
		b.pieces[p] = bb
	}
	b.recomputeAggregates()

	b.meta.SideToMove = White
	if pos.SideToMove == 'b' {
		b.meta.SideToMove = Black
	}
	b.meta.Castling = castlingFromString(pos.Castling)
	b.meta.EnPassant = NoSquare
	if pos.EnPassant != "-" {
		sq, err := ParseSquare(pos.EnPassant)
		if err != nil {
			return nil, err
		}
		b.meta.EnPassant = sq
	}
	b.meta.HalfmoveClock = pos.HalfmoveClock
	b.meta.FullmoveNumber = pos.FullmoveNumber

	b.key = b.computeZobrist()
	return b, nil
}

// Encode renders the board as position text, scanning rank 8 to 1 and taking
// the first matching piece set per square. Side to move, castling, en passant
// and the clocks are not yet threaded through the board, so the encoder emits
// the fixed defaults for those fields.
func (b *Board) Encode() string {
	var pos fen.Position
	for i := 0; i < 64; i++ {
		if p := b.PieceAt(scanSquare(i)); p != NoPiece {
			pos.Placement[i] = p.Char()
		}
	}
	pos.SideToMove = 'w'
	pos.Castling = "KQkq"
	pos.EnPassant = "-"
	pos.HalfmoveClock = 0
	pos.FullmoveNumber = 1
	return fen.Format(pos)
}

func castlingFromString(s string) CastlingRights {
	var cr CastlingRights
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'K':
			cr |= CastlingWhiteK
		case 'Q':
			cr |= CastlingWhiteQ
		case 'k':
			cr |= CastlingBlackK
		case 'q':
			cr |= CastlingBlackQ
		}
	}
	return cr
}

// recomputeAggregates rebuilds the color aggregates and occupancy from the
// twelve piece sets.
func (b *Board) recomputeAggregates() {
	b.colors[White] = 0
	b.colors[Black] = 0
	for _, p := range AllPieces {
		b.colors[p.Color()] |= b.pieces[p]
	}
	b.occupied = b.colors[White] | b.colors[Black]
}

// PieceAt returns the occupant of a square, or NoPiece. The scan stops at the
// first matching set; by the disjointness invariant at most one can match.
func (b *Board) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)
	for _, p := range AllPieces {
		if b.pieces[p]&bb != 0 {
			return p
		}
	}
	return NoPiece
}

// PieceBitboard returns the set of squares holding the given piece identity.
func (b *Board) PieceBitboard(p Piece) Bitboard { return b.pieces[p] }

// ColorBitboard returns the aggregate set for one color.
func (b *Board) ColorBitboard(c Color) Bitboard { return b.colors[c] }

// Occupied returns the overall occupancy set.
func (b *Board) Occupied() Bitboard { return b.occupied }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.meta.SideToMove }

// Meta returns a copy of the position metadata.
func (b *Board) Meta() Metadata { return b.meta }

// Hash returns the position's zobrist key.
func (b *Board) Hash() uint64 { return b.key }

// Validate checks internal consistency between the piece sets, the color
// aggregates, the occupancy, and the zobrist key.
func (b *Board) Validate() bool {
	var colors [2]Bitboard
	for _, p := range AllPieces {
		colors[p.Color()] |= b.pieces[p]
	}
	if colors != b.colors {
		return false
	}
	if b.occupied != colors[White]|colors[Black] {
		return false
	}
	// Pairwise disjointness: the union's population must equal the sum.
	total := 0
	for _, p := range AllPieces {
		total += b.pieces[p].PopCount()
	}
	if total != b.occupied.PopCount() {
		return false
	}
	return b.key == b.computeZobrist()
}

// Draw renders the position as an 8x8 grid with unicode glyphs, rank 8 on
// top. Diagnostic only.
func (b *Board) Draw() string { return b.draw(nil) }

// DrawWithMove renders the position with the move's source and destination
// squares bracketed.
func (b *Board) DrawWithMove(m Move) string { return b.draw(&m) }

func (b *Board) draw(highlight *Move) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "  %d ", rank+1)
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			cell := '.'
			if p := b.PieceAt(sq); p != NoPiece {
				cell = p.Glyph()
			}
			if highlight != nil && (sq == highlight.From || sq == highlight.To) {
				fmt.Fprintf(&sb, "[%c]", cell)
			} else {
				fmt.Fprintf(&sb, " %c ", cell)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("     a  b  c  d  e  f  g  h\n")
	return sb.String()
}
