package board_test

import (
	"errors"
	"testing"

	"chess-core/board"
)

// The ordinal order is load-bearing: it indexes the piece bitboard array and
// drives generation order, and its parity encodes the color.
func TestPieceOrdinals(t *testing.T) {
	want := []board.Piece{
		board.WhitePawn, board.BlackPawn,
		board.WhiteKnight, board.BlackKnight,
		board.WhiteBishop, board.BlackBishop,
		board.WhiteRook, board.BlackRook,
		board.WhiteQueen, board.BlackQueen,
		board.WhiteKing, board.BlackKing,
	}
	for i, p := range want {
		if int(p) != i {
			t.Errorf("%v has ordinal %d, want %d", p, int(p), i)
		}
		if p != board.AllPieces[i] {
			t.Errorf("AllPieces[%d] = %v, want %v", i, board.AllPieces[i], p)
		}
	}
	if board.NoPiece != 12 {
		t.Errorf("NoPiece = %d, want 12", board.NoPiece)
	}
}

func TestPieceColorParity(t *testing.T) {
	for _, p := range board.AllPieces {
		want := board.White
		if p%2 == 1 {
			want = board.Black
		}
		if p.Color() != want {
			t.Errorf("%v.Color() = %v, want %v", p, p.Color(), want)
		}
		if p.Paired().Color() != want.Other() {
			t.Errorf("%v.Paired() = %v, wrong color", p, p.Paired())
		}
		if p.Paired().Type() != p.Type() {
			t.Errorf("%v.Paired() = %v, wrong type", p, p.Paired())
		}
	}
}

func TestPieceCharRoundTrip(t *testing.T) {
	for _, p := range board.AllPieces {
		back, err := board.PieceFromChar(p.Char())
		if err != nil || back != p {
			t.Errorf("round trip failed for %v: %v %v", p, back, err)
		}
	}
}

func TestPieceFromCharInvalid(t *testing.T) {
	for _, c := range []byte{'x', '1', ' ', 'w'} {
		p, err := board.PieceFromChar(c)
		if !errors.Is(err, board.ErrInvalidPieceChar) {
			t.Errorf("PieceFromChar(%q): err = %v, want ErrInvalidPieceChar", c, err)
		}
		if p != board.NoPiece {
			t.Errorf("PieceFromChar(%q) = %v, want NoPiece", c, p)
		}
	}
}

func TestPieceType(t *testing.T) {
	cases := []struct {
		p    board.Piece
		want board.PieceType
	}{
		{board.WhitePawn, board.Pawn},
		{board.BlackPawn, board.Pawn},
		{board.BlackKnight, board.Knight},
		{board.WhiteBishop, board.Bishop},
		{board.BlackRook, board.Rook},
		{board.WhiteQueen, board.Queen},
		{board.BlackKing, board.King},
	}
	for _, tc := range cases {
		if tc.p.Type() != tc.want {
			t.Errorf("%v.Type() = %v, want %v", tc.p, tc.p.Type(), tc.want)
		}
	}
}

func TestColorOther(t *testing.T) {
	if board.White.Other() != board.Black || board.Black.Other() != board.White {
		t.Fatalf("Other is not an involution")
	}
}
