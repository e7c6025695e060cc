package fen_test

import (
	"strings"
	"testing"

	"chess-core/fen"
)

func TestParseStartPosition(t *testing.T) {
	pos, err := fen.Parse(fen.StartPosition)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pos.Placement[0] != 'r' || pos.Placement[4] != 'k' {
		t.Errorf("rank 8 scan wrong: %q %q", pos.Placement[0], pos.Placement[4])
	}
	if pos.Placement[8] != 'p' || pos.Placement[55] != 'P' {
		t.Errorf("pawn ranks wrong: %q %q", pos.Placement[8], pos.Placement[55])
	}
	if pos.Placement[16] != 0 {
		t.Errorf("a6 should be empty, got %q", pos.Placement[16])
	}
	if pos.SideToMove != 'w' || pos.Castling != "KQkq" || pos.EnPassant != "-" {
		t.Errorf("metadata wrong: %c %q %q", pos.SideToMove, pos.Castling, pos.EnPassant)
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 1 {
		t.Errorf("clocks wrong: %d %d", pos.HalfmoveClock, pos.FullmoveNumber)
	}
}

func TestParseClocksOptional(t *testing.T) {
	pos, err := fen.Parse("8/8/8/8/8/8/8/8 b - -")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 1 {
		t.Errorf("default clocks = %d/%d, want 0/1", pos.HalfmoveClock, pos.FullmoveNumber)
	}
	if pos.SideToMove != 'b' {
		t.Errorf("side = %c, want b", pos.SideToMove)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"", "not enough fields"},
		{"8/8/8/8 w - - 0 1", "8 ranks"},
		{"8/8/8/8/8/8/8/ppppppppp w - - 0 1", "8 files"},
		{"8/8/8/8/8/8/8/7 w - - 0 1", "8 files"},
		{"8/8/8/8/8/8/8/8 x - - 0 1", "side to move"},
		{"8/8/8/8/8/8/8/8 w KX - 0 1", "castling"},
		{"8/8/8/8/8/8/8/8 w - e9 0 1", "en passant"},
		{"8/8/8/8/8/8/8/8 w - - x 1", "halfmove"},
		{"8/8/8/8/8/8/8/8 w - - 0 x", "fullmove"},
	}
	for _, tc := range cases {
		_, err := fen.Parse(tc.text)
		if err == nil {
			t.Errorf("Parse(%q) accepted", tc.text)
			continue
		}
		if !strings.Contains(err.Error(), "invalid FEN") || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("Parse(%q) error = %q, want mention of %q", tc.text, err, tc.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	texts := []string{
		fen.StartPosition,
		"2k5/8/8/8/8/8/2Pp4/2K5 w - - 0 1",
		"8/pppppppp/n1pB2P1/4N3/8/8/8/8 b - - 12 34",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq c6 1 2",
	}
	for _, text := range texts {
		pos, err := fen.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := fen.Format(pos); got != text {
			t.Errorf("Format(Parse(%q)) = %q", text, got)
		}
	}
}

func TestFormatCompressesEmptyRuns(t *testing.T) {
	var pos fen.Position
	pos.Placement[3] = 'k'  // d8
	pos.Placement[60] = 'K' // e1
	pos.SideToMove = 'w'
	pos.Castling = "-"
	pos.EnPassant = "-"
	pos.FullmoveNumber = 1
	if got, want := fen.Format(pos), "3k4/8/8/8/8/8/8/4K3 w - - 0 1"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
