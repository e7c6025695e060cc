package board_test

import (
	"testing"

	"chess-core/board"
	"chess-core/fen"
)

func benchGenerateMoves(b *testing.B, text string) {
	pos, err := board.Decode(text)
	if err != nil {
		b.Fatalf("Decode: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.GenerateMoves()
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, fen.StartPosition)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
}

func BenchmarkGenerateMoves_SinglePiece(b *testing.B) {
	pos, err := board.Decode(fen.StartPosition)
	if err != nil {
		b.Fatalf("Decode: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.GenerateMovesFor(board.WhiteKnight)
	}
}

func BenchmarkApplyMove_AllMoves_Initial(b *testing.B) {
	pos := board.InitialPosition()
	moves := pos.GenerateMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			child := *pos
			child.ApplyMove(m)
		}
	}
}

func BenchmarkCountMoves_Initial_D3(b *testing.B) {
	pos := board.InitialPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.CountMoves(pos, 3)
	}
}
