package board_test

import (
	"testing"

	"chessbots/board"
)

func benchGenerateMoves(b *testing.B, fen string) {
	pos := mustParse(b, fen)
	buf := make([]board.Move, 0, board.MaxMoves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.GenerateMovesInto(buf)
	}
}

func BenchmarkGenerateMoves_Initial(b *testing.B) {
	benchGenerateMoves(b, board.StartFEN)
}

func BenchmarkGenerateMoves_Kiwipete(b *testing.B) {
	benchGenerateMoves(b, kiwipeteFEN)
}

func benchPerft(b *testing.B, fen string, depth int) {
	pos := mustParse(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipeteFEN, 3)
}

func BenchmarkDoUndo(b *testing.B) {
	pos := mustParse(b, kiwipeteFEN)
	moves := pos.GenerateAllMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		pos.UndoMove(m, pos.DoMove(m))
	}
}
