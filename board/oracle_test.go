package board_test

import (
	"sort"
	"strings"
	"testing"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"chessbots/board"
)

// Differential tests against independent move generators.

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftMatchesDragontooth(t *testing.T) {
	for _, fen := range testFENs {
		ours := mustParse(t, fen)
		theirs := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			want := dragontoothPerft(&theirs, depth)
			if got := board.Perft(ours, depth); got != want {
				t.Fatalf("%s depth %d: got %d, dragontoothmg %d", fen, depth, got, want)
			}
		}
	}
}

func TestMoveSetMatchesGoosemg(t *testing.T) {
	for _, fen := range testFENs {
		ours := mustParse(t, fen)
		theirs, err := goosemg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goosemg ParseFEN(%q): %v", fen, err)
		}
		want := make([]string, 0, 64)
		for _, m := range theirs.GenerateMoves() {
			want = append(want, strings.ToLower(m.String()))
		}
		sort.Strings(want)
		got := moveStrings(ours.GenerateAllMoves())
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Fatalf("%s:\n got  %v\n want %v", fen, got, want)
		}
	}
}

func TestMoveCountsMatchNotnil(t *testing.T) {
	fens := append([]string{
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
	}, testFENs...)
	for _, fen := range fens {
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatalf("notnil FEN(%q): %v", fen, err)
		}
		want := len(chess.NewGame(opt).ValidMoves())
		if got := len(mustParse(t, fen).GenerateAllMoves()); got != want {
			t.Fatalf("%s: got %d moves, notnil/chess %d", fen, got, want)
		}
	}
}
