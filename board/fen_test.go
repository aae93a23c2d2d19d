package board_test

import (
	"errors"
	"testing"

	"chessbots/board"
)

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		b, clocks, err := board.DecodeFEN(fen)
		if err != nil {
			t.Fatalf("DecodeFEN(%q): %v", fen, err)
		}
		if got := b.FEN(clocks); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestDecodeFENClocks(t *testing.T) {
	_, clocks, err := board.DecodeFEN("rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if err != nil {
		t.Fatal(err)
	}
	if clocks.HalfMove != 1 || clocks.FullMove != 8 {
		t.Fatalf("clocks: got %+v want {1 8}", clocks)
	}
	_, clocks, err = board.DecodeFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	if clocks.HalfMove != 0 || clocks.FullMove != 1 {
		t.Fatalf("default clocks: got %+v want {0 1}", clocks)
	}
}

func TestParseFENRejectsBadInput(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
		// en passant target without a pawn that just double-pushed
		"4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1",
		// en passant target on the wrong rank for the side to move
		"4k3/8/8/8/8/8/3P4/4K3 w - e3 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 b - d6 0 1",
		// en passant target occupied
		"4k3/8/3n4/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range bad {
		if _, err := board.ParseFEN(fen); !errors.Is(err, board.ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): got %v want ErrInvalidFEN", fen, err)
		}
	}
}
