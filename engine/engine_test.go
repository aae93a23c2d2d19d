package engine_test

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"chessbots/board"
	"chessbots/engine"
	"chessbots/game"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func mustFEN(t *testing.T, fen string) *game.Game {
	t.Helper()
	g, err := game.FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return g
}

func TestEvaluateStartIsBalanced(t *testing.T) {
	if got := engine.Evaluate(game.New()); got != 0 {
		t.Fatalf("start eval: got %d want 0", got)
	}
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1"},
		{"4k3/8/8/3N4/8/8/4P3/4K3 w - - 0 1", "4k3/4p3/8/8/3n4/8/8/4K3 b - - 0 1"},
		{"r3k3/8/8/8/8/8/8/4K2Q w - - 0 1", "4k2q/8/8/8/8/8/8/R3K3 b - - 0 1"},
	}
	for _, p := range pairs {
		w := engine.Evaluate(mustFEN(t, p[0]))
		b := engine.Evaluate(mustFEN(t, p[1]))
		if w != -b {
			t.Fatalf("%s scores %d, mirror %s scores %d", p[0], w, p[1], b)
		}
	}
}

func TestEvaluateMaterial(t *testing.T) {
	up := engine.Evaluate(mustFEN(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1"))
	if up < 800 {
		t.Fatalf("queen up: got %d", up)
	}
	down := engine.Evaluate(mustFEN(t, "3qk3/8/8/8/8/8/8/4K3 w - - 0 1"))
	if down > -800 {
		t.Fatalf("queen down: got %d", down)
	}
}

func TestEvaluateTerminal(t *testing.T) {
	g := game.New()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if err := g.PlayUCI(uci); err != nil {
			t.Fatal(err)
		}
	}
	g.TryUpdateStatus()
	if got := engine.Evaluate(g); got != -engine.MateValue {
		t.Fatalf("black mated white: got %d want %d", got, -engine.MateValue)
	}
}

func TestNewBot(t *testing.T) {
	for _, kind := range engine.BotKinds {
		bot, err := engine.NewBot(kind, engine.DefaultOptions())
		if err != nil || bot == nil {
			t.Fatalf("NewBot(%s): %v", kind, err)
		}
	}
	if _, err := engine.NewBot("alphazero", engine.DefaultOptions()); !errors.Is(err, engine.ErrUnknownBot) {
		t.Fatalf("unknown kind: got %v", err)
	}
}

func checkLegalAndUntouched(t *testing.T, bot engine.Bot, g *game.Game) board.Move {
	t.Helper()
	fen := g.FEN()
	ply := g.Ply()
	m, ok := bot.BestMove(g)
	if !ok {
		t.Fatalf("%s: no move from %s", bot.Name(), fen)
	}
	if g.FEN() != fen || g.Ply() != ply {
		t.Fatalf("%s changed the game: %s -> %s", bot.Name(), fen, g.FEN())
	}
	if !g.Board().IsLegal(m) {
		t.Fatalf("%s: illegal move %v in %s", bot.Name(), m, fen)
	}
	return m
}

func TestBotsReturnLegalMoves(t *testing.T) {
	opts := engine.Options{
		MinMax:     engine.MinMaxConfig{Depth: 2},
		MonteCarlo: engine.MonteCarloConfig{Rollouts: 2, RolloutPlies: 20},
	}
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, kind := range engine.BotKinds {
		bot, err := engine.NewBot(kind, opts)
		if err != nil {
			t.Fatal(err)
		}
		for _, fen := range fens {
			checkLegalAndUntouched(t, bot, mustFEN(t, fen))
		}
	}
}

func TestBotsReportNoMove(t *testing.T) {
	g := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	for _, kind := range engine.BotKinds {
		bot, _ := engine.NewBot(kind, engine.DefaultOptions())
		if _, ok := bot.BestMove(g); ok {
			t.Fatalf("%s found a move in stalemate", kind)
		}
	}
}

func TestMinMaxFindsMateInOne(t *testing.T) {
	cases := []string{
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1",
		"r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1",
	}
	for _, fen := range cases {
		g := mustFEN(t, fen)
		bot := engine.NewMinMaxBot(engine.MinMaxConfig{Depth: 2})
		m := checkLegalAndUntouched(t, bot, g)
		g.DoMove(m)
		if got := g.TryUpdateStatus(); got != game.WhiteWon && got != game.BlackWon {
			t.Fatalf("%s: %v does not mate, status %v", fen, m, got)
		}
		if bot.Nodes() == 0 {
			t.Fatalf("%s: node counter not updated", fen)
		}
	}
}

func TestMinMaxTakesHangingQueen(t *testing.T) {
	g := mustFEN(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	m, ok := engine.NewMinMaxBot(engine.MinMaxConfig{Depth: 1}).BestMove(g)
	if !ok || m.String() != "d1d5" {
		t.Fatalf("got %v %v want d1d5", m, ok)
	}
}

func TestMonteCarloFindsMateInOne(t *testing.T) {
	g := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	bot := engine.NewMonteCarloBot(engine.MonteCarloConfig{Rollouts: 3, RolloutPlies: 30})
	m := checkLegalAndUntouched(t, bot, g)
	if m.String() != "a1a8" {
		t.Fatalf("got %v want a1a8", m)
	}
}

func TestMonteCarloFindsMateInOneForBlack(t *testing.T) {
	g := mustFEN(t, "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1")
	bot := engine.NewMonteCarloBot(engine.MonteCarloConfig{Rollouts: 3, RolloutPlies: 30})
	m := checkLegalAndUntouched(t, bot, g)
	if m.String() != "a8a1" {
		t.Fatalf("got %v want a8a1", m)
	}
}

func TestMinMaxMateInOneNeedsTwoPlies(t *testing.T) {
	fen := "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	g := mustFEN(t, fen)
	m, ok := engine.NewMinMaxBot(engine.MinMaxConfig{Depth: 2}).BestMove(g)
	if !ok || m.String() != "a1a8" {
		t.Fatalf("depth 2: got %v %v want a1a8", m, ok)
	}
	shallow := engine.NewMinMaxBot(engine.MinMaxConfig{Depth: 1})
	checkLegalAndUntouched(t, shallow, mustFEN(t, fen))
}

func TestPlayMatchTerminates(t *testing.T) {
	g := game.New()
	white, black := engine.NewRandomBot(), engine.NewRandomBot()
	moves := 0
	res, err := engine.PlayMatch(g, white, black, 60, func(*game.Game, board.Move) { moves++ })
	if err != nil {
		t.Fatal(err)
	}
	if moves != len(res.Moves) || g.Ply() != moves {
		t.Fatalf("hook saw %d moves, result %d, game %d", moves, len(res.Moves), g.Ply())
	}
	if !res.Truncated && !res.Status.IsTerminal() {
		t.Fatalf("match stopped in progress without truncation")
	}
	if res.Truncated && moves != 60 {
		t.Fatalf("truncated after %d plies", moves)
	}
}

func TestPlayMatchFinishedGame(t *testing.T) {
	g := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	res, err := engine.PlayMatch(g, engine.NewRandomBot(), engine.NewRandomBot(), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != game.TieByStalemate || len(res.Moves) != 0 {
		t.Fatalf("got %v after %d moves", res.Status, len(res.Moves))
	}
}
