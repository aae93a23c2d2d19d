package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"chessbots/alloc"
	"chessbots/board"
	"chessbots/game"
)

// MinMaxConfig configures MinMaxBot.
type MinMaxConfig struct {
	// Depth is the number of plies searched before the static evaluation.
	// Positions at the last ply are evaluated without looking for mate, so
	// finding a mate in one needs Depth >= 2.
	Depth int
}

// DefaultMinMaxConfig returns a three-ply search.
func DefaultMinMaxConfig() MinMaxConfig {
	return MinMaxConfig{Depth: 3}
}

// MinMaxBot runs a fixed-depth minimax search without pruning. White
// maximizes and Black minimizes the evaluation.
type MinMaxBot struct {
	cfg     MinMaxConfig
	nodes   alloc.Allocator
	visited uint64
}

// NewMinMaxBot clamps cfg.Depth to [1, alloc.MaxDepth) and allocates the move buffers.
func NewMinMaxBot(cfg MinMaxConfig) *MinMaxBot {
	if cfg.Depth < 1 {
		cfg.Depth = 1
	}
	if cfg.Depth >= alloc.MaxDepth {
		cfg.Depth = alloc.MaxDepth - 1
	}
	return &MinMaxBot{cfg: cfg, nodes: alloc.NewListStackAllocator()}
}

// Name reports the bot kind and depth.
func (bot *MinMaxBot) Name() string { return fmt.Sprintf("minimax(depth=%d)", bot.cfg.Depth) }

// Nodes returns the number of positions visited by the last search.
func (bot *MinMaxBot) Nodes() uint64 { return bot.visited }

// BestMove searches every legal move of g to the configured depth.
func (bot *MinMaxBot) BestMove(g *game.Game) (board.Move, bool) {
	sim := g.Clone()
	bot.nodes.Clean()
	bot.visited = 0

	root := bot.nodes.Node(0)
	root.Fill(sim.Board())
	if root.IsEmpty() {
		return board.Move{}, false
	}
	moves := root.Take()
	defer root.Install(moves)

	white := sim.SideToMove() == board.White
	best, bestScore := moves[0], 0
	for i, m := range moves {
		score := bot.search(sim, m, 1)
		log.Trace().Str("move", m.String()).Int("score", score).Msg("minimax-root-move")
		if i == 0 || better(score, bestScore, white) {
			best, bestScore = m, score
		}
	}
	log.Debug().
		Str("move", best.String()).
		Int("score", bestScore).
		Uint64("nodes", bot.visited).
		Msg("minimax-best-move")
	return best, true
}

// search plays m, reached at the given ply from the root, and returns the
// minimax value of the resulting position.
func (bot *MinMaxBot) search(g *game.Game, m board.Move, ply int) int {
	bot.visited++
	g.DoMove(m)
	defer g.UndoMove()

	if s := g.Status(); s.IsTerminal() {
		return terminalScore(s, ply)
	}
	if ply >= bot.cfg.Depth {
		return Evaluate(g)
	}

	node := bot.nodes.Node(ply)
	node.Fill(g.Board())
	if node.IsEmpty() {
		g.CheckForMateOrStalemate()
		return terminalScore(g.Status(), ply)
	}

	// the list leaves the node so deeper plies cannot clobber it
	moves := node.Take()
	white := g.SideToMove() == board.White
	best := 0
	for i, child := range moves {
		score := bot.search(g, child, ply+1)
		if i == 0 || better(score, best, white) {
			best = score
		}
	}
	node.Install(moves)
	return best
}

// terminalScore scores a finished game, preferring faster wins.
func terminalScore(s game.Status, ply int) int {
	switch s {
	case game.WhiteWon:
		return MateValue - ply
	case game.BlackWon:
		return -MateValue + ply
	}
	return DrawScore
}
