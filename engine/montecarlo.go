package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
	"lukechampine.com/frand"

	"chessbots/alloc"
	"chessbots/board"
	"chessbots/game"
)

// MonteCarloConfig configures MonteCarloBot.
type MonteCarloConfig struct {
	// Rollouts is the number of random games played after each root move.
	Rollouts int
	// RolloutPlies caps the length of a random game.
	RolloutPlies int
}

// DefaultMonteCarloConfig returns 20 rollouts of at most 100 plies.
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{Rollouts: 20, RolloutPlies: 100}
}

// MonteCarloBot scores every root move by the results of random games
// played from the position it reaches: +1 for a White win, -1 for a Black
// win and 0 otherwise, including games cut off by RolloutPlies.
type MonteCarloBot struct {
	cfg     MonteCarloConfig
	nodes   *alloc.ListStackAllocator
	results []float64
}

// NewMonteCarloBot fills in defaults for non-positive settings.
func NewMonteCarloBot(cfg MonteCarloConfig) *MonteCarloBot {
	if cfg.Rollouts < 1 {
		cfg.Rollouts = 1
	}
	if cfg.RolloutPlies < 1 {
		cfg.RolloutPlies = DefaultMonteCarloConfig().RolloutPlies
	}
	return &MonteCarloBot{
		cfg:     cfg,
		nodes:   alloc.NewListStackAllocator(),
		results: make([]float64, cfg.Rollouts),
	}
}

// Name reports the bot kind and rollout count.
func (bot *MonteCarloBot) Name() string {
	return fmt.Sprintf("montecarlo(rollouts=%d)", bot.cfg.Rollouts)
}

// BestMove picks the root move with the best mean rollout result for the
// side to move.
func (bot *MonteCarloBot) BestMove(g *game.Game) (board.Move, bool) {
	sim := g.Clone()
	bot.nodes.Clean()

	root := bot.nodes.Fill(0, sim.Board())
	if root.IsEmpty() {
		return board.Move{}, false
	}
	moves := root.Take()
	defer root.Install(moves)

	white := sim.SideToMove() == board.White
	best, bestMean := moves[0], 0.0
	for i, m := range moves {
		sim.DoMove(m)
		for r := range bot.results {
			bot.results[r] = float64(bot.rollout(sim))
		}
		sim.UndoMove()

		mean, std := stat.MeanStdDev(bot.results, nil)
		log.Trace().
			Str("move", m.String()).
			Float64("mean", mean).
			Float64("stddev", std).
			Msg("montecarlo-root-move")
		if i == 0 || (white && mean > bestMean) || (!white && mean < bestMean) {
			best, bestMean = m, mean
		}
	}
	log.Debug().Str("move", best.String()).Float64("mean", bestMean).Msg("montecarlo-best-move")
	return best, true
}

// rollout plays random moves on a copy of g until the game ends or the ply
// cap is reached, and returns the result from White's point of view.
func (bot *MonteCarloBot) rollout(g *game.Game) int {
	walk := g.Clone()
	for ply := 0; ply < bot.cfg.RolloutPlies && walk.Status() == game.InAction; ply++ {
		node := bot.nodes.Fill(1, walk.Board())
		if node.IsEmpty() {
			walk.CheckForMateOrStalemate()
			break
		}
		walk.DoMove(node.Moves()[frand.Intn(node.Len())])
	}
	switch walk.Status() {
	case game.WhiteWon:
		return 1
	case game.BlackWon:
		return -1
	}
	return 0
}
