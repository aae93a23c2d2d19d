// Package engine contains move-choosing bots built on the game layer and a
// loop that plays them against each other.
package engine

import (
	"errors"
	"fmt"

	"chessbots/board"
	"chessbots/game"
)

var (
	// ErrNoLegalMoves is returned when a bot is asked to move in a position without moves.
	ErrNoLegalMoves = errors.New("no legal moves")
	// ErrUnknownBot is returned by NewBot for an unrecognized kind.
	ErrUnknownBot = errors.New("unknown bot")
)

// Bot chooses a move for the side to move. BestMove must leave g as it
// found it and reports false when there is no legal move.
//
// Bots keep scratch state between calls and are not safe for concurrent use.
type Bot interface {
	Name() string
	BestMove(g *game.Game) (board.Move, bool)
}

// Options configures the bots NewBot builds.
type Options struct {
	MinMax     MinMaxConfig
	MonteCarlo MonteCarloConfig
}

// DefaultOptions returns the default configuration of every bot.
func DefaultOptions() Options {
	return Options{
		MinMax:     DefaultMinMaxConfig(),
		MonteCarlo: DefaultMonteCarloConfig(),
	}
}

// BotKinds lists the names NewBot accepts.
var BotKinds = []string{"random", "montecarlo", "minimax"}

// NewBot builds a bot by name.
func NewBot(kind string, opts Options) (Bot, error) {
	switch kind {
	case "random":
		return NewRandomBot(), nil
	case "montecarlo", "mc":
		return NewMonteCarloBot(opts.MonteCarlo), nil
	case "minimax", "minmax":
		return NewMinMaxBot(opts.MinMax), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownBot, kind, BotKinds)
}

// better reports whether score improves on best for the side choosing.
func better(score, best int, white bool) bool {
	if white {
		return score > best
	}
	return score < best
}
