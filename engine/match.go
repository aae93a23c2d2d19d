package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"chessbots/board"
	"chessbots/game"
)

// MatchResult summarizes a finished or abandoned match.
type MatchResult struct {
	Status game.Status
	Moves  []board.Move
	// Truncated is set when the ply limit stopped a game still in progress.
	Truncated bool
}

// MoveHook is called after every move of a match.
type MoveHook func(g *game.Game, m board.Move)

// PlayMatch lets white and black alternate on g until the game ends or
// maxPlies moves were played. maxPlies <= 0 means no limit. onMove may be nil.
func PlayMatch(g *game.Game, white, black Bot, maxPlies int, onMove MoveHook) (MatchResult, error) {
	res := MatchResult{}
	for ply := 0; ; ply++ {
		if g.TryUpdateStatus().IsTerminal() {
			break
		}
		if maxPlies > 0 && ply >= maxPlies {
			res.Truncated = true
			break
		}
		bot := white
		if g.SideToMove() == board.Black {
			bot = black
		}
		m, ok := bot.BestMove(g)
		if !ok {
			return res, fmt.Errorf("engine: %s to move in %s: %w", bot.Name(), g.FEN(), ErrNoLegalMoves)
		}
		g.DoMove(m)
		res.Moves = append(res.Moves, m)
		log.Debug().
			Int("ply", ply+1).
			Str("bot", bot.Name()).
			Str("move", m.String()).
			Int("eval", Evaluate(g)).
			Msg("match-move")
		if onMove != nil {
			onMove(g, m)
		}
	}
	res.Status = g.Status()
	log.Info().
		Str("status", res.Status.String()).
		Int("plies", len(res.Moves)).
		Bool("truncated", res.Truncated).
		Msg("match-finished")
	return res, nil
}
