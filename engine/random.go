package engine

import (
	"lukechampine.com/frand"

	"chessbots/board"
	"chessbots/game"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	buf []board.Move
}

// NewRandomBot returns a bot with its move buffer preallocated.
func NewRandomBot() *RandomBot {
	return &RandomBot{buf: make([]board.Move, 0, board.MaxMoves)}
}

// Name returns "random".
func (*RandomBot) Name() string { return "random" }

// BestMove picks one of the legal moves of g with equal probability.
func (bot *RandomBot) BestMove(g *game.Game) (board.Move, bool) {
	bot.buf = g.Board().GenerateMovesInto(bot.buf)
	if len(bot.buf) == 0 {
		return board.Move{}, false
	}
	return bot.buf[frand.Intn(len(bot.buf))], true
}
