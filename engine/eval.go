package engine

import (
	"math/bits"

	"chessbots/board"
	"chessbots/game"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MateValue is the score of a won game, from White's point of view.
	MateValue int = 20000
	DrawScore int = 0
)

var pieceValue = [6]int{100, 320, 330, 500, 900, 0}

// Piece-square tables, written as seen from White with rank 8 on the first
// row. White looks up sq^56, Black looks up sq directly.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMiddleGameTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndGameTable = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

var pieceTables = [5]*[64]int{&pawnTable, &knightTable, &bishopTable, &rookTable, &queenTable}

// Evaluate scores the position in centipawns, positive when White is better.
// Finished games score ±MateValue or DrawScore.
func Evaluate(g *game.Game) int {
	switch s := g.Status(); {
	case s == game.WhiteWon:
		return MateValue
	case s == game.BlackWon:
		return -MateValue
	case s.IsDraw():
		return DrawScore
	}
	return EvaluateBoard(g.Board())
}

// EvaluateBoard is the static material and piece-square score of b.
func EvaluateBoard(b *board.Board) int {
	kingTable := &kingMiddleGameTable
	if b.PieceBitboard(board.Queen, board.White)|b.PieceBitboard(board.Queen, board.Black) == 0 {
		kingTable = &kingEndGameTable
	}

	score := 0
	for pt := board.Pawn; pt <= board.King; pt++ {
		table := kingTable
		if pt != board.King {
			table = pieceTables[pt]
		}
		score += countPieceTable(b.PieceBitboard(pt, board.White), b.PieceBitboard(pt, board.Black), pieceValue[pt], table)
	}
	return score
}

func countPieceTable(white, black uint64, value int, table *[64]int) (score int) {
	score += value * (bits.OnesCount64(white) - bits.OnesCount64(black))
	for x := white; x != 0; x &= x - 1 {
		score += table[bits.TrailingZeros64(x)^56]
	}
	for x := black; x != 0; x &= x - 1 {
		score -= table[bits.TrailingZeros64(x)]
	}
	return score
}
