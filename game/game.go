// Package game layers move history, repetition tracking and game status on
// top of a board.
package game

import (
	"fmt"

	"golang.org/x/exp/maps"

	"chessbots/board"
)

// fiftyMoveLimit is the half-move clock value that draws the game.
const fiftyMoveLimit = 100

// state is one history entry: everything needed to take a ply back.
type state struct {
	move      board.Move
	undo      board.Undo // prior rights and captured piece type
	prevClock int        // half-move clock before the move
}

// Game is a board plus the bookkeeping the draw rules need.
//
// counts maps every position hash reached since the game (or clone) began
// to the number of times it occurred, the current position included.
type Game struct {
	board         *board.Board
	history       []state
	counts        map[uint64]int
	status        Status
	halfmoveClock int
	fullmoveStart int
}

// New starts a game from the standard initial position.
func New() *Game {
	return FromBoard(board.NewBoard())
}

// FromBoard starts a game from an arbitrary position with a zero half-move
// clock. The game owns b from then on.
func FromBoard(b *board.Board) *Game {
	return newGame(b, board.Clocks{HalfMove: 0, FullMove: 1})
}

// FromFEN starts a game from a FEN record, keeping its half-move clock.
func FromFEN(fen string) (*Game, error) {
	b, clocks, err := board.DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(b, clocks), nil
}

func newGame(b *board.Board, clocks board.Clocks) *Game {
	g := &Game{
		board:         b,
		history:       make([]state, 0, 128),
		counts:        map[uint64]int{b.Hash(): 1},
		status:        InAction,
		halfmoveClock: clocks.HalfMove,
		fullmoveStart: clocks.FullMove,
	}
	g.checkForDraws()
	return g
}

// Clone copies the board, occurrence counts, clock and status. The copy
// starts with an empty history, so it cannot undo past the point of cloning.
func (g *Game) Clone() *Game {
	return &Game{
		board:         g.board.Clone(),
		history:       make([]state, 0, 128),
		counts:        maps.Clone(g.counts),
		status:        g.status,
		halfmoveClock: g.halfmoveClock,
		fullmoveStart: g.FullMoveNumber(),
	}
}

// Board returns the current position. Moves must go through the game so the
// history and counts stay in step; the board is for reading and generation.
func (g *Game) Board() *board.Board { return g.board }

// Status returns the current status.
func (g *Game) Status() Status { return g.status }

// SideToMove reports which side is to play.
func (g *Game) SideToMove() board.Color { return g.board.SideToMove() }

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (g *Game) HalfMoveClock() int { return g.halfmoveClock }

// Ply returns the number of moves made on this game object.
func (g *Game) Ply() int { return len(g.history) }

// Occurrences returns how often the position with the given hash was reached.
func (g *Game) Occurrences(hash uint64) int { return g.counts[hash] }

// Moves returns the moves played on this game object, oldest first.
func (g *Game) Moves() []board.Move {
	out := make([]board.Move, len(g.history))
	for i, s := range g.history {
		out[i] = s.move
	}
	return out
}

// FullMoveNumber returns the FEN move number, which advances after Black moves.
func (g *Game) FullMoveNumber() int {
	full := g.fullmoveStart + len(g.history)/2
	if g.board.SideToMove() == board.White && len(g.history)%2 == 1 {
		full++
	}
	return full
}

// FEN renders the current position including the move counters.
func (g *Game) FEN() string {
	return g.board.FEN(board.Clocks{HalfMove: g.halfmoveClock, FullMove: g.FullMoveNumber()})
}

// LegalMoves returns the legal moves of the current position.
func (g *Game) LegalMoves() []board.Move { return g.board.GenerateAllMoves() }

// DoMove plays m, which must be legal, then checks the draw rules against
// the position it reached. Mate and stalemate are not detected here since
// that needs move generation; see TryUpdateStatus.
func (g *Game) DoMove(m board.Move) {
	clock := g.halfmoveClock + 1
	if m.IsCapture() || m.IsPromotion() || m.Flag == board.DoublePawnPush ||
		g.board.PieceAt(m.From).Type() == board.Pawn {
		clock = 0
	}
	undo := g.board.DoMove(m)
	g.history = append(g.history, state{move: m, undo: undo, prevClock: g.halfmoveClock})
	g.halfmoveClock = clock
	g.counts[g.board.Hash()]++
	g.checkForDraws()
}

// UndoMove takes back the last move and resets the status to InAction.
func (g *Game) UndoMove() {
	n := len(g.history)
	if n == 0 {
		panic("game: UndoMove with empty history")
	}
	g.status = InAction
	s := g.history[n-1]
	g.history = g.history[:n-1]

	h := g.board.Hash()
	switch c := g.counts[h]; {
	case c <= 0:
		panic(fmt.Sprintf("game: UndoMove: position %#x was never counted", h))
	case c == 1:
		delete(g.counts, h)
	default:
		g.counts[h] = c - 1
	}
	g.board.UndoMove(s.move, s.undo)
	g.halfmoveClock = s.prevClock
}

// PlayUCI parses a move in UCI notation and plays it.
func (g *Game) PlayUCI(uci string) error {
	m, err := g.board.ParseMove(uci)
	if err != nil {
		return fmt.Errorf("game: play %s: %w", uci, err)
	}
	g.DoMove(m)
	return nil
}

// checkForDraws applies the fifty-move, repetition and material rules to
// the current position, in that order of precedence.
func (g *Game) checkForDraws() {
	switch {
	case g.halfmoveClock >= fiftyMoveLimit:
		g.status = TieBy50Rule
	case g.counts[g.board.Hash()] >= 3:
		g.status = TieByThreefoldRepetition
	case insufficientMaterial(g.board):
		g.status = TieByInsufficientMaterial
	}
}

// insufficientMaterial reports bare kings, or kings plus a single minor piece.
func insufficientMaterial(b *board.Board) bool {
	switch b.PieceCount() {
	case 2:
		return true
	case 3:
		for c := board.White; c <= board.Black; c++ {
			if b.PieceBitboard(board.Pawn, c)|b.PieceBitboard(board.Rook, c)|b.PieceBitboard(board.Queen, c) != 0 {
				return false
			}
		}
		return true
	}
	return false
}

// TryUpdateStatus generates the legal moves of a running game and, when
// there are none, records mate or stalemate. It returns the status.
func (g *Game) TryUpdateStatus() Status {
	if g.status == InAction && !g.board.HasLegalMoves() {
		g.CheckForMateOrStalemate()
	}
	return g.status
}

// CheckForMateOrStalemate classifies a position already known to have no
// legal moves: the side to move is mated if in check, stalemated otherwise.
func (g *Game) CheckForMateOrStalemate() {
	if g.board.InCheck() {
		g.status = wonBy(g.board.SideToMove().Other())
	} else {
		g.status = TieByStalemate
	}
}
