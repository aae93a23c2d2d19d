package game

import "chessbots/board"

// Status is the outcome of a game, or InAction while it continues.
type Status uint8

const (
	InAction Status = iota
	WhiteWon
	BlackWon
	TieBy50Rule
	TieByThreefoldRepetition
	TieByInsufficientMaterial
	TieByStalemate
)

var statusNames = [...]string{
	InAction:                  "in-action",
	WhiteWon:                  "white-won",
	BlackWon:                  "black-won",
	TieBy50Rule:               "tie-fifty-move-rule",
	TieByThreefoldRepetition:  "tie-threefold-repetition",
	TieByInsufficientMaterial: "tie-insufficient-material",
	TieByStalemate:            "tie-stalemate",
}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool { return s != InAction }

// IsDraw reports whether the game ended without a winner.
func (s Status) IsDraw() bool { return s >= TieBy50Rule }

// Winner returns the winning side. ok is false for draws and running games.
func (s Status) Winner() (c board.Color, ok bool) {
	switch s {
	case WhiteWon:
		return board.White, true
	case BlackWon:
		return board.Black, true
	}
	return board.White, false
}

// wonBy returns the status for a win of side c.
func wonBy(c board.Color) Status {
	if c == board.White {
		return WhiteWon
	}
	return BlackWon
}
