package board

import "errors"

var (
	// ErrInvalidFEN is returned for FEN strings that cannot describe a position.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrInvalidMove is returned for malformed UCI move strings.
	ErrInvalidMove = errors.New("invalid move")
	// ErrIllegalMove is returned for well formed moves that are not legal in the position.
	ErrIllegalMove = errors.New("illegal move")
)
