package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Clocks holds the move counters of a FEN record. The board does not track
// them; the game layer owns the half-move clock.
type Clocks struct {
	HalfMove int
	FullMove int
}

// ParseFEN parses a FEN string into a board, discarding the move counters.
func ParseFEN(fen string) (*Board, error) {
	b, _, err := DecodeFEN(fen)
	return b, err
}

// DecodeFEN parses a FEN string into a board and its move counters. The
// counters are optional and default to 0 and 1.
func DecodeFEN(fen string) (*Board, Clocks, error) {
	clocks := Clocks{HalfMove: 0, FullMove: 1}
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, clocks, fmt.Errorf("%w: not enough fields in %q", ErrInvalidFEN, fen)
	}

	b := emptyBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, clocks, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			idx := strings.IndexRune(pieceChars, ch)
			if idx <= 0 {
				return nil, clocks, fmt.Errorf("%w: unrecognized piece %q", ErrInvalidFEN, ch)
			}
			if file >= 8 {
				return nil, clocks, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			p := Piece(idx)
			b.toggle(p.Type(), p.Color(), NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return nil, clocks, fmt.Errorf("%w: rank %d does not have 8 files", ErrInvalidFEN, rank+1)
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, clocks, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			i := strings.IndexRune("KQkq", ch)
			if i < 0 {
				return nil, clocks, fmt.Errorf("%w: castling right %q", ErrInvalidFEN, ch)
			}
			b.state.Castling |= 1 << i
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, clocks, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, fields[3])
		}
		b.state.EnPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, clocks, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		clocks.HalfMove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, clocks, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		clocks.FullMove = n
	}

	b.hash = b.ComputeHash()
	if err := b.Validate(); err != nil {
		return nil, clocks, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return b, clocks, nil
}

// ToFEN renders the position with the counters at their defaults.
func (b *Board) ToFEN() string {
	return b.FEN(Clocks{HalfMove: 0, FullMove: 1})
}

// FEN renders the position with the given move counters.
func (b *Board) FEN(clocks Clocks) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(b.state.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.state.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(clocks.HalfMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(clocks.FullMove))
	return sb.String()
}
