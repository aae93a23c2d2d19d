package board

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// MoveFlag tells DoMove which handler applies a move.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	Capture
	DoublePawnPush
	EnPassantCapture
	Castling
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
	PromoteKnightCapture
	PromoteBishopCapture
	PromoteRookCapture
	PromoteQueenCapture
)

var moveFlagNames = [...]string{
	"normal", "capture", "double-push", "en-passant", "castling",
	"promote-n", "promote-b", "promote-r", "promote-q",
	"promote-n-capture", "promote-b-capture", "promote-r-capture", "promote-q-capture",
}

func (f MoveFlag) String() string {
	if int(f) >= len(moveFlagNames) {
		return fmt.Sprintf("MoveFlag(%d)", uint8(f))
	}
	return moveFlagNames[f]
}

// Move is a from/to pair plus the flag describing how to apply it.
type Move struct {
	From Square
	To   Square
	Flag MoveFlag
}

// IsCapture reports whether the move removes an enemy piece, en passant included.
func (m Move) IsCapture() bool {
	switch m.Flag {
	case Capture, EnPassantCapture,
		PromoteKnightCapture, PromoteBishopCapture, PromoteRookCapture, PromoteQueenCapture:
		return true
	}
	return false
}

// IsPromotion reports whether a pawn is replaced on the last rank.
func (m Move) IsPromotion() bool { return m.Flag >= PromoteKnight && m.Flag <= PromoteQueenCapture }

// PromotionType returns the piece a pawn becomes, or NoPieceType.
func (m Move) PromotionType() PieceType {
	switch m.Flag {
	case PromoteKnight, PromoteKnightCapture:
		return Knight
	case PromoteBishop, PromoteBishopCapture:
		return Bishop
	case PromoteRook, PromoteRookCapture:
		return Rook
	case PromoteQueen, PromoteQueenCapture:
		return Queen
	}
	return NoPieceType
}

// promotionFlag returns the promotion flag for pt, with or without capture.
func promotionFlag(pt PieceType, capture bool) MoveFlag {
	f := PromoteKnight + MoveFlag(pt-Knight)
	if capture {
		f += PromoteKnightCapture - PromoteKnight
	}
	return f
}

var promotionChars = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders the move in UCI notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if pt := m.PromotionType(); pt != NoPieceType {
		s += string(promotionChars[pt])
	}
	return s
}

// ParseMove resolves a UCI string against the legal moves of the position,
// which supplies the flag the string itself does not carry.
func (b *Board) ParseMove(uci string) (Move, error) {
	uci = strings.TrimSpace(strings.ToLower(uci))
	if len(uci) < 4 || len(uci) > 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, uci)
	}
	from, err := ParseSquare(uci[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(uci[2:4])
	if err != nil {
		return Move{}, err
	}
	promo := NoPieceType
	if len(uci) == 5 {
		switch uci[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return Move{}, fmt.Errorf("%w: bad promotion piece in %q", ErrInvalidMove, uci)
		}
	}

	moves := b.GenerateAllMoves()
	i := slices.IndexFunc(moves, func(m Move) bool {
		return m.From == from && m.To == to && m.PromotionType() == promo
	})
	if i < 0 {
		return Move{}, fmt.Errorf("%w: %s in %s", ErrIllegalMove, uci, b.ToFEN())
	}
	return moves[i], nil
}

// IsLegal reports whether m is among the legal moves of the position.
func (b *Board) IsLegal(m Move) bool {
	return slices.Contains(b.GenerateAllMoves(), m)
}
