package board

import "fmt"

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. The numeric values index the
// per-type bitboards and the zobrist table.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King

	NoPieceType PieceType = 6
)

var pieceTypeNames = [7]string{"pawn", "knight", "bishop", "rook", "queen", "king", "none"}

func (pt PieceType) String() string {
	if pt > NoPieceType {
		return fmt.Sprintf("PieceType(%d)", uint8(pt))
	}
	return pieceTypeNames[pt]
}

// Piece is a mailbox entry: a piece type together with its owner.
// The zero value is an empty square.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 7
	BlackKnight Piece = 8
	BlackBishop Piece = 9
	BlackRook   Piece = 10
	BlackQueen  Piece = 11
	BlackKing   Piece = 12
)

// NewPiece combines a piece type with a side.
func NewPiece(pt PieceType, c Color) Piece {
	return Piece(1 + uint8(c)*6 + uint8(pt))
}

// Type returns the colorless type, NoPieceType for an empty square.
func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType((p - 1) % 6)
}

// Color returns the owner. NoPiece reports White.
func (p Piece) Color() Color {
	if p <= WhiteKing {
		return White
	}
	return Black
}

const pieceChars = ".PNBRQKpnbrqk"

func (p Piece) String() string {
	if int(p) >= len(pieceChars) {
		return "?"
	}
	return pieceChars[p : p+1]
}

// Square is a board index in 0..63: a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int8

// NoSquare marks an absent square, e.g. no en passant target.
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A8 Square = iota + 56
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 0-based file and rank.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the 0-based file (a = 0).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the 0-based rank (rank 1 = 0).
func (sq Square) Rank() int { return int(sq) >> 3 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: bad square %q", ErrInvalidMove, s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// CastlingRights is a 4-bit set of the remaining castling permissions.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	out := make([]byte, 0, 4)
	for i, ch := range "KQkq" {
		if cr&(1<<i) != 0 {
			out = append(out, byte(ch))
		}
	}
	return string(out)
}

// castlingUpdate[sq] is ANDed into the rights whenever a move leaves or
// lands on sq. Only the king and rook home squares clear anything.
var castlingUpdate = func() (t [64]CastlingRights) {
	for i := range t {
		t[i] = AllCastling
	}
	t[A1] = AllCastling &^ CastleWhiteQueen
	t[E1] = AllCastling &^ (CastleWhiteKing | CastleWhiteQueen)
	t[H1] = AllCastling &^ CastleWhiteKing
	t[A8] = AllCastling &^ CastleBlackQueen
	t[E8] = AllCastling &^ (CastleBlackKing | CastleBlackQueen)
	t[H8] = AllCastling &^ CastleBlackKing
	return t
}()

// RightsState is the part of a position that a move can change but
// cannot recompute on undo.
type RightsState struct {
	Castling  CastlingRights
	EnPassant Square    // square a pawn just skipped over, NoSquare if none
	Captured  PieceType // type taken by the move that produced the position
}
