package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboards exposes the per-piece bitboards of one side.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Board is a chess position. The bitboards are authoritative; the mailbox
// and the hash are caches that every mutation keeps in step through toggle.
//
// A Board holds no slices or maps, so plain assignment copies it and two
// boards can be compared with ==.
type Board struct {
	pieces   [6][2]uint64 // pieces[type][color]
	occupied [2]uint64    // union of a side's piece bitboards
	squares  [64]Piece    // mailbox mirror of the bitboards

	sideToMove Color
	state      RightsState

	hash uint64 // zobrist key, updated incrementally
}

// NewBoard returns the standard initial position.
func NewBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start position: " + err.Error())
	}
	return b
}

// emptyBoard returns a board with no pieces, White to move and no rights.
func emptyBoard() *Board {
	b := &Board{sideToMove: White}
	b.state = RightsState{Castling: NoCastling, EnPassant: NoSquare, Captured: NoPieceType}
	b.hash = b.ComputeHash()
	return b
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Hash returns the current zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// Rights returns the castling rights, en passant target and last captured type.
func (b *Board) Rights() RightsState { return b.state }

// CastlingRights returns the remaining castling permissions.
func (b *Board) CastlingRights() CastlingRights { return b.state.Castling }

// EnPassantSquare returns the en passant target square or NoSquare.
func (b *Board) EnPassantSquare() Square { return b.state.EnPassant }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// PieceBitboard returns the bitboard of one piece type of one side.
func (b *Board) PieceBitboard(pt PieceType, c Color) uint64 { return b.pieces[pt][c] }

// Occupancy returns the squares occupied by a side.
func (b *Board) Occupancy(c Color) uint64 { return b.occupied[c] }

// AllOccupancy returns every occupied square.
func (b *Board) AllOccupancy() uint64 { return b.occupied[White] | b.occupied[Black] }

// PieceCount returns the number of pieces on the board, kings included.
func (b *Board) PieceCount() int { return bits.OnesCount64(b.AllOccupancy()) }

// Bitboards returns the per-piece bitboards for the requested side.
func (b *Board) Bitboards(c Color) Bitboards {
	return Bitboards{
		Pawns:   b.pieces[Pawn][c],
		Knights: b.pieces[Knight][c],
		Bishops: b.pieces[Bishop][c],
		Rooks:   b.pieces[Rook][c],
		Queens:  b.pieces[Queen][c],
		Kings:   b.pieces[King][c],
		All:     b.occupied[c],
	}
}

// KingSquare returns the square of c's king. A board without one is corrupt.
func (b *Board) KingSquare(c Color) Square {
	k := b.pieces[King][c]
	if k == 0 {
		panic(fmt.Sprintf("board: no %v king", c))
	}
	return Square(bits.TrailingZeros64(k))
}

// ForEachPiece calls fn for every occupied square in index order.
func (b *Board) ForEachPiece(fn func(sq Square, p Piece)) {
	occ := b.AllOccupancy()
	for occ != 0 {
		sq := Square(popLSB(&occ))
		fn(sq, b.squares[sq])
	}
}

// toggle flips the presence of a piece on a square. It keeps the piece
// bitboard, the side occupancy, the mailbox and the hash in agreement and is
// its own inverse, so do and undo are built from the same calls.
func (b *Board) toggle(pt PieceType, c Color, sq Square) {
	m := bit(sq)
	b.pieces[pt][c] ^= m
	b.occupied[c] ^= m
	if b.occupied[c]&m != 0 {
		b.squares[sq] = NewPiece(pt, c)
	} else {
		b.squares[sq] = NoPiece
	}
	b.hash ^= zobristPiece[pt][c][sq]
}

// Validate cross-checks the redundant representations of the position.
func (b *Board) Validate() error {
	if b.occupied[White]&b.occupied[Black] != 0 {
		return fmt.Errorf("board: sides overlap at %#x", b.occupied[White]&b.occupied[Black])
	}
	for c := White; c <= Black; c++ {
		var union uint64
		for pt := Pawn; pt <= King; pt++ {
			if union&b.pieces[pt][c] != 0 {
				return fmt.Errorf("board: %v %v overlaps another piece type", c, pt)
			}
			union |= b.pieces[pt][c]
		}
		if union != b.occupied[c] {
			return fmt.Errorf("board: %v occupancy %#x does not match pieces %#x", c, b.occupied[c], union)
		}
		if n := bits.OnesCount64(b.pieces[King][c]); n != 1 {
			return fmt.Errorf("board: %v has %d kings", c, n)
		}
	}
	for sq := Square(0); sq < 64; sq++ {
		want := NoPiece
		for pt := Pawn; pt <= King && want == NoPiece; pt++ {
			for c := White; c <= Black; c++ {
				if b.pieces[pt][c]&bit(sq) != 0 {
					want = NewPiece(pt, c)
				}
			}
		}
		if b.squares[sq] != want {
			return fmt.Errorf("board: mailbox %v holds %v, bitboards say %v", sq, b.squares[sq], want)
		}
	}
	if (b.pieces[Pawn][White]|b.pieces[Pawn][Black])&(rank1|rank8) != 0 {
		return fmt.Errorf("board: pawn on first or last rank")
	}
	if ep := b.state.EnPassant; ep != NoSquare {
		us := b.sideToMove
		wantRank := 5
		if us == Black {
			wantRank = 2
		}
		if !ep.Valid() || ep.Rank() != wantRank {
			return fmt.Errorf("board: bad en passant square %v with %v to move", ep, us)
		}
		if b.squares[ep] != NoPiece {
			return fmt.Errorf("board: en passant square %v is occupied", ep)
		}
		if victim := enPassantVictim(us, ep); b.squares[victim] != NewPiece(Pawn, us.Other()) {
			return fmt.Errorf("board: no %v pawn on %v behind en passant square %v", us.Other(), victim, ep)
		}
	}
	if h := b.ComputeHash(); h != b.hash {
		return fmt.Errorf("board: hash %#x, recomputed %#x", b.hash, h)
	}
	return nil
}

// String renders the position as an 8x8 grid, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sb.WriteString(b.squares[NewSquare(file, rank)].String())
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
