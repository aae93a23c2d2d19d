package board

import "fmt"

// Undo carries what UndoMove needs besides the move: the rights state from
// before the move and the type of the piece it captured.
type Undo struct {
	Rights   RightsState
	Captured PieceType
}

// DoMove applies m, which must be pseudo-legal for the position, and
// returns the information needed to revert it.
//
// The en passant and castling contributions are taken out of the hash up
// front and put back once the handler has updated them, so the hash tracks
// the rights through any combination of changes.
func (b *Board) DoMove(m Move) Undo {
	moved := b.squares[m.From]
	us := b.sideToMove
	if moved == NoPiece || moved.Color() != us {
		panic(fmt.Sprintf("board: DoMove %v: no %v piece on %v", m, us, m.From))
	}
	u := Undo{Rights: b.state, Captured: NoPieceType}

	if ep := b.state.EnPassant; ep != NoSquare {
		b.hash ^= zobristEnPassant[ep.File()]
		b.state.EnPassant = NoSquare
	}
	b.hash ^= castleKeys[b.state.Castling]
	b.state.Captured = NoPieceType

	pt := moved.Type()
	switch {
	case m.Flag == Normal:
		b.quietMove(us, pt, m.From, m.To)
	case m.Flag == Capture:
		u.Captured = b.capture(us, pt, m.From, m.To)
	case m.Flag == DoublePawnPush:
		b.quietMove(us, Pawn, m.From, m.To)
		b.state.EnPassant = (m.From + m.To) / 2
	case m.Flag == EnPassantCapture:
		b.enPassant(us, m.From, m.To)
		u.Captured = Pawn
	case m.Flag == Castling:
		b.castle(us, m.From, m.To)
	case m.IsPromotion():
		if m.IsCapture() {
			u.Captured = b.capture(us, Pawn, m.From, m.To)
		} else {
			b.quietMove(us, Pawn, m.From, m.To)
		}
		b.toggle(Pawn, us, m.To)
		b.toggle(m.PromotionType(), us, m.To)
	default:
		panic(fmt.Sprintf("board: DoMove %v: unknown flag %v", m, m.Flag))
	}

	b.hash ^= castleKeys[b.state.Castling]
	if ep := b.state.EnPassant; ep != NoSquare {
		b.hash ^= zobristEnPassant[ep.File()]
	}
	b.sideToMove = us.Other()
	b.hash ^= zobristBlack
	return u
}

// UndoMove reverts m, the last move applied, using the Undo that DoMove
// returned for it.
func (b *Board) UndoMove(m Move, u Undo) {
	b.sideToMove = b.sideToMove.Other()
	b.hash ^= zobristBlack
	if ep := b.state.EnPassant; ep != NoSquare {
		b.hash ^= zobristEnPassant[ep.File()]
	}
	b.hash ^= castleKeys[b.state.Castling]

	us := b.sideToMove
	pt := b.squares[m.To].Type()
	switch {
	case m.Flag == Normal, m.Flag == DoublePawnPush:
		b.toggle(pt, us, m.To)
		b.toggle(pt, us, m.From)
	case m.Flag == Capture:
		b.toggle(pt, us, m.To)
		b.restoreVictim(us.Other(), u.Captured, m.To)
		b.toggle(pt, us, m.From)
	case m.Flag == EnPassantCapture:
		b.toggle(Pawn, us, m.To)
		b.toggle(Pawn, us.Other(), enPassantVictim(us, m.To))
		b.toggle(Pawn, us, m.From)
	case m.Flag == Castling:
		rookFrom, rookTo := castlingRookMove(m.To)
		b.toggle(Rook, us, rookTo)
		b.toggle(Rook, us, rookFrom)
		b.toggle(King, us, m.To)
		b.toggle(King, us, m.From)
	case m.IsPromotion():
		b.toggle(pt, us, m.To)
		if m.IsCapture() {
			b.restoreVictim(us.Other(), u.Captured, m.To)
		}
		b.toggle(Pawn, us, m.From)
	default:
		panic(fmt.Sprintf("board: UndoMove %v: unknown flag %v", m, m.Flag))
	}

	b.state = u.Rights
	b.hash ^= castleKeys[b.state.Castling]
	if ep := b.state.EnPassant; ep != NoSquare {
		b.hash ^= zobristEnPassant[ep.File()]
	}
}

// ==========================
// Handlers
// ==========================

func (b *Board) quietMove(us Color, pt PieceType, from, to Square) {
	b.toggle(pt, us, from)
	b.toggle(pt, us, to)
	b.state.Castling &= castlingUpdate[from]
}

// capture moves a piece onto an enemy-occupied square and returns the type
// it removed. Landing on a rook home square clears that rook's right.
func (b *Board) capture(us Color, pt PieceType, from, to Square) PieceType {
	victim := b.squares[to]
	if victim == NoPiece || victim.Color() == us {
		panic(fmt.Sprintf("board: capture %v%v: no enemy piece", from, to))
	}
	vt := victim.Type()
	b.toggle(pt, us, from)
	b.toggle(vt, us.Other(), to)
	b.toggle(pt, us, to)
	b.state.Castling &= castlingUpdate[from] & castlingUpdate[to]
	b.state.Captured = vt
	return vt
}

func (b *Board) restoreVictim(them Color, victim PieceType, sq Square) {
	if victim >= NoPieceType {
		panic(fmt.Sprintf("board: undo capture on %v without a captured type", sq))
	}
	b.toggle(victim, them, sq)
}

func (b *Board) enPassant(us Color, from, to Square) {
	b.toggle(Pawn, us, from)
	b.toggle(Pawn, us.Other(), enPassantVictim(us, to))
	b.toggle(Pawn, us, to)
	b.state.Captured = Pawn
}

// enPassantVictim returns the square of the pawn taken by an en passant
// capture of side us landing on to.
func enPassantVictim(us Color, to Square) Square {
	if us == White {
		return to - 8
	}
	return to + 8
}

func (b *Board) castle(us Color, from, to Square) {
	rookFrom, rookTo := castlingRookMove(to)
	b.toggle(King, us, from)
	b.toggle(King, us, to)
	b.toggle(Rook, us, rookFrom)
	b.toggle(Rook, us, rookTo)
	b.state.Castling &= castlingUpdate[from] & castlingUpdate[to]
}
