package board

// MaxMoves bounds the number of moves generated for any reachable position.
const MaxMoves = 256

// ==========================
// Attacks
// ==========================

// IsTileAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsTileAttacked(sq Square, by Color) bool {
	s := int(sq)
	// a pawn of by attacks sq exactly when a pawn of the other color on sq
	// would attack the pawn's square
	if pawnAttacks[by.Other()][s]&b.pieces[Pawn][by] != 0 {
		return true
	}
	if knightAttacks[s]&b.pieces[Knight][by] != 0 {
		return true
	}
	if kingAttacks[s]&b.pieces[King][by] != 0 {
		return true
	}
	occ := b.AllOccupancy()
	queens := b.pieces[Queen][by]
	if rookAttacks(s, occ)&(b.pieces[Rook][by]|queens) != 0 {
		return true
	}
	return bishopAttacks(s, occ)&(b.pieces[Bishop][by]|queens) != 0
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	us := b.sideToMove
	return b.IsTileAttacked(b.KingSquare(us), us.Other())
}

// ==========================
// Legal generation
// ==========================

// GenerateAllMoves returns the legal moves in a freshly allocated slice.
func (b *Board) GenerateAllMoves() []Move {
	return b.GenerateMovesInto(make([]Move, 0, MaxMoves))
}

// GenerateMovesInto writes the legal moves into dst[:0] and returns the
// result. A dst with capacity MaxMoves is never reallocated.
//
// Each pseudo-legal move is played, the mover's king is tested for attack
// and the move is undone. The board is unchanged on return.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	moves := b.GeneratePseudoMovesInto(dst)
	us := b.sideToMove
	them := us.Other()
	legal := moves[:0]
	for _, m := range moves {
		u := b.DoMove(m)
		ok := !b.IsTileAttacked(b.KingSquare(us), them)
		b.UndoMove(m, u)
		if ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move can move at all.
func (b *Board) HasLegalMoves() bool {
	var buf [MaxMoves]Move
	return len(b.GenerateMovesInto(buf[:0])) > 0
}

// ==========================
// Pseudo-legal generation
// ==========================

// GeneratePseudoMovesInto writes every move that obeys piece movement rules,
// ignoring whether the mover's king is left attacked. Pieces are visited in
// the order pawn, knight, bishop, rook, queen, king.
func (b *Board) GeneratePseudoMovesInto(dst []Move) []Move {
	moves := dst[:0]
	us := b.sideToMove
	own := b.occupied[us]
	enemy := b.occupied[us.Other()]
	occ := own | enemy

	moves = b.appendPawnMoves(moves, us, enemy, occ)

	bbs := b.pieces[Knight][us]
	for bbs != 0 {
		from := popLSB(&bbs)
		moves = appendTargets(moves, Square(from), knightAttacks[from]&^own, enemy)
	}
	bbs = b.pieces[Bishop][us]
	for bbs != 0 {
		from := popLSB(&bbs)
		moves = appendTargets(moves, Square(from), bishopAttacks(from, occ)&^own, enemy)
	}
	bbs = b.pieces[Rook][us]
	for bbs != 0 {
		from := popLSB(&bbs)
		moves = appendTargets(moves, Square(from), rookAttacks(from, occ)&^own, enemy)
	}
	bbs = b.pieces[Queen][us]
	for bbs != 0 {
		from := popLSB(&bbs)
		att := rookAttacks(from, occ) | bishopAttacks(from, occ)
		moves = appendTargets(moves, Square(from), att&^own, enemy)
	}
	bbs = b.pieces[King][us]
	for bbs != 0 {
		from := popLSB(&bbs)
		moves = appendTargets(moves, Square(from), kingAttacks[from]&^own, enemy)
	}
	return b.appendCastling(moves, us, occ)
}

// appendTargets emits one move per target square, flagged as a capture when
// the square holds an enemy piece.
func appendTargets(moves []Move, from Square, targets, enemy uint64) []Move {
	for targets != 0 {
		to := Square(popLSB(&targets))
		flag := Normal
		if bit(to)&enemy != 0 {
			flag = Capture
		}
		moves = append(moves, Move{From: from, To: to, Flag: flag})
	}
	return moves
}

func (b *Board) appendPawnMoves(moves []Move, us Color, enemy, occ uint64) []Move {
	pawns := b.pieces[Pawn][us]
	if pawns == 0 {
		return moves
	}
	empty := ^occ
	ep := b.state.EnPassant
	captureTargets := enemy
	if ep != NoSquare {
		captureTargets |= bit(ep)
	}

	var single, double, left, right uint64
	var push, leftStep, rightStep int
	var promoRank uint64
	if us == White {
		single = (pawns << 8) & empty
		double = ((single & rank3) << 8) & empty
		left = ((pawns &^ fileA) << 7) & captureTargets
		right = ((pawns &^ fileH) << 9) & captureTargets
		push, leftStep, rightStep = 8, 7, 9
		promoRank = rank8
	} else {
		single = (pawns >> 8) & empty
		double = ((single & rank6) >> 8) & empty
		left = ((pawns &^ fileA) >> 9) & captureTargets
		right = ((pawns &^ fileH) >> 7) & captureTargets
		push, leftStep, rightStep = -8, -9, -7
		promoRank = rank1
	}

	moves = appendPawnTargets(moves, single, push, false, ep, promoRank)
	for double != 0 {
		to := Square(popLSB(&double))
		moves = append(moves, Move{From: to - Square(2*push), To: to, Flag: DoublePawnPush})
	}
	moves = appendPawnTargets(moves, left, leftStep, true, ep, promoRank)
	return appendPawnTargets(moves, right, rightStep, true, ep, promoRank)
}

// appendPawnTargets emits pawn moves to each target square, reached from
// the square step behind it.
func appendPawnTargets(moves []Move, targets uint64, step int, capture bool, ep Square, promoRank uint64) []Move {
	for targets != 0 {
		to := Square(popLSB(&targets))
		from := to - Square(step)
		switch {
		case bit(to)&promoRank != 0:
			for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
				moves = append(moves, Move{From: from, To: to, Flag: promotionFlag(pt, capture)})
			}
		case capture && to == ep:
			moves = append(moves, Move{From: from, To: to, Flag: EnPassantCapture})
		case capture:
			moves = append(moves, Move{From: from, To: to, Flag: Capture})
		default:
			moves = append(moves, Move{From: from, To: to, Flag: Normal})
		}
	}
	return moves
}

// castlingMove describes one of the four castling options.
type castlingMove struct {
	right    CastlingRights
	king     Square // king start square
	transit  Square // square the king crosses
	to       Square // king destination
	rookFrom Square
	rookTo   Square
	between  uint64 // squares that must be empty
}

var castlingMoves = [2][2]castlingMove{
	White: {
		{CastleWhiteKing, E1, F1, G1, H1, F1, bit(F1) | bit(G1)},
		{CastleWhiteQueen, E1, D1, C1, A1, D1, bit(B1) | bit(C1) | bit(D1)},
	},
	Black: {
		{CastleBlackKing, E8, F8, G8, H8, F8, bit(F8) | bit(G8)},
		{CastleBlackQueen, E8, D8, C8, A8, D8, bit(B8) | bit(C8) | bit(D8)},
	},
}

// appendCastling emits castling moves whose right is held, whose rook is
// home, whose path is empty and whose king neither starts nor crosses an
// attacked square. Landing in check is left to the legality filter.
func (b *Board) appendCastling(moves []Move, us Color, occ uint64) []Move {
	if b.state.Castling == NoCastling {
		return moves
	}
	them := us.Other()
	for _, c := range castlingMoves[us] {
		if b.state.Castling&c.right == 0 || occ&c.between != 0 {
			continue
		}
		if b.squares[c.king] != NewPiece(King, us) || b.squares[c.rookFrom] != NewPiece(Rook, us) {
			continue
		}
		if b.IsTileAttacked(c.king, them) || b.IsTileAttacked(c.transit, them) {
			continue
		}
		moves = append(moves, Move{From: c.king, To: c.to, Flag: Castling})
	}
	return moves
}

// castlingRookMove returns the rook squares for a castling king destination.
func castlingRookMove(kingTo Square) (from, to Square) {
	for _, side := range castlingMoves {
		for _, c := range side {
			if c.to == kingTo {
				return c.rookFrom, c.rookTo
			}
		}
	}
	panic("board: castling to " + kingTo.String())
}
