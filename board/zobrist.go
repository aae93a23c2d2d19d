package board

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Zobrist keys. Every component of a position contributes an independent key
// and the position hash is the XOR of the keys of whatever is present.
var (
	zobristPiece     [6][2][64]uint64 // piece type, color, square
	zobristCastle    [4]uint64        // one key per castling-right bit
	zobristEnPassant [8]uint64        // en passant target file
	zobristBlack     uint64           // black to move
)

// castleKeys[cr] is the XOR of zobristCastle over the bits set in cr.
var castleKeys [16]uint64

// zobristSeed fixes the key set so hashes are stable across runs.
var zobristSeed = [32]byte{'c', 'h', 'e', 's', 's', 'b', 'o', 't', 's', '-', 'z', 'o', 'b', 'r', 'i', 's', 't'}

func init() {
	initZobrist()
}

func initZobrist() {
	rng := frand.NewCustom(zobristSeed[:], 1024, 12)
	var buf [8]byte
	next := func() uint64 {
		rng.Read(buf[:])
		return binary.LittleEndian.Uint64(buf[:])
	}

	for pt := range zobristPiece {
		for c := range zobristPiece[pt] {
			for sq := range zobristPiece[pt][c] {
				zobristPiece[pt][c][sq] = next()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = next()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = next()
	}
	zobristBlack = next()

	for cr := range castleKeys {
		var key uint64
		for i := range zobristCastle {
			if cr&(1<<i) != 0 {
				key ^= zobristCastle[i]
			}
		}
		castleKeys[cr] = key
	}
}

// ComputeHash recomputes the position hash from scratch. The incrementally
// maintained Hash must always agree with it.
func (b *Board) ComputeHash() uint64 {
	var key uint64
	for pt := Pawn; pt <= King; pt++ {
		for c := White; c <= Black; c++ {
			bb := b.pieces[pt][c]
			for bb != 0 {
				key ^= zobristPiece[pt][c][popLSB(&bb)]
			}
		}
	}
	key ^= castleKeys[b.state.Castling&AllCastling]
	if b.state.EnPassant != NoSquare {
		key ^= zobristEnPassant[b.state.EnPassant.File()]
	}
	if b.sideToMove == Black {
		key ^= zobristBlack
	}
	return key
}
