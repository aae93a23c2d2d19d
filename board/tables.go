package board

import "math/bits"

// Precomputed attack masks for knights and kings from each square.
var knightAttacks [64]uint64
var kingAttacks [64]uint64

// pawnAttacks[color][sq] is the set of squares a pawn of color attacks from sq.
var pawnAttacks [2][64]uint64

// Ray directions. The first four walk towards higher square indices, the
// last four towards lower ones, which decides how the first blocker is found.
const (
	north = iota
	east
	northEast
	northWest
	south
	west
	southEast
	southWest
)

var rookDirections = [4]int{north, east, south, west}
var bishopDirections = [4]int{northEast, northWest, southEast, southWest}

// rays[dir][sq] holds every square reachable from sq in direction dir on an
// empty board, excluding sq itself.
var rays [8][64]uint64

var directionSteps = [8][2]int{
	north:     {1, 0},
	east:      {0, 1},
	northEast: {1, 1},
	northWest: {1, -1},
	south:     {-1, 0},
	west:      {0, -1},
	southEast: {-1, 1},
	southWest: {-1, -1},
}

// Rank and file masks used by pawn generation.
const (
	fileA uint64 = 0x0101010101010101
	fileH uint64 = 0x8080808080808080
	rank1 uint64 = 0x00000000000000FF
	rank3 uint64 = 0x0000000000FF0000
	rank6 uint64 = 0x0000FF0000000000
	rank8 uint64 = 0xFF00000000000000
)

func init() {
	initLeaperTables()
	initRays()
}

func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	for sq := 0; sq < 64; sq++ {
		knightAttacks[sq] = offsetMask(sq, knightOffsets[:])
		kingAttacks[sq] = offsetMask(sq, directionSteps[:])

		// a pawn attacks diagonally forward: north for White, south for Black
		pawnAttacks[White][sq] = offsetMask(sq, [][2]int{{1, -1}, {1, 1}})
		pawnAttacks[Black][sq] = offsetMask(sq, [][2]int{{-1, -1}, {-1, 1}})
	}
}

// offsetMask collects the on-board squares at the given (rank, file) offsets from sq.
func offsetMask(sq int, offsets [][2]int) uint64 {
	rank, file := sq/8, sq%8
	var mask uint64
	for _, off := range offsets {
		r, f := rank+off[0], file+off[1]
		if r >= 0 && r < 8 && f >= 0 && f < 8 {
			mask |= uint64(1) << uint(r*8+f)
		}
	}
	return mask
}

func initRays() {
	for dir, step := range directionSteps {
		for sq := 0; sq < 64; sq++ {
			var ray uint64
			r, f := sq/8+step[0], sq%8+step[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				ray |= uint64(1) << uint(r*8+f)
				r += step[0]
				f += step[1]
			}
			rays[dir][sq] = ray
		}
	}
}

// rayAttacks walks from sq in direction dir and stops at the first occupied
// square, which is included so captures can be masked in later.
func rayAttacks(dir, sq int, occ uint64) uint64 {
	ray := rays[dir][sq]
	blockers := ray & occ
	if blockers == 0 {
		return ray
	}
	var first int
	if dir < south {
		first = bits.TrailingZeros64(blockers)
	} else {
		first = 63 - bits.LeadingZeros64(blockers)
	}
	return ray &^ rays[dir][first]
}

func rookAttacks(sq int, occ uint64) uint64 {
	var att uint64
	for _, dir := range rookDirections {
		att |= rayAttacks(dir, sq, occ)
	}
	return att
}

func bishopAttacks(sq int, occ uint64) uint64 {
	var att uint64
	for _, dir := range bishopDirections {
		att |= rayAttacks(dir, sq, occ)
	}
	return att
}

// popLSB clears and returns the index of the least significant set bit.
func popLSB(b *uint64) int {
	i := bits.TrailingZeros64(*b)
	*b &= *b - 1
	return i
}

func bit(sq Square) uint64 { return uint64(1) << uint(sq) }
