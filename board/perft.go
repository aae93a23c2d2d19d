package board

import "fmt"

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make([][MaxMoves]Move, depth+1)
	return perft(b, depth, bufs)
}

// perft reuses one move buffer per remaining depth.
func perft(b *Board, depth int, bufs [][MaxMoves]Move) uint64 {
	moves := b.GenerateMovesInto(bufs[depth][:0])
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := b.DoMove(m)
		nodes += perft(b, depth-1, bufs)
		b.UndoMove(m, u)
	}
	return nodes
}

// PerftDivide returns the leaf count below each legal root move.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateAllMoves() {
		u := b.DoMove(m)
		result[m] = Perft(b, depth-1)
		b.UndoMove(m, u)
	}
	return result
}

// PerftChecked is Perft with the board invariants verified around every
// move: Validate after each DoMove, and an exact restore after each
// UndoMove. It stops at the first violation and names the move path.
func PerftChecked(b *Board, depth int) (uint64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	path := make([]Move, 0, depth)
	return perftChecked(b, depth, path)
}

func perftChecked(b *Board, depth int, path []Move) (uint64, error) {
	var nodes uint64
	for _, m := range b.GenerateAllMoves() {
		before := *b
		path = append(path, m)
		u := b.DoMove(m)
		if err := b.Validate(); err != nil {
			return nodes, fmt.Errorf("after %v: %w", path, err)
		}
		if depth == 1 {
			nodes++
		} else {
			n, err := perftChecked(b, depth-1, path)
			nodes += n
			if err != nil {
				return nodes, err
			}
		}
		b.UndoMove(m, u)
		if *b != before {
			return nodes, fmt.Errorf("board: undo of %v did not restore the position", path)
		}
		path = path[:len(path)-1]
	}
	return nodes, nil
}
