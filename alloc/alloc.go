// Package alloc hands out per-depth move buffers to recursive searches so
// that the hot path never allocates.
//
// A search asks for the node of its current depth, fills it, then takes the
// move list out before recursing and installs it back afterwards. While the
// list is taken the recursion is free to use deeper nodes, and nothing can
// clear the list the caller is iterating over.
package alloc

import (
	"fmt"

	"chessbots/board"
)

const (
	// MaxDepth is the number of depth slots.
	MaxDepth = 64
	// MaxBranchFactor is the capacity of each slot's move list.
	MaxBranchFactor = board.MaxMoves
)

// Node is a reusable move list for one search depth.
type Node interface {
	Clear()
	Len() int
	IsEmpty() bool
	Cap() int
	Moves() []board.Move
	Append(moves ...board.Move)
	// Fill replaces the contents with the legal moves of b.
	Fill(b *board.Board)
	// Take moves the list out of the node, leaving it empty and marked taken.
	Take() []board.Move
	// Install puts a list obtained from Take back.
	Install(moves []board.Move)
}

// Allocator owns one Node per depth.
type Allocator interface {
	// Clean clears every slot.
	Clean()
	// Node returns the cleared slot for depth.
	Node(depth int) Node
}

// ListNode is a Node backed by a fixed-capacity slice.
type ListNode struct {
	moves []board.Move
	taken bool
}

func newListNode(capacity int) *ListNode {
	return &ListNode{moves: make([]board.Move, 0, capacity)}
}

func (n *ListNode) mustHold(op string) {
	if n.taken {
		panic("alloc: " + op + " on a node whose moves are taken")
	}
}

// Clear empties the list, keeping its storage.
func (n *ListNode) Clear() {
	n.mustHold("Clear")
	n.moves = n.moves[:0]
}

// Len returns the number of moves held.
func (n *ListNode) Len() int { return len(n.moves) }

// IsEmpty reports whether the list holds no moves.
func (n *ListNode) IsEmpty() bool { return len(n.moves) == 0 }

// Cap returns the capacity of the backing storage.
func (n *ListNode) Cap() int { return cap(n.moves) }

// Moves returns the held moves. The slice aliases the node's storage.
func (n *ListNode) Moves() []board.Move { return n.moves }

// Append adds moves to the end of the list.
func (n *ListNode) Append(moves ...board.Move) {
	n.mustHold("Append")
	n.moves = append(n.moves, moves...)
}

// Fill replaces the contents with the legal moves of b.
func (n *ListNode) Fill(b *board.Board) {
	n.mustHold("Fill")
	n.moves = b.GenerateMovesInto(n.moves[:0])
}

// Take moves the list out of the node.
func (n *ListNode) Take() []board.Move {
	n.mustHold("Take")
	moves := n.moves
	n.moves = nil
	n.taken = true
	return moves
}

// Install puts back the list returned by Take.
func (n *ListNode) Install(moves []board.Move) {
	if !n.taken {
		panic("alloc: Install on a node that was not taken")
	}
	n.moves = moves
	n.taken = false
}

// ListStackAllocator is an Allocator with MaxDepth slots of
// MaxBranchFactor moves each, all allocated up front.
type ListStackAllocator struct {
	nodes []*ListNode
}

// NewListStackAllocator allocates every slot.
func NewListStackAllocator() *ListStackAllocator {
	a := &ListStackAllocator{nodes: make([]*ListNode, MaxDepth)}
	for i := range a.nodes {
		a.nodes[i] = newListNode(MaxBranchFactor)
	}
	return a
}

// Clean clears every slot. It panics if a slot is still taken.
func (a *ListStackAllocator) Clean() {
	for _, n := range a.nodes {
		n.Clear()
	}
}

// Node returns the slot for depth, cleared. Asking for a taken slot panics.
func (a *ListStackAllocator) Node(depth int) Node {
	return a.Slot(depth)
}

// Slot is Node with the concrete type.
func (a *ListStackAllocator) Slot(depth int) *ListNode {
	if depth < 0 || depth >= len(a.nodes) {
		panic(fmt.Sprintf("alloc: depth %d outside [0,%d)", depth, len(a.nodes)))
	}
	n := a.nodes[depth]
	n.Clear()
	return n
}

// Fill clears the slot for depth and fills it with the legal moves of b.
func (a *ListStackAllocator) Fill(depth int, b *board.Board) *ListNode {
	n := a.Slot(depth)
	n.Fill(b)
	return n
}
