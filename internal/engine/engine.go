package engine

import (
	"math/rand"

	"github.com/unkokaeru/chess-mini-me/internal/board"
)

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

// Difficulty represents the playing strength level.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// difficultyDepth maps difficulty to search depth. Depth is the only knob:
// there is no time management and no move ordering.
var difficultyDepth = map[Difficulty]int{
	Easy:   2,
	Medium: 3,
	Hard:   4,
}

// Engine selects moves for an automated player.
type Engine struct {
	depth int
	nodes uint64
}

// New creates an engine searching to the given depth in plies. Depths below
// 1 fall back to DefaultDepth.
func New(depth int) *Engine {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Engine{depth: depth}
}

// NewWithDifficulty creates an engine at the given difficulty level.
func NewWithDifficulty(d Difficulty) *Engine {
	depth, ok := difficultyDepth[d]
	if !ok {
		depth = DefaultDepth
	}
	return New(depth)
}

// Depth returns the configured search depth.
func (e *Engine) Depth() int {
	return e.depth
}

// Nodes returns the number of nodes visited since the last reset.
func (e *Engine) Nodes() uint64 {
	return e.nodes
}

// ResetNodes clears the node counter.
func (e *Engine) ResetNodes() {
	e.nodes = 0
}

// FindRandomMove picks a uniformly random move from the list, for the
// weakest automated player. moves must be non-empty.
func FindRandomMove(moves []board.Move) board.Move {
	return moves[rand.Intn(len(moves))]
}

// Perft counts the leaf nodes of the legal-move tree at the given depth,
// the standard way to verify move generation.
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		pos.MakeMove(m)
		nodes += Perft(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}
