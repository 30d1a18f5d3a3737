package board

import "errors"

// Sentinel errors for move validation, matched with errors.Is.
var (
	// ErrOutOfBounds is returned when a move is constructed from
	// coordinates outside the board.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove is returned when a move does not match any move in
	// the current legal-move list.
	ErrIllegalMove = errors.New("illegal move")
)
