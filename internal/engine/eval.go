// Package engine implements the move search: depth-limited minimax with
// alpha-beta pruning over the board package's legal-move interface, scored
// by material count only.
package engine

import "github.com/unkokaeru/chess-mini-me/internal/board"

// PieceScore holds the material weight of each piece type, indexed by
// board.PieceType. These are search weights, not rules-engine data.
var PieceScore = [6]int{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 4,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   100,
}

const (
	// CheckmateScore is the value of a checkmated position; the sign
	// picks the winner (positive for white).
	CheckmateScore = 1000

	// StalemateScore is the value of a stalemated position.
	StalemateScore = 0

	// Infinity bounds the alpha-beta window above any reachable score.
	Infinity = 1 << 20
)

// Evaluate returns the static score of the position: the signed sum of
// material (white positive), or the terminal score when the position's
// checkmate/stalemate flag is set. The flags are only current right after a
// LegalMoves call found no moves; at depth 0 the material sum stands in for
// deeper terminal states.
func Evaluate(pos *board.Position) int {
	if pos.Checkmate {
		if pos.SideToMove == board.White {
			return -CheckmateScore // white to move and mated: black wins
		}
		return CheckmateScore
	}
	if pos.Stalemate {
		return StalemateScore
	}

	score := 0
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := pos.Board[sq]
		if piece == board.NoPiece {
			continue
		}
		if piece.Color() == board.White {
			score += PieceScore[piece.Type()]
		} else {
			score -= PieceScore[piece.Type()]
		}
	}
	return score
}
