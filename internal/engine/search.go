package engine

import "github.com/unkokaeru/chess-mini-me/internal/board"

// FindBestMove tries every candidate move, evaluates the resulting position
// with an alpha-beta minimax to the engine's configured depth, and returns
// the move whose score is best for the side to move (maximum for white,
// minimum for black) together with that score. moves must be the current
// legal-move list for pos and must be non-empty.
//
// The position is mutated in place and fully restored before returning;
// make/undo pairs are strictly nested, so a single position must never be
// searched from two goroutines (use Copy for that).
func (e *Engine) FindBestMove(pos *board.Position, moves []board.Move) (board.Move, int) {
	turn := 1
	if pos.SideToMove == board.Black {
		turn = -1
	}

	best := -Infinity
	var bestMove board.Move

	for _, m := range moves {
		pos.MakeMove(m)
		score := e.minimax(pos, e.depth-1, pos.SideToMove == board.White, -Infinity, Infinity)
		pos.UndoMove()

		if score*turn > best {
			best = score * turn
			bestMove = m
		}
	}

	return bestMove, best * turn
}

// minimax is a depth-limited alpha-beta search. The base cases return the
// static evaluation: at depth 0, or when the side to move has no legal
// moves, in which case the LegalMoves call has just set the terminal flag
// that Evaluate reads. An empty move list below the root is a terminal
// evaluation, never an error.
func (e *Engine) minimax(pos *board.Position, depth int, maximizing bool, alpha, beta int) int {
	e.nodes++

	if depth == 0 {
		return Evaluate(pos)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Evaluate(pos)
	}

	if maximizing {
		best := -Infinity
		for _, m := range moves {
			pos.MakeMove(m)
			score := e.minimax(pos, depth-1, false, alpha, beta)
			pos.UndoMove()

			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := Infinity
	for _, m := range moves {
		pos.MakeMove(m)
		score := e.minimax(pos, depth-1, true, alpha, beta)
		pos.UndoMove()

		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
