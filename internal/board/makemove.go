package board

import "fmt"

// MakeMove applies a move to the position: relocates the piece, resolves the
// en passant / promotion / castle special cases, refreshes the en passant
// target and castling rights, pushes the undo bookkeeping and flips the side
// to move.
//
// The move must come from LegalMoves (or be matched against it); MakeMove
// performs no validation. Use PlayMove for moves built from raw input.
func (p *Position) MakeMove(m Move) {
	us := m.Piece.Color()

	p.Board[m.From] = NoPiece
	p.Board[m.To] = m.Piece
	p.moveLog = append(p.moveLog, m)
	p.epLog = append(p.epLog, p.EnPassant)

	if m.Piece.Type() == King {
		p.KingSquare[us] = m.To
	}

	if m.EnPassant {
		// The passed pawn sits beside the capturing pawn's origin, on
		// the destination file.
		p.Board[NewSquare(m.To.File(), m.From.Rank())] = NoPiece
	}

	// The en passant target lives for exactly one ply.
	if m.Piece.Type() == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		p.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	} else {
		p.EnPassant = NoSquare
	}

	if m.Promotion {
		promo := m.Promo
		if promo == NoPieceType {
			promo = Queen
		}
		p.Board[m.To] = NewPiece(promo, us)
	}

	if m.Castle {
		rank := m.To.Rank()
		if m.To.File() > m.From.File() {
			// Kingside: rook jumps from the h-file to beside the king.
			p.Board[NewSquare(m.To.File()-1, rank)] = p.Board[NewSquare(m.To.File()+1, rank)]
			p.Board[NewSquare(m.To.File()+1, rank)] = NoPiece
		} else {
			// Queenside: rook jumps from the a-file to beside the king.
			p.Board[NewSquare(m.To.File()+1, rank)] = p.Board[NewSquare(m.To.File()-2, rank)]
			p.Board[NewSquare(m.To.File()-2, rank)] = NoPiece
		}
	}

	p.updateCastlingRights(m)
	p.rightsLog = append(p.rightsLog, p.CastlingRights)

	p.SideToMove = p.SideToMove.Other()
}

// UndoMove reverses the last made move, restoring the board, the cached king
// location, the castling rights (replayed from the log, never re-derived)
// and the prior en passant target. Calling it with an empty move log is a
// no-op.
func (p *Position) UndoMove() {
	if len(p.moveLog) == 0 {
		return
	}
	m := p.moveLog[len(p.moveLog)-1]
	p.moveLog = p.moveLog[:len(p.moveLog)-1]

	us := m.Piece.Color()

	p.Board[m.From] = m.Piece
	p.Board[m.To] = m.Captured
	p.SideToMove = p.SideToMove.Other()

	if m.Piece.Type() == King {
		p.KingSquare[us] = m.From
	}

	if m.EnPassant {
		// The destination square was empty before the capture; the
		// captured pawn goes back beside the capturing pawn's origin.
		p.Board[m.To] = NoPiece
		p.Board[NewSquare(m.To.File(), m.From.Rank())] = NewPiece(Pawn, us.Other())
	}

	if m.Castle {
		rank := m.To.Rank()
		if m.To.File() > m.From.File() {
			p.Board[NewSquare(m.To.File()+1, rank)] = p.Board[NewSquare(m.To.File()-1, rank)]
			p.Board[NewSquare(m.To.File()-1, rank)] = NoPiece
		} else {
			p.Board[NewSquare(m.To.File()-2, rank)] = p.Board[NewSquare(m.To.File()+1, rank)]
			p.Board[NewSquare(m.To.File()+1, rank)] = NoPiece
		}
	}

	p.rightsLog = p.rightsLog[:len(p.rightsLog)-1]
	p.CastlingRights = p.rightsLog[len(p.rightsLog)-1]

	p.EnPassant = p.epLog[len(p.epLog)-1]
	p.epLog = p.epLog[:len(p.epLog)-1]

	p.Checkmate = false
	p.Stalemate = false
}

// PlayMove validates a move by identity-key lookup against the current
// legal-move list and applies the matched move. The match recovers the
// special-move flags a move built from raw coordinates cannot carry; the
// caller's promotion choice, if any, is kept.
func (p *Position) PlayMove(m Move) error {
	legal, ok := FindMove(p.LegalMoves(), m)
	if !ok {
		return fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	if legal.Promotion && m.Promo != NoPieceType {
		legal.Promo = m.Promo
	}
	p.MakeMove(legal)
	return nil
}

// updateCastlingRights clears castling rights when a king moves or when a
// rook moves off its home square. Cleared rights never come back for the
// rest of the game; undo restores them from the log.
func (p *Position) updateCastlingRights(m Move) {
	switch m.Piece {
	case WhiteKing:
		p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
	case BlackKing:
		p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
	case WhiteRook:
		if m.From == A1 {
			p.CastlingRights &^= WhiteQueenSideCastle
		} else if m.From == H1 {
			p.CastlingRights &^= WhiteKingSideCastle
		}
	case BlackRook:
		if m.From == A8 {
			p.CastlingRights &^= BlackQueenSideCastle
		} else if m.From == H8 {
			p.CastlingRights &^= BlackKingSideCastle
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
