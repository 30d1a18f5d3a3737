package board

// Move captures a single board transition. The moved and captured pieces are
// snapshots taken from the position at construction time, so a Move stays
// valid for undo after the board has changed underneath it.
type Move struct {
	From     Square
	To       Square
	Piece    Piece // piece being moved
	Captured Piece // piece on the destination square, NoPiece if empty

	EnPassant bool
	Castle    bool
	Promotion bool

	// Promo is the piece type a promoting pawn becomes. The generator
	// defaults it to Queen; a caller may override it through PlayMove.
	Promo PieceType
}

// NewMove constructs a move from two raw coordinates and the current
// position, snapshotting the moved and captured pieces. The promotion flag is
// derived from the destination rank. Special-move flags (en passant, castle)
// are not derivable from coordinates alone; match the move against
// LegalMoves with FindMove, or use PlayMove, before applying it.
func NewMove(p *Position, from, to Square) (Move, error) {
	if !from.IsValid() || !to.IsValid() {
		return Move{}, ErrOutOfBounds
	}
	return newMove(p, from, to), nil
}

// newMove is the generator-internal constructor; coordinates must be on the
// board.
func newMove(p *Position, from, to Square) Move {
	m := Move{
		From:     from,
		To:       to,
		Piece:    p.Board[from],
		Captured: p.Board[to],
		Promo:    NoPieceType,
	}
	if m.Piece == WhitePawn && to.Rank() == 7 || m.Piece == BlackPawn && to.Rank() == 0 {
		m.Promotion = true
		m.Promo = Queen
	}
	return m
}

// newEnPassantMove constructs an en passant capture onto the target square.
// The destination square itself is empty, so Captured stays NoPiece;
// MakeMove and UndoMove place the passed pawn from the move geometry.
func newEnPassantMove(p *Position, from, to Square) Move {
	m := newMove(p, from, to)
	m.EnPassant = true
	return m
}

// newCastleMove constructs the king's leg of a castling move.
func newCastleMove(p *Position, from, to Square) Move {
	m := newMove(p, from, to)
	m.Castle = true
	return m
}

// ID returns the identity key of the move, a function of the origin and
// destination squares only.
func (m Move) ID() uint16 {
	return uint16(m.From)<<8 | uint16(m.To)
}

// Equal reports whether two moves have the same identity key. Capture and
// special-move flags are deliberately not part of equality: a move built
// from raw coordinates must compare equal to the generated legal move with
// the same squares so the generator's flags can be recovered.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// String returns the two-square coordinate notation of the move, e.g.
// "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// FindMove looks up the move with the same identity key in a legal-move
// list, recovering the generator's flags for a move built from raw
// coordinates. The second return value is false when no legal move matches.
func FindMove(moves []Move, m Move) (Move, bool) {
	for _, legal := range moves {
		if legal.Equal(m) {
			return legal, true
		}
	}
	return Move{}, false
}

// MovesFrom filters a move list down to the moves leaving the given origin
// square, e.g. to highlight the destinations of a selected piece.
func MovesFrom(moves []Move, from Square) []Move {
	var out []Move
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}
