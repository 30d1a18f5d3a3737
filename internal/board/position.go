package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side still has the right to castle in
// the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// kingSideRight returns the kingside right flag for a color.
func kingSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle
	}
	return BlackKingSideCastle
}

// queenSideRight returns the queenside right flag for a color.
func queenSideRight(c Color) CastlingRights {
	if c == White {
		return WhiteQueenSideCastle
	}
	return BlackQueenSideCastle
}

// Position is the complete game state: the board, side to move, cached king
// locations, castling rights with their history, the en passant target and
// the move log used as the undo stack.
//
// A Position is mutated in place by MakeMove/UndoMove and shared by
// reference through the search recursion. Make/undo pairs are strictly
// nested, so there is exactly one logical writer at any instant; concurrent
// searches must each work on their own Copy.
type Position struct {
	// Board holds the piece on each square, indexed by Square.
	Board [64]Piece

	SideToMove Color

	// KingSquare caches the king location per color and is kept
	// consistent with Board on every king move.
	KingSquare [2]Square

	// CastlingRights is tracked as state, never re-derived from the
	// board. Each flag is cleared permanently when the king or the
	// relevant rook moves off its home square; undo restores rights by
	// replaying rightsLog.
	CastlingRights CastlingRights

	// EnPassant is the capture target square after a pawn double
	// advance, valid for exactly one ply; NoSquare otherwise.
	EnPassant Square

	// Checkmate and Stalemate are set only after a LegalMoves call finds
	// zero legal moves; they are mutually exclusive.
	Checkmate bool
	Stalemate bool

	moveLog   []Move
	rightsLog []CastlingRights
	epLog     []Square

	// Transient pin/check analysis results, rebuilt by every LegalMoves
	// call and consumed during generation.
	inCheck bool
	pins    []pin
	checks  []check
}

// NewPosition creates the standard starting position with full castling
// rights.
func NewPosition() *Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// Copy creates an independent deep copy of the position. Each concurrent
// consumer of a position needs its own copy; the logs back the undo stack
// and must not be shared.
func (p *Position) Copy() *Position {
	c := *p
	c.moveLog = append([]Move(nil), p.moveLog...)
	c.rightsLog = append([]CastlingRights(nil), p.rightsLog...)
	c.epLog = append([]Square(nil), p.epLog...)
	c.pins = nil
	c.checks = nil
	return &c
}

// PieceAt returns the piece on the given square, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.Board[sq]
}

// LastMove returns the most recently made move, for callers that animate or
// display it. The second return value is false when no move has been made.
func (p *Position) LastMove() (Move, bool) {
	if len(p.moveLog) == 0 {
		return Move{}, false
	}
	return p.moveLog[len(p.moveLog)-1], true
}

// MoveLog returns the moves made so far, oldest first. The returned slice is
// a copy.
func (p *Position) MoveLog() []Move {
	return append([]Move(nil), p.moveLog...)
}

// String returns an ASCII diagram of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			s += p.Board[NewSquare(file, rank)].String() + " "
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	return s
}
