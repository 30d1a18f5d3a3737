package board_test

import (
	"errors"
	"testing"

	"github.com/unkokaeru/chess-mini-me/internal/board"
	"github.com/unkokaeru/chess-mini-me/internal/testutil"
)

// state captures the externally visible position state for before/after
// comparisons around make/undo pairs.
type state struct {
	FEN        string
	KingSquare [2]board.Square
	LogLen     int
}

func capture(pos *board.Position) state {
	return state{
		FEN:        pos.FEN(),
		KingSquare: pos.KingSquare,
		LogLen:     len(pos.MoveLog()),
	}
}

func TestMakeUndoRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"quiet pawn push", board.StartFEN, "e2e4"},
		{"knight development", board.StartFEN, "g1f3"},
		{"capture", "4k3/8/8/3p4/4B3/8/8/4K3 w - - 0 1", "e4d5"},
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1d2"},
		{"kingside castle", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1"},
		{"queenside castle", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1c1"},
		{"black queenside castle", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", "e8c8"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6"},
		{"promotion", "k7/4P3/8/8/8/8/8/K7 w - - 0 1", "e7e8"},
		{"rook move losing rights", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "h1h5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.ParseFEN(tt.fen)
			testutil.AssertNoError(t, err)

			before := capture(pos)

			from, err := board.ParseSquare(tt.move[:2])
			testutil.AssertNoError(t, err)
			to, err := board.ParseSquare(tt.move[2:])
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, from, to)))

			pos.UndoMove()
			testutil.AssertEqual(t, capture(pos), before)
		})
	}
}

func TestMakeMoveCastleRelocatesRook(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E1, board.G1)))
	testutil.AssertEqual(t, pos.PieceAt(board.G1), board.WhiteKing)
	testutil.AssertEqual(t, pos.PieceAt(board.F1), board.WhiteRook)
	testutil.AssertEqual(t, pos.PieceAt(board.H1), board.NoPiece)
	testutil.AssertEqual(t, pos.PieceAt(board.E1), board.NoPiece)
	testutil.AssertEqual(t, pos.KingSquare[board.White], board.G1)
	testutil.AssertEqual(t, pos.CastlingRights, board.NoCastling)
}

func TestMakeMoveEnPassantRemovesPawn(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E5, board.D6)))
	testutil.AssertEqual(t, pos.PieceAt(board.D6), board.WhitePawn)
	testutil.AssertEqual(t, pos.PieceAt(board.D5), board.NoPiece)
	testutil.AssertEqual(t, pos.PieceAt(board.E5), board.NoPiece)
}

func TestMakeMoveSetsEnPassantTarget(t *testing.T) {
	pos := board.NewPosition()

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E2, board.E4)))
	testutil.AssertEqual(t, pos.EnPassant, board.E3)

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.G8, board.F6)))
	testutil.AssertEqual(t, pos.EnPassant, board.NoSquare)

	pos.UndoMove()
	testutil.AssertEqual(t, pos.EnPassant, board.E3)
}

func TestCastlingRightsClearing(t *testing.T) {
	tests := []struct {
		name string
		move string
		want board.CastlingRights
	}{
		{"king move clears both", "e1e2", board.BlackKingSideCastle | board.BlackQueenSideCastle},
		{"a-rook move clears queenside", "a1a2", board.AllCastling &^ board.WhiteQueenSideCastle},
		{"h-rook move clears kingside", "h1h2", board.AllCastling &^ board.WhiteKingSideCastle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			testutil.AssertNoError(t, err)

			from, err := board.ParseSquare(tt.move[:2])
			testutil.AssertNoError(t, err)
			to, err := board.ParseSquare(tt.move[2:])
			testutil.AssertNoError(t, err)
			testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, from, to)))
			testutil.AssertEqual(t, pos.CastlingRights, tt.want)

			pos.UndoMove()
			testutil.AssertEqual(t, pos.CastlingRights, board.AllCastling)
		})
	}
}

func TestRookCaptureKeepsVictimRights(t *testing.T) {
	// Rights are cleared only by the owner's king or rook moving off its
	// home square; losing the rook to a capture does not clear them.
	pos, err := board.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.A1, board.A8)))
	testutil.AssertEqual(t, pos.CastlingRights,
		board.WhiteKingSideCastle|board.BlackKingSideCastle|board.BlackQueenSideCastle)
}

func TestUndoMoveEmptyLogIsNoOp(t *testing.T) {
	pos := board.NewPosition()
	before := capture(pos)
	pos.UndoMove()
	testutil.AssertEqual(t, capture(pos), before)
}

func TestUndoMoveClearsStatusFlags(t *testing.T) {
	pos := board.NewPosition()
	for _, mv := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		from, _ := board.ParseSquare(mv[:2])
		to, _ := board.ParseSquare(mv[2:])
		testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, from, to)))
	}
	pos.LegalMoves()
	testutil.AssertTrue(t, pos.Checkmate)

	pos.UndoMove()
	testutil.AssertFalse(t, pos.Checkmate)
	testutil.AssertTrue(t, len(pos.LegalMoves()) > 0)
}

func TestPlayMoveRejectsIllegal(t *testing.T) {
	pos := board.NewPosition()

	err := pos.PlayMove(mustMove(t, pos, board.E2, board.E5))
	testutil.AssertTrue(t, errors.Is(err, board.ErrIllegalMove))

	// The position is untouched after a rejected move.
	testutil.AssertEqual(t, pos.FEN(), board.StartFEN)
}

func TestPlayMovePromotionChoice(t *testing.T) {
	tests := []struct {
		name  string
		promo board.PieceType
		want  board.Piece
	}{
		{"default queen", board.NoPieceType, board.WhiteQueen},
		{"underpromotion to knight", board.Knight, board.WhiteKnight},
		{"underpromotion to rook", board.Rook, board.WhiteRook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.ParseFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1")
			testutil.AssertNoError(t, err)

			m := mustMove(t, pos, board.E7, board.E8)
			m.Promo = tt.promo
			testutil.AssertNoError(t, pos.PlayMove(m))
			testutil.AssertEqual(t, pos.PieceAt(board.E8), tt.want)
		})
	}
}

func TestUndoRestoresKingSquare(t *testing.T) {
	pos, err := board.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E1, board.D2)))
	testutil.AssertEqual(t, pos.KingSquare[board.White], board.D2)

	pos.UndoMove()
	testutil.AssertEqual(t, pos.KingSquare[board.White], board.E1)
	testutil.AssertEqual(t, pos.PieceAt(board.E1), board.WhiteKing)
}

func TestLastMoveAndMoveLog(t *testing.T) {
	pos := board.NewPosition()

	_, ok := pos.LastMove()
	testutil.AssertFalse(t, ok)

	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E2, board.E4)))
	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E7, board.E5)))

	last, ok := pos.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, last.String(), "e7e5")

	log := pos.MoveLog()
	testutil.AssertEqual(t, len(log), 2)
	testutil.AssertEqual(t, log[0].String(), "e2e4")
}

func TestCopyIsIndependent(t *testing.T) {
	pos := board.NewPosition()
	testutil.AssertNoError(t, pos.PlayMove(mustMove(t, pos, board.E2, board.E4)))

	cp := pos.Copy()
	testutil.AssertNoError(t, cp.PlayMove(mustMove(t, cp, board.E7, board.E5)))
	cp.UndoMove()
	cp.UndoMove()

	testutil.AssertEqual(t, cp.FEN(), board.StartFEN)
	testutil.AssertEqual(t, len(pos.MoveLog()), 1)
	testutil.AssertEqual(t, len(cp.MoveLog()), 0)
}
