package board

// LegalMoves generates all legal moves for the side to move. As a side
// effect it refreshes the Checkmate/Stalemate flags: both are cleared on
// entry and one is set when no legal move exists, Checkmate if the king is
// in check and Stalemate otherwise.
func (p *Position) LegalMoves() []Move {
	p.Checkmate = false
	p.Stalemate = false

	p.inCheck, p.pins, p.checks = p.checksAndPins()
	ksq := p.KingSquare[p.SideToMove]

	var moves []Move
	if p.inCheck {
		if len(p.checks) == 1 {
			moves = p.evadeSingleCheck(p.pseudoLegalMoves(), ksq)
		} else {
			// Double check: only the king may move.
			p.kingMoves(ksq, &moves)
		}
	} else {
		moves = p.pseudoLegalMoves()
	}

	p.castleMoves(ksq, &moves)

	if len(moves) == 0 {
		if p.inCheck {
			p.Checkmate = true
		} else {
			p.Stalemate = true
		}
	}
	return moves
}

// evadeSingleCheck keeps king moves and, for other pieces, only moves that
// capture the single checking piece or block its ray. For a knight check no
// blocking square exists, so the checker's square is the only valid target.
func (p *Position) evadeSingleCheck(moves []Move, ksq Square) []Move {
	chk := p.checks[0]

	var valid []Square
	if p.Board[chk.sq].Type() == Knight {
		valid = []Square{chk.sq}
	} else {
		kRank, kFile := ksq.Rank(), ksq.File()
		for i := 1; i < 8; i++ {
			sq := NewSquare(kFile+chk.dFile*i, kRank+chk.dRank*i)
			valid = append(valid, sq)
			if sq == chk.sq {
				break
			}
		}
	}

	out := moves[:0]
	for _, m := range moves {
		if m.Piece.Type() == King || containsSquare(valid, m.To) {
			out = append(out, m)
		}
	}
	return out
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// pseudoLegalMoves generates the side to move's moves constrained by the
// current pin list but not by check. King moves are individually verified,
// so they are always legal.
func (p *Position) pseudoLegalMoves() []Move {
	var moves []Move
	for sq := A1; sq <= H8; sq++ {
		piece := p.Board[sq]
		if piece == NoPiece || piece.Color() != p.SideToMove {
			continue
		}
		switch piece.Type() {
		case Pawn:
			p.pawnMoves(sq, &moves)
		case Knight:
			p.knightMoves(sq, &moves)
		case Bishop:
			p.slidingMoves(sq, rayDirections[4:], &moves)
		case Rook:
			p.slidingMoves(sq, rayDirections[:4], &moves)
		case Queen:
			// Rook rays then bishop rays. Each half looks the pin up
			// again, which is why queen pins are not consumed.
			p.slidingMoves(sq, rayDirections[:4], &moves)
			p.slidingMoves(sq, rayDirections[4:], &moves)
		case King:
			p.kingMoves(sq, &moves)
		}
	}
	return moves
}

// pinLookup reports whether the piece on sq is pinned and along which ray.
// The pin entry is consumed unless the piece is a queen: the queen's
// generator consults the list twice (rook rays, then bishop rays) and both
// halves must see the pin. The list is rebuilt by every LegalMoves call, so
// consumption never leaks into a later call.
func (p *Position) pinLookup(sq Square) (bool, [2]int) {
	for i := len(p.pins) - 1; i >= 0; i-- {
		if p.pins[i].sq != sq {
			continue
		}
		dir := [2]int{p.pins[i].dRank, p.pins[i].dFile}
		if p.Board[sq].Type() != Queen {
			p.pins = append(p.pins[:i], p.pins[i+1:]...)
		}
		return true, dir
	}
	return false, [2]int{}
}

// pawnMoves generates pushes, captures, en passant and promotions for the
// pawn on from. A pinned pawn may only move when the pin ray matches the
// move's forward sense.
func (p *Position) pawnMoves(from Square, moves *[]Move) {
	pinned, pinDir := p.pinLookup(from)

	var forward, startRank, epRank int
	var enemy Color
	if p.SideToMove == White {
		forward, startRank, epRank, enemy = 1, 1, 4, Black
	} else {
		forward, startRank, epRank, enemy = -1, 6, 3, White
	}

	rank, file := from.Rank(), from.File()

	if p.Board[NewSquare(file, rank+forward)] == NoPiece {
		if !pinned || pinDir == [2]int{forward, 0} {
			*moves = append(*moves, newMove(p, from, NewSquare(file, rank+forward)))
			if rank == startRank && p.Board[NewSquare(file, rank+2*forward)] == NoPiece {
				*moves = append(*moves, newMove(p, from, NewSquare(file, rank+2*forward)))
			}
		}
	}

	if file-1 >= 0 && (!pinned || pinDir == [2]int{forward, -1}) {
		if to := NewSquare(file-1, rank+forward); p.Board[to].Color() == enemy {
			*moves = append(*moves, newMove(p, from, to))
		}
	}
	if file+1 <= 7 && (!pinned || pinDir == [2]int{forward, 1}) {
		if to := NewSquare(file+1, rank+forward); p.Board[to].Color() == enemy {
			*moves = append(*moves, newMove(p, from, to))
		}
	}

	if p.EnPassant != NoSquare && rank == epRank {
		if epFile := p.EnPassant.File(); epFile == file-1 || epFile == file+1 {
			*moves = append(*moves, newEnPassantMove(p, from, NewSquare(epFile, rank+forward)))
		}
	}
}

// knightMoves generates jumps for the knight on from. A pinned knight can
// never move.
func (p *Position) knightMoves(from Square, moves *[]Move) {
	if pinned, _ := p.pinLookup(from); pinned {
		return
	}

	rank, file := from.Rank(), from.File()
	for _, d := range knightOffsets {
		r, f := rank+d[0], file+d[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		if to := NewSquare(f, r); p.Board[to].Color() != p.SideToMove {
			*moves = append(*moves, newMove(p, from, to))
		}
	}
}

// slidingMoves ray-casts from a rook, bishop or queen along dirs, stopping
// at the board edge, before an own piece, or on the first enemy piece. A
// pinned slider may only travel the pin ray, in either sense.
func (p *Position) slidingMoves(from Square, dirs [][2]int, moves *[]Move) {
	pinned, pinDir := p.pinLookup(from)

	rank, file := from.Rank(), from.File()
	for _, d := range dirs {
		if pinned && pinDir != d && pinDir != [2]int{-d[0], -d[1]} {
			continue
		}
		for i := 1; i < 8; i++ {
			r, f := rank+d[0]*i, file+d[1]*i
			if r < 0 || r > 7 || f < 0 || f > 7 {
				break
			}
			to := NewSquare(f, r)
			if p.Board[to] == NoPiece {
				*moves = append(*moves, newMove(p, from, to))
				continue
			}
			if p.Board[to].Color() != p.SideToMove {
				*moves = append(*moves, newMove(p, from, to))
			}
			break
		}
	}
}

// kingMoves generates single steps for the king on from. Each candidate is
// verified by provisionally relocating the cached king square and re-running
// the check analysis; the board itself is left untouched, and the analyzer
// skips the king's old square when scanning rays.
func (p *Position) kingMoves(from Square, moves *[]Move) {
	us := p.SideToMove
	rank, file := from.Rank(), from.File()

	for _, d := range rayDirections {
		r, f := rank+d[0], file+d[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		to := NewSquare(f, r)
		if p.Board[to].Color() == us {
			continue
		}

		p.KingSquare[us] = to
		inCheck, _, _ := p.checksAndPins()
		p.KingSquare[us] = from

		if !inCheck {
			*moves = append(*moves, newMove(p, from, to))
		}
	}
}

// castleMoves appends the castling moves available to the side to move. A
// castle requires the rights flag, an unattacked king square, empty transit
// squares, and unattacked transit and destination squares. Square attacks
// are resolved by enumerating the opponent's full pseudo-legal move set.
func (p *Position) castleMoves(ksq Square, moves *[]Move) {
	if p.squareAttacked(ksq) {
		return // may not castle out of check
	}

	us := p.SideToMove
	rank, file := ksq.Rank(), ksq.File()

	if p.CastlingRights.CanCastle(us, true) && file+2 <= 7 {
		f1, f2 := NewSquare(file+1, rank), NewSquare(file+2, rank)
		if p.Board[f1] == NoPiece && p.Board[f2] == NoPiece &&
			!p.squareAttacked(f1) && !p.squareAttacked(f2) {
			*moves = append(*moves, newCastleMove(p, ksq, f2))
		}
	}

	if p.CastlingRights.CanCastle(us, false) && file-3 >= 0 {
		d1, d2, b1 := NewSquare(file-1, rank), NewSquare(file-2, rank), NewSquare(file-3, rank)
		if p.Board[d1] == NoPiece && p.Board[d2] == NoPiece && p.Board[b1] == NoPiece &&
			!p.squareAttacked(d1) && !p.squareAttacked(d2) {
			*moves = append(*moves, newCastleMove(p, ksq, d2))
		}
	}
}
