package board

// pin records an own piece that, if moved off the ray between it and the
// king, would expose the king to a sliding attack. dRank/dFile is the unit
// vector of the ray from the king outward; movement along either sense of
// the ray keeps the pin intact.
type pin struct {
	sq    Square
	dRank int
	dFile int
}

// check records a checking piece and the ray direction from the king to it.
// For a knight check the direction is the knight offset; no blocking square
// exists on such a "ray".
type check struct {
	sq    Square
	dRank int
	dFile int
}

// rayDirections are the eight scan directions from the king, orthogonals
// first: N, W, S, E, NW, NE, SW, SE. Attacker classification relies on the
// orthogonal/diagonal split at index 4.
var rayDirections = [8][2]int{
	{1, 0}, {0, -1}, {-1, 0}, {0, 1},
	{1, -1}, {1, 1}, {-1, -1}, {-1, 1},
}

// knightOffsets is the fixed knight jump table.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// checksAndPins scans outward from the side-to-move king and reports whether
// the king is in check, which own pieces are pinned and along which rays,
// and every checking piece. Simultaneous checks (discovered + direct) yield
// multiple entries.
func (p *Position) checksAndPins() (bool, []pin, []check) {
	var (
		inCheck bool
		pins    []pin
		checks  []check
	)

	us := p.SideToMove
	them := us.Other()
	kRank := p.KingSquare[us].Rank()
	kFile := p.KingSquare[us].File()

	for j, d := range rayDirections {
		candidate := pin{sq: NoSquare}

		for i := 1; i < 8; i++ {
			r := kRank + d[0]*i
			f := kFile + d[1]*i
			if r < 0 || r > 7 || f < 0 || f > 7 {
				break
			}

			sq := NewSquare(f, r)
			piece := p.Board[sq]
			if piece == NoPiece {
				continue
			}

			if piece.Color() == us {
				// The own king is skipped as a blocker, so probing a
				// king move still sees sliding attacks through the
				// old king square.
				if piece.Type() == King {
					continue
				}
				if candidate.sq != NoSquare {
					break // second own piece on the ray: no pin here
				}
				candidate = pin{sq: sq, dRank: d[0], dFile: d[1]}
				continue
			}

			// Enemy piece: classify, then stop scanning this ray.
			if attacksAlongRay(piece.Type(), them, j, i) {
				if candidate.sq == NoSquare {
					inCheck = true
					checks = append(checks, check{sq: sq, dRank: d[0], dFile: d[1]})
				} else {
					pins = append(pins, candidate)
				}
			}
			break
		}
	}

	// Knight checks are tested separately; a knight can never pin.
	for _, m := range knightOffsets {
		r := kRank + m[0]
		f := kFile + m[1]
		if r < 0 || r > 7 || f < 0 || f > 7 {
			continue
		}
		piece := p.Board[NewSquare(f, r)]
		if piece.Color() == them && piece.Type() == Knight {
			inCheck = true
			checks = append(checks, check{sq: NewSquare(f, r), dRank: m[0], dFile: m[1]})
		}
	}

	return inCheck, pins, checks
}

// attacksAlongRay reports whether an enemy piece of the given type attacks
// the king along scan direction j at distance dist: a rook on orthogonal
// rays, a bishop on diagonal rays, a queen anywhere, a king one square away,
// and a pawn one square away on the two diagonals matching its capture
// direction.
func attacksAlongRay(pt PieceType, enemy Color, j, dist int) bool {
	switch pt {
	case Rook:
		return j <= 3
	case Bishop:
		return j >= 4
	case Queen:
		return true
	case King:
		return dist == 1
	case Pawn:
		if dist != 1 {
			return false
		}
		if enemy == White {
			// A white pawn attacks toward higher ranks, so it checks
			// along the SW/SE rays seen from the king.
			return j == 6 || j == 7
		}
		return j == 4 || j == 5
	default:
		return false
	}
}

// squareAttacked reports whether the opponent of the side to move can move a
// piece onto sq. It enumerates the opponent's full pseudo-legal move set, as
// castling legality requires.
func (p *Position) squareAttacked(sq Square) bool {
	p.SideToMove = p.SideToMove.Other()
	moves := p.pseudoLegalMoves()
	p.SideToMove = p.SideToMove.Other()

	for _, m := range moves {
		if m.To == sq {
			return true
		}
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (p *Position) InCheck() bool {
	inCheck, _, _ := p.checksAndPins()
	return inCheck
}
