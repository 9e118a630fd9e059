package board0x88

// IsAttacked reports whether any piece of colour by attacks sq in the
// current position. It never consults the en-passant target and never
// considers castling.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns: a white pawn attacks diagonally north, so sq is attacked by a
	// white pawn iff sq-15 or sq-17 holds one; mirrored for black.
	if by == White {
		if p.pieceIs(sq+SouthWest, Pawn, White) || p.pieceIs(sq+SouthEast, Pawn, White) {
			return true
		}
	} else {
		if p.pieceIs(sq+NorthWest, Pawn, Black) || p.pieceIs(sq+NorthEast, Pawn, Black) {
			return true
		}
	}

	// Knights.
	for _, d := range knightDeltas {
		if p.pieceIs(sq+Square(d), Knight, by) {
			return true
		}
	}

	// Kings (distance-1 on any of the eight directions).
	for _, d := range allDirs {
		if p.pieceIs(sq+Square(d), King, by) {
			return true
		}
	}

	// Straight rays: rook, queen.
	for _, d := range rookDirs {
		if p.rayHitsSliderOrKing(sq, d, by, Rook) {
			return true
		}
	}

	// Diagonal rays: bishop, queen.
	for _, d := range bishopDirs {
		if p.rayHitsSliderOrKing(sq, d, by, Bishop) {
			return true
		}
	}

	return false
}

var allDirs = [8]int{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// pieceIs reports whether sq holds a piece of the given type and colour.
// Off-board squares never match.
func (p *Position) pieceIs(sq Square, t PieceType, c Color) bool {
	if !sq.Valid() {
		return false
	}
	cell := p.board[sq]
	return cell.Type == t && cell.Color == c
}

// rayHitsSliderOrKing scans from sq in direction d and reports whether the
// first occupied square holds a piece of colour by that is either a Queen
// or a slider of the given kind (Rook for straight rays, Bishop for
// diagonal rays). The scan stops at the first occupied square regardless
// of who owns it or what it is (short-circuit on first blocker), matching
// attack-ray semantics: only the nearest piece on the ray can attack.
func (p *Position) rayHitsSliderOrKing(sq Square, d int, by Color, kind PieceType) bool {
	cur := sq + Square(d)
	for cur.Valid() {
		cell := p.board[cur]
		if !cell.IsEmpty() {
			if cell.Color != by {
				return false
			}
			return cell.Type == kind || cell.Type == Queen
		}
		cur += Square(d)
	}
	return false
}

// IsInCheck reports whether colour's king is attacked by the opposite
// side. Implemented for real, unlike the always-false IsInCheck stub in
// the historical source this package descends from.
func (p *Position) IsInCheck(colour Color) bool {
	k := p.KingSquare(colour)
	if !k.Valid() {
		return false
	}
	return p.IsAttacked(k, colour.Opponent())
}
