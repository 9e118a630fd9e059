package board0x88

// Make applies m to the position. If the resulting position leaves the
// mover's own king attacked (or, for castling, the king started or passed
// through an attacked square), the move is illegal: Make automatically
// unmakes it and returns false, leaving the position unchanged. Otherwise
// it returns true and the move is left applied; call Unmake to reverse it.
func (p *Position) Make(m Move) bool {
	var u undo
	u.move = m
	u.fromPiece = p.board[m.From]
	u.toPiece = p.board[m.To]
	u.rookFromPiece = p.board[m.RookFrom]
	u.rookToPiece = p.board[m.RookTo]
	u.epPiece = p.board[m.EPClear]
	u.sideToMove = p.sideToMove
	u.castling = p.castling
	u.epTarget = p.epTarget
	u.halfmoveClock = p.halfmoveClock
	u.fullmoveNumber = p.fullmoveNumber
	u.whiteKing = p.whiteKing
	u.blackKing = p.blackKing

	mover := u.fromPiece
	captured := u.toPiece
	isPawnMove := mover.Type == Pawn
	isCapture := !captured.IsEmpty() || m.IsEnPassant()

	p.epTarget = NoSquare

	if mover.Type == King {
		p.setKingSquare(mover.Color, m.To)
		if mover.Color == White {
			p.castling &^= WhiteKingside | WhiteQueenside
		} else {
			p.castling &^= BlackKingside | BlackQueenside
		}
	}
	revokeRookRight(p, m.From)
	if isCapture {
		revokeRookRight(p, m.To)
	}

	if isPawnMove {
		delta := m.To.Rank() - m.From.Rank()
		if delta == 2 || delta == -2 {
			p.epTarget = Square((int(m.From) + int(m.To)) / 2)
		}
	}

	if isPawnMove || isCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.sideToMove = p.sideToMove.Opponent()
	if u.sideToMove == Black {
		p.fullmoveNumber++
	}

	toType := mover.Type
	if m.IsPromotion() {
		toType = m.PromoteTo
	}
	p.board[m.To] = NewPiece(toType, mover.Color)
	p.board[m.From] = Empty
	p.board[m.RookTo] = p.board[m.RookFrom]
	p.board[m.RookFrom] = Empty
	p.board[m.EPClear] = Empty

	attacker := p.sideToMove
	king := p.KingSquare(mover.Color)
	if p.IsAttacked(king, attacker) {
		p.undoStack = append(p.undoStack, u)
		p.Unmake()
		return false
	}
	if m.IsCastle() {
		passSquare := Square((int(m.From) + int(m.To)) / 2)
		if p.IsAttacked(m.From, attacker) || p.IsAttacked(passSquare, attacker) {
			p.undoStack = append(p.undoStack, u)
			p.Unmake()
			return false
		}
	}

	p.undoStack = append(p.undoStack, u)
	return true
}

// revokeRookRight clears the castling right belonging to the home-square
// rook at sq, if any. Used both when the mover leaves a rook home square
// and when it captures a piece sitting on one (covers captures of an
// unmoved rook, which the naive movement-only check misses).
func revokeRookRight(p *Position, sq Square) {
	switch sq {
	case whiteRookQSide:
		p.castling &^= WhiteQueenside
	case whiteRookKSide:
		p.castling &^= WhiteKingside
	case blackRookQSide:
		p.castling &^= BlackQueenside
	case blackRookKSide:
		p.castling &^= BlackKingside
	}
}

// Unmake reverses the most recently accepted Make. Calling it with nothing
// on the undo stack is a programmer error; this build panics rather than
// corrupting position state.
func (p *Position) Unmake() {
	n := len(p.undoStack)
	if n == 0 {
		panic("board0x88: Unmake called with an empty undo stack")
	}
	u := p.undoStack[n-1]
	p.undoStack = p.undoStack[:n-1]

	m := u.move
	p.board[m.From] = u.fromPiece
	p.board[m.To] = u.toPiece
	p.board[m.RookFrom] = u.rookFromPiece
	p.board[m.RookTo] = u.rookToPiece
	p.board[m.EPClear] = u.epPiece

	p.sideToMove = u.sideToMove
	p.castling = u.castling
	p.epTarget = u.epTarget
	p.halfmoveClock = u.halfmoveClock
	p.fullmoveNumber = u.fullmoveNumber
	p.whiteKing = u.whiteKing
	p.blackKing = u.blackKing
}
