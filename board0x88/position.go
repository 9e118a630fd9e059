package board0x88

// CastlingRights is a bitmask of the four castling rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Home squares for kings and rooks, used by castling bookkeeping and by
// Validate's right-consistency check.
const (
	whiteKingHome  = Square(0x04) // e1
	blackKingHome  = Square(0x74) // e8
	whiteRookKSide = Square(0x07) // h1
	whiteRookQSide = Square(0x00) // a1
	blackRookKSide = Square(0x77) // h8
	blackRookQSide = Square(0x70) // a8
)

// undo is a snapshot sufficient to reverse exactly one Make.
type undo struct {
	move Move

	fromPiece, toPiece, rookFromPiece, rookToPiece, epPiece Piece

	sideToMove     Color
	castling       CastlingRights
	epTarget       Square
	halfmoveClock  int
	fullmoveNumber int
	whiteKing      Square
	blackKing      Square
}

// Position is the mutable board state: mailbox board, side to move,
// castling rights, en-passant target, clocks, and a king-location cache.
// It owns its undo stack; a Position's lifetime is the stack's lifetime.
type Position struct {
	board [boardLen]Piece

	sideToMove     Color
	castling       CastlingRights
	epTarget       Square
	halfmoveClock  int
	fullmoveNumber int
	whiteKing      Square
	blackKing      Square

	undoStack []undo
}

// newEmptyPosition returns a Position with every square empty and no
// castling/en-passant state. Callers must place both kings before use.
func newEmptyPosition() *Position {
	p := &Position{
		epTarget:       NoSquare,
		fullmoveNumber: 1,
		whiteKing:      NoSquare,
		blackKing:      NoSquare,
		undoStack:      make([]undo, 0, 255),
	}
	for i := range p.board {
		p.board[i] = Empty
	}
	return p
}

// PieceAt returns the piece on sq (Empty if sq is empty or off-board).
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.board[sq]
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Castling reports the current castling-rights mask.
func (p *Position) Castling() CastlingRights { return p.castling }

// EPTarget returns the current en-passant target square, or NoSquare.
func (p *Position) EPTarget() Square { return p.epTarget }

// HalfmoveClock returns the half-move clock (plies since the last capture
// or pawn move).
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full-move counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// KingSquare returns the cached king location for the given colour.
func (p *Position) KingSquare(c Color) Square {
	if c == White {
		return p.whiteKing
	}
	return p.blackKing
}

func (p *Position) setKingSquare(c Color, sq Square) {
	if c == White {
		p.whiteKing = sq
	} else {
		p.blackKing = sq
	}
}

// kingHome and rookHome return the home squares for castling right r.
func kingHome(r CastlingRights) Square {
	if r == WhiteKingside || r == WhiteQueenside {
		return whiteKingHome
	}
	return blackKingHome
}

func rookHome(r CastlingRights) Square {
	switch r {
	case WhiteKingside:
		return whiteRookKSide
	case WhiteQueenside:
		return whiteRookQSide
	case BlackKingside:
		return blackRookKSide
	default:
		return blackRookQSide
	}
}

func rookColor(r CastlingRights) Color {
	if r == WhiteKingside || r == WhiteQueenside {
		return White
	}
	return Black
}

// Validate checks the position invariants expected of every constructed
// and post-Make position: one king per side with the cache in sync, no
// pawns on rank 0/7, the side not to move not in check, and every held
// castling right backed by its king and rook still on their home squares.
func (p *Position) Validate() bool {
	var whiteKings, blackKings int
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := FileRank(file, rank)
			piece := p.board[sq]
			if piece.IsEmpty() {
				continue
			}
			if piece.Type == King {
				if piece.Color == White {
					whiteKings++
				} else {
					blackKings++
				}
			}
			if piece.Type == Pawn && (rank == 0 || rank == 7) {
				return false
			}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return false
	}
	if p.board[p.whiteKing].Type != King || p.board[p.whiteKing].Color != White {
		return false
	}
	if p.board[p.blackKing].Type != King || p.board[p.blackKing].Color != Black {
		return false
	}

	notToMove := p.sideToMove.Opponent()
	if p.IsInCheck(notToMove) {
		return false
	}

	for _, r := range [4]CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if p.castling&r == 0 {
			continue
		}
		c := rookColor(r)
		k := p.board[kingHome(r)]
		if k.Type != King || k.Color != c {
			return false
		}
		rk := p.board[rookHome(r)]
		if rk.Type != Rook || rk.Color != c {
			return false
		}
	}
	return true
}
