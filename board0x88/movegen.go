package board0x88

// MaxMoves is a safe upper bound on the number of moves any chess position
// can produce; the true bound is known to be under 256, and 238 is a
// commonly cited tight bound. Callers should size generation buffers to at
// least this and never rely on GeneratePseudoInto growing the slice.
const MaxMoves = 238

var sliderDirs = map[PieceType][]int{
	Rook:   {North, South, East, West},
	Bishop: {NorthEast, NorthWest, SouthEast, SouthWest},
	Queen:  {North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest},
}

// GeneratePseudoInto writes every pseudo-legal move for the side to move
// into buf, starting at index 0 (existing contents are overwritten), and
// returns the resulting slice. A pseudo-legal move respects
// piece movement, blocking and capture rules but may leave the mover's own
// king in check; legality is decided later by Make.
func (p *Position) GeneratePseudoInto(buf []Move) []Move {
	moves := buf[:0]
	us := p.sideToMove

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := FileRank(file, rank)
			piece := p.board[sq]
			if piece.IsEmpty() || piece.Color != us {
				continue
			}
			switch piece.Type {
			case Rook, Bishop, Queen:
				moves = p.genSlider(sq, piece, moves)
			case Knight:
				moves = p.genStep(sq, piece, knightDeltas[:], moves)
			case King:
				moves = p.genStep(sq, piece, allDirs[:], moves)
			case Pawn:
				moves = p.genPawn(sq, piece, moves)
			}
		}
	}
	moves = p.genCastles(us, moves)
	return moves
}

// genSlider enumerates ray moves for a rook/bishop/queen on sq.
func (p *Position) genSlider(sq Square, piece Piece, moves []Move) []Move {
	for _, d := range sliderDirs[piece.Type] {
		cur := sq + Square(d)
		for cur.Valid() {
			target := p.board[cur]
			if target.IsEmpty() {
				moves = append(moves, newMove(sq, cur))
				cur += Square(d)
				continue
			}
			if target.Color != piece.Color {
				moves = append(moves, newMove(sq, cur))
			}
			break
		}
	}
	return moves
}

// genStep enumerates one-step moves (knight or non-castling king) from sq
// over the given deltas.
func (p *Position) genStep(sq Square, piece Piece, deltas []int, moves []Move) []Move {
	for _, d := range deltas {
		cur := sq + Square(d)
		if !cur.Valid() {
			continue
		}
		target := p.board[cur]
		if target.IsEmpty() || target.Color != piece.Color {
			moves = append(moves, newMove(sq, cur))
		}
	}
	return moves
}

// genPawn enumerates single/double advances, diagonal captures, en-passant
// and promotion multiplexing for the pawn on sq.
func (p *Position) genPawn(sq Square, piece Piece, moves []Move) []Move {
	forward := North
	homeRank, promoRank := 1, 7
	if piece.Color == Black {
		forward = South
		homeRank, promoRank = 6, 0
	}

	one := sq + Square(forward)
	if one.Valid() && p.board[one].IsEmpty() {
		moves = appendPawnMove(moves, sq, one, promoRank)

		if sq.Rank() == homeRank {
			two := one + Square(forward)
			if two.Valid() && p.board[two].IsEmpty() {
				moves = append(moves, newMove(sq, two))
			}
		}
	}

	for _, side := range [2]int{East, West} {
		to := sq + Square(forward) + Square(side)
		if !to.Valid() {
			continue
		}
		target := p.board[to]
		if !target.IsEmpty() && target.Color != piece.Color {
			moves = appendPawnMove(moves, sq, to, promoRank)
		} else if to == p.epTarget {
			victimRank := -forward
			m := newMove(sq, to)
			m.EPClear = to + Square(victimRank)
			moves = append(moves, m)
		}
	}
	return moves
}

// appendPawnMove appends a quiet/capturing pawn move, expanding it into
// the four promotion moves when the destination is on the promotion rank.
func appendPawnMove(moves []Move, from, to Square, promoRank int) []Move {
	if to.Rank() != promoRank {
		return append(moves, newMove(from, to))
	}
	for _, t := range [4]PieceType{Queen, Rook, Bishop, Knight} {
		m := newMove(from, to)
		m.PromoteTo = t
		moves = append(moves, m)
	}
	return moves
}

// castleSpec describes one castling option: the right that must be held,
// the king's destination, the squares that must be empty between king and
// rook, and the rook's own from/to squares.
type castleSpec struct {
	right            CastlingRights
	kingTo           Square
	mustBeEmpty      []Square
	rookFrom, rookTo Square
}

// The king's passed-through square for each option is always the midpoint
// of From/To, recovered arithmetically in Make rather than stored here.
var whiteCastles = []castleSpec{
	{WhiteKingside, Square(0x06), []Square{Square(0x05), Square(0x06)}, whiteRookKSide, Square(0x05)},
	{WhiteQueenside, Square(0x02), []Square{Square(0x01), Square(0x02), Square(0x03)}, whiteRookQSide, Square(0x03)},
}

var blackCastles = []castleSpec{
	{BlackKingside, Square(0x76), []Square{Square(0x75), Square(0x76)}, blackRookKSide, Square(0x75)},
	{BlackQueenside, Square(0x72), []Square{Square(0x71), Square(0x72), Square(0x73)}, blackRookQSide, Square(0x73)},
}

// genCastles appends castling moves for side us. It checks only that the
// right is held and the intervening squares are empty; check legality
// (king not passing through or starting in check) is left to Make.
func (p *Position) genCastles(us Color, moves []Move) []Move {
	specs := whiteCastles
	kingFrom := whiteKingHome
	if us == Black {
		specs = blackCastles
		kingFrom = blackKingHome
	}
	for _, spec := range specs {
		if p.castling&spec.right == 0 {
			continue
		}
		clear := true
		for _, sq := range spec.mustBeEmpty {
			if !p.board[sq].IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		m := newMove(kingFrom, spec.kingTo)
		m.RookFrom, m.RookTo = spec.rookFrom, spec.rookTo
		moves = append(moves, m)
	}
	return moves
}

// GenerateLegalInto writes every legal move for the side to move into buf,
// starting at index 0 (existing contents are overwritten).
// It generates pseudo-legal candidates and filters them through Make,
// undoing every candidate it tries (accepted or not) so the position is
// left unchanged.
func (p *Position) GenerateLegalInto(buf []Move) []Move {
	var scratch [MaxMoves]Move
	pseudo := p.GeneratePseudoInto(scratch[:0])

	legal := buf[:0]
	for _, m := range pseudo {
		if p.Make(m) {
			p.Unmake()
			legal = append(legal, m)
		}
	}
	return legal
}
