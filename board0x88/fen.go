package board0x88

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse decodes a FEN string into a new Position. On any structural
// failure the returned Position is the standard starting position and ok
// is false; Parse never returns nil.
func Parse(fen string) (pos *Position, ok bool) {
	p, ok := parseStrict(fen)
	if !ok {
		start, _ := parseStrict(StartFEN)
		return start, false
	}
	return p, true
}

func parseStrict(fen string) (*Position, bool) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, false
	}

	p := newEmptyPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, false
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, known := pieceFromFENByte(ch)
			if !known || file >= 8 {
				return nil, false
			}
			sq := FileRank(file, rank)
			p.board[sq] = piece
			if piece.Type == King {
				p.setKingSquare(piece.Color, sq)
			}
			file++
		}
		if file != 8 {
			return nil, false
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, false
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				p.castling |= WhiteKingside
			case 'Q':
				p.castling |= WhiteQueenside
			case 'k':
				p.castling |= BlackKingside
			case 'q':
				p.castling |= BlackQueenside
			default:
				return nil, false
			}
		}
	}

	p.epTarget = NoSquare
	if fields[3] != "-" {
		sq, okSq := ParseSquare(fields[3])
		if !okSq {
			return nil, false
		}
		p.epTarget = sq
	}
	normalizeEPTarget(p)

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, false
		}
		p.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, false
		}
		p.fullmoveNumber = n
	}

	normalizeCastlingRights(p)

	if !p.Validate() {
		return nil, false
	}
	return p, true
}

// normalizeEPTarget silently clears a spurious e.p. target instead of
// rejecting the FEN, per the algorithm the source this package descends
// from was meant to follow: its own early-return made the same outcome
// reachable by confused control flow, clearing the target on one path and
// re-deriving "already cleared" on another. Here it is one clean check:
// wrong rank clears outright; right rank but no pawn on the square the
// target describes also clears; otherwise the target stands.
func normalizeEPTarget(p *Position) {
	if p.epTarget == NoSquare {
		return
	}
	rank := p.epTarget.Rank()
	var wantPawnColor Color
	switch {
	case rank == 2 && p.sideToMove == Black:
		wantPawnColor = White
	case rank == 5 && p.sideToMove == White:
		wantPawnColor = Black
	default:
		p.epTarget = NoSquare
		return
	}
	pawnSquare := p.epTarget + North
	if wantPawnColor == Black {
		pawnSquare = p.epTarget + South
	}
	cell := p.board[pawnSquare]
	if cell.Type != Pawn || cell.Color != wantPawnColor {
		p.epTarget = NoSquare
	}
}

// normalizeCastlingRights silently drops any held right whose king or rook
// is not on its home square, rather than rejecting the FEN outright.
func normalizeCastlingRights(p *Position) {
	for _, r := range [4]CastlingRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside} {
		if p.castling&r == 0 {
			continue
		}
		c := rookColor(r)
		k := p.board[kingHome(r)]
		rk := p.board[rookHome(r)]
		if k.Type != King || k.Color != c || rk.Type != Rook || rk.Color != c {
			p.castling &^= r
		}
	}
}

// FEN encodes p's current state as a full six-field FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.board[FileRank(file, rank)]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(piece.FENByte())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	sb.WriteString(p.epTarget.String())
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}
