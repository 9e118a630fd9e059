package board0x88

import "testing"

func emptyPosition(t *testing.T) *Position {
	t.Helper()
	if _, ok := Parse("8/8/8/8/8/8/8/8 w - - 0 1"); ok {
		t.Fatalf("Parse accepted an empty board with no kings")
	}
	return newEmptyPosition()
}

func TestIsAttackedRookFile(t *testing.T) {
	p := emptyPosition(t)
	e1, _ := ParseSquare("e1")
	e8, _ := ParseSquare("e8")
	p.board[e1] = NewPiece(King, White)
	p.board[e8] = NewPiece(Rook, Black)
	p.setKingSquare(White, e1)

	if !p.IsAttacked(e1, Black) {
		t.Fatalf("expected e1 attacked by rook on the file")
	}
	if !p.IsInCheck(White) {
		t.Fatalf("expected White in check from rook on file")
	}

	e3, _ := ParseSquare("e3")
	p.board[e3] = NewPiece(Pawn, White)
	if p.IsAttacked(e1, Black) {
		t.Fatalf("did not expect e1 attacked once e3 blocks the ray")
	}
}

func TestIsAttackedBishopDiagonal(t *testing.T) {
	p := emptyPosition(t)
	e1, _ := ParseSquare("e1")
	b4, _ := ParseSquare("b4")
	p.board[e1] = NewPiece(King, White)
	p.board[b4] = NewPiece(Bishop, Black)
	p.setKingSquare(White, e1)

	if !p.IsAttacked(e1, Black) {
		t.Fatalf("expected e1 attacked along the b4-e1 diagonal")
	}

	d2, _ := ParseSquare("d2")
	p.board[d2] = NewPiece(Pawn, White)
	if p.IsAttacked(e1, Black) {
		t.Fatalf("did not expect e1 attacked once d2 blocks the diagonal")
	}
}

func TestIsAttackedPawnKnightKing(t *testing.T) {
	p := emptyPosition(t)
	e1, _ := ParseSquare("e1")
	e4, _ := ParseSquare("e4")
	d5, _ := ParseSquare("d5")
	f3, _ := ParseSquare("f3")
	d2, _ := ParseSquare("d2")

	p.board[e1] = NewPiece(King, White)
	p.board[e4] = NewPiece(Pawn, White)
	p.board[d5] = NewPiece(Pawn, Black)
	if !p.IsAttacked(e4, Black) {
		t.Fatalf("expected e4 attacked by black pawn on d5")
	}

	p.board[f3] = NewPiece(Knight, Black)
	if !p.IsAttacked(e1, Black) {
		t.Fatalf("expected e1 attacked by knight on f3")
	}

	p.board[d2] = NewPiece(King, Black)
	if !p.IsAttacked(e1, Black) {
		t.Fatalf("expected e1 attacked by adjacent king on d2")
	}
}

func TestIsAttackedQueenActsAsRookAndBishop(t *testing.T) {
	p := emptyPosition(t)
	e1, _ := ParseSquare("e1")
	e5, _ := ParseSquare("e5")
	p.board[e5] = NewPiece(Queen, Black)
	if !p.IsAttacked(e1, Black) {
		t.Fatalf("expected queen on e5 to attack e1 along the file")
	}

	a1, _ := ParseSquare("a1")
	c3, _ := ParseSquare("c3")
	p2 := emptyPosition(t)
	p2.board[c3] = NewPiece(Queen, Black)
	if !p2.IsAttacked(a1, Black) {
		t.Fatalf("expected queen on c3 to attack a1 along the diagonal")
	}
}

func TestIsAttackedOffBoardSquareIsFalse(t *testing.T) {
	p := emptyPosition(t)
	if p.IsAttacked(NoSquare, White) {
		t.Fatalf("NoSquare must never be reported as attacked")
	}
}
