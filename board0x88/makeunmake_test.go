package board0x88

import "testing"

func mustParse(t *testing.T, fen string) *Position {
	t.Helper()
	p, ok := Parse(fen)
	if !ok {
		t.Fatalf("Parse(%q) failed", fen)
	}
	return p
}

func findMove(t *testing.T, p *Position, from, to Square) Move {
	t.Helper()
	var buf [MaxMoves]Move
	for _, m := range p.GenerateLegalInto(buf[:0]) {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %s%s in position %s", from, to, p.FEN())
	return Move{}
}

func TestMakeUnmakeRoundTripSimple(t *testing.T) {
	p := mustParse(t, StartFEN)
	startFEN := p.FEN()

	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	e7, _ := ParseSquare("e7")
	e5, _ := ParseSquare("e5")

	m1 := findMove(t, p, e2, e4)
	if !p.Make(m1) {
		t.Fatalf("Make(e2e4) rejected in the starting position")
	}
	m2 := findMove(t, p, e7, e5)
	if !p.Make(m2) {
		t.Fatalf("Make(e7e5) rejected")
	}

	p.Unmake()
	p.Unmake()

	if got := p.FEN(); got != startFEN {
		t.Fatalf("FEN after round trip = %q, want %q", got, startFEN)
	}
}

func TestMakeRejectsMoveIntoCheck(t *testing.T) {
	p := mustParse(t, "7k/8/8/8/8/8/8/r3K3 w - - 0 1")
	d1, _ := ParseSquare("d1")
	e1 := whiteKingHome
	m := newMove(e1, d1)
	if p.Make(m) {
		t.Fatalf("Make accepted a king move that stays on the rook's rank (still in check)")
	}
}

func TestMakeCastlingUpdatesBothPieces(t *testing.T) {
	p := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	e1 := whiteKingHome
	g1, _ := ParseSquare("g1")
	m := findMove(t, p, e1, g1)
	if !m.IsCastle() {
		t.Fatalf("expected the e1g1 move to be encoded as a castle")
	}
	if !p.Make(m) {
		t.Fatalf("Make rejected legal kingside castling")
	}
	f1, _ := ParseSquare("f1")
	if p.PieceAt(g1) != NewPiece(King, White) {
		t.Fatalf("king not on g1 after castling")
	}
	if p.PieceAt(f1) != NewPiece(Rook, White) {
		t.Fatalf("rook not on f1 after castling")
	}
	if p.Castling()&(WhiteKingside|WhiteQueenside) != 0 {
		t.Fatalf("white castling rights not fully revoked after castling")
	}
	p.Unmake()
	if p.PieceAt(e1) != NewPiece(King, White) || p.PieceAt(g1) != Empty {
		t.Fatalf("king not restored to e1 after unmake")
	}
	h1, _ := ParseSquare("h1")
	if p.PieceAt(h1) != NewPiece(Rook, White) || p.PieceAt(f1) != Empty {
		t.Fatalf("rook not restored to h1 after unmake")
	}
}

func TestMakeRejectsCastleThroughCheck(t *testing.T) {
	p := mustParse(t, "4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	e1 := whiteKingHome
	g1, _ := ParseSquare("g1")
	m := findMove(t, p, e1, g1)
	if p.Make(m) {
		t.Fatalf("Make accepted kingside castling through e1 while e1 is attacked on the e-file")
	}
}

func TestMakeEnPassantClearsVictim(t *testing.T) {
	p := mustParse(t, "8/8/8/3pP3/8/8/8/4K2k w - d6 0 1")
	e5, _ := ParseSquare("e5")
	d6, _ := ParseSquare("d6")
	d5, _ := ParseSquare("d5")
	m := findMove(t, p, e5, d6)
	if !m.IsEnPassant() {
		t.Fatalf("expected exd6 to be encoded as an en-passant capture")
	}
	if !p.Make(m) {
		t.Fatalf("Make rejected a legal en-passant capture")
	}
	if p.PieceAt(d5) != Empty {
		t.Fatalf("en-passant victim on d5 was not cleared")
	}
	if p.PieceAt(d6) != NewPiece(Pawn, White) {
		t.Fatalf("capturing pawn not on d6 after en-passant")
	}
	p.Unmake()
	if p.PieceAt(d5) != NewPiece(Pawn, Black) {
		t.Fatalf("en-passant victim not restored to d5 after unmake")
	}
	if p.PieceAt(e5) != NewPiece(Pawn, White) || p.PieceAt(d6) != Empty {
		t.Fatalf("capturing pawn not restored to e5 after unmake")
	}
}

func TestMakeSetsEPTargetOnDoublePush(t *testing.T) {
	p := mustParse(t, StartFEN)
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	e3, _ := ParseSquare("e3")
	m := findMove(t, p, e2, e4)
	if !p.Make(m) {
		t.Fatalf("Make rejected e2e4")
	}
	if p.EPTarget() != e3 {
		t.Fatalf("e.p. target after e2e4 = %v, want e3", p.EPTarget())
	}
}

func TestMakeCaptureOfUnmovedRookRevokesRight(t *testing.T) {
	p := mustParse(t, "r3k2r/8/1N6/8/8/8/8/R3K2R w KQkq - 0 1")
	b6, _ := ParseSquare("b6")
	a8, _ := ParseSquare("a8")
	m := findMove(t, p, b6, a8)
	if !p.Make(m) {
		t.Fatalf("Make rejected knight capture on a8")
	}
	if p.Castling()&BlackQueenside != 0 {
		t.Fatalf("black queenside right not revoked after its unmoved rook was captured")
	}
}

func TestUnmakeWithEmptyStackPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Unmake on an empty undo stack to panic")
		}
	}()
	p := mustParse(t, StartFEN)
	p.Unmake()
}

func TestMakeHalfmoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	p := mustParse(t, "8/8/8/8/8/8/4P3/4K2k w - - 17 5")
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	m := findMove(t, p, e2, e4)
	p.Make(m)
	if p.HalfmoveClock() != 0 {
		t.Fatalf("halfmove clock = %d, want 0 after a pawn move", p.HalfmoveClock())
	}
}

func TestMakeFullmoveNumberIncrementsAfterBlack(t *testing.T) {
	p := mustParse(t, "4k3/4p3/8/8/8/8/8/4K3 b - - 0 9")
	e7, _ := ParseSquare("e7")
	e5, _ := ParseSquare("e5")
	m := findMove(t, p, e7, e5)
	p.Make(m)
	if p.FullmoveNumber() != 10 {
		t.Fatalf("fullmove number = %d, want 10 after Black's move", p.FullmoveNumber())
	}
}
