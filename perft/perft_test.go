package perft_test

import (
	"testing"

	"chess-engine/board0x88"
	"chess-engine/perft"
)

func parse(t *testing.T, fen string) *board0x88.Position {
	t.Helper()
	p, ok := board0x88.Parse(fen)
	if !ok {
		t.Fatalf("Parse(%q) failed", fen)
	}
	return p
}

func TestLeavesInitialPosition(t *testing.T) {
	p := parse(t, board0x88.StartFEN)
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		if got := perft.Leaves(p, c.depth); got != c.want {
			t.Errorf("Leaves(initial, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestLeavesKiwipete(t *testing.T) {
	p := parse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		if got := perft.Leaves(p, c.depth); got != c.want {
			t.Errorf("Leaves(kiwipete, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestLeavesDoesNotMutatePosition(t *testing.T) {
	p := parse(t, board0x88.StartFEN)
	before := p.FEN()
	perft.Leaves(p, 3)
	if got := p.FEN(); got != before {
		t.Fatalf("Leaves mutated the position: got %q, want %q", got, before)
	}
}

func TestRunReportsIntegrityAndCategories(t *testing.T) {
	p := parse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	r := perft.Run(p, 2)
	if r.Nodes.Actual != 2039 {
		t.Errorf("Nodes.Actual = %d, want 2039", r.Nodes.Actual)
	}
	if r.Captures.Actual != 351 {
		t.Errorf("Captures.Actual = %d, want 351", r.Captures.Actual)
	}
	if r.EnPassants.Actual != 1 {
		t.Errorf("EnPassants.Actual = %d, want 1", r.EnPassants.Actual)
	}
	if r.Castles.Actual != 91 {
		t.Errorf("Castles.Actual = %d, want 91", r.Castles.Actual)
	}
	if r.Checks.Actual != 3 {
		t.Errorf("Checks.Actual = %d, want 3", r.Checks.Actual)
	}
	if !r.IntegrityOK {
		t.Errorf("IntegrityOK = false, FEN before=%q after=%q", r.FENBefore, r.FENAfter)
	}
	if !r.SetupPassed {
		t.Errorf("SetupPassed = false")
	}
}

func TestDivideSumsToLeaves(t *testing.T) {
	p := parse(t, board0x88.StartFEN)
	div := perft.Divide(p, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := perft.Leaves(p, 3); sum != want {
		t.Errorf("sum of Divide(3) = %d, want %d", sum, want)
	}
	if len(div) != 20 {
		t.Errorf("Divide(3) produced %d root moves, want 20", len(div))
	}
}
