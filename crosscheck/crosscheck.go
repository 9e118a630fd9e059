// Package crosscheck validates board0x88's perft leaf counts against an
// independent bitboard move generator (github.com/dylhunn/dragontoothmg).
// It exists purely as a test/tooling oracle: the core move generator stays
// 0x88-only, and nothing under board0x88 or perft imports this package.
package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-engine/board0x88"
	"chess-engine/perft"
)

// Mismatch describes one position where the two generators disagree.
type Mismatch struct {
	FEN         string
	Depth       int
	Got, Oracle uint64
}

// Validate runs board0x88's perft and dragontoothmg's perft independently
// from the same FEN and depth, returning a Mismatch (with ok false) if
// they disagree and an error if board0x88 fails to parse the FEN
// (dragontoothmg.ParseFen reports no error, so the oracle side is not
// checked).
func Validate(fen string, depth int) (ok bool, m Mismatch, err error) {
	pos, parsed := board0x88.Parse(fen)
	if !parsed {
		return false, Mismatch{}, fmt.Errorf("crosscheck: board0x88 could not parse %q", fen)
	}
	got := perft.Leaves(pos, depth)

	oracleBoard := dragontoothmg.ParseFen(fen)
	oracle := dragontoothmgPerft(&oracleBoard, depth)

	m = Mismatch{FEN: fen, Depth: depth, Got: got, Oracle: oracle}
	return got == oracle, m, nil
}

// dragontoothmgPerft is a minimal perft driver over the oracle's own legal
// move generator and its own Apply/unapply pair, kept local to this
// package so the oracle's API surface is exercised the same way a perft
// tool would use it.
func dragontoothmgPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var n uint64
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		n += dragontoothmgPerft(b, depth-1)
		unapply()
	}
	return n
}
