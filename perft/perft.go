// Package perft implements the performance-test move-enumeration oracle
// used to validate a board0x88.Position's move generator, plus a leaf
// classifier that breaks a run down by capture/en-passant/castle/promotion/
// check/checkmate so a failing run points at the offending move category
// instead of only a wrong total.
package perft

import "chess-engine/board0x88"

// Leaves counts the number of leaf positions reachable from p in exactly
// depth plies. depth == 0 counts the position itself as one leaf.
func Leaves(p *board0x88.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var buf [board0x88.MaxMoves]board0x88.Move
	pseudo := p.GeneratePseudoInto(buf[:0])

	var n uint64
	for _, m := range pseudo {
		if !p.Make(m) {
			continue
		}
		n += Leaves(p, depth-1)
		p.Unmake()
	}
	return n
}

// Count pairs an actual tally against an optional expected value. A Count
// with Recorded false is informational only and always reports Passed.
type Count struct {
	Recorded bool
	Expected uint64
	Actual   uint64
}

// Passed reports whether the count matches its expectation, or is
// unconditionally true when no expectation was recorded.
func (c Count) Passed() bool {
	return !c.Recorded || c.Expected == c.Actual
}

// Result is a perft run broken down by move category, along with the
// setup (FEN parse) and make/unmake integrity checks that bracket it.
type Result struct {
	FEN   string
	Depth int

	Nodes      Count
	Captures   Count
	EnPassants Count
	Castles    Count
	Promotions Count
	Checks     Count
	Checkmates Count

	SetupPassed bool
	IntegrityOK bool
	FENBefore   string
	FENAfter    string
}

// Passed reports whether every recorded count matched and both the setup
// and the make/unmake integrity check succeeded.
func (r Result) Passed() bool {
	return r.Nodes.Passed() && r.Captures.Passed() && r.EnPassants.Passed() &&
		r.Castles.Passed() && r.Promotions.Passed() && r.Checks.Passed() &&
		r.Checkmates.Passed() && r.SetupPassed && r.IntegrityOK
}

// Run walks the perft tree to depth, classifying every leaf-producing move
// by category, and returns a Result with Nodes.Actual set to the total
// leaf count. Expected values are left unrecorded (Recorded: false);
// callers that know the expected counts for a canonical position should
// fill them in before calling Passed.
func Run(p *board0x88.Position, depth int) Result {
	before := p.FEN()
	r := Result{FEN: before, Depth: depth, FENBefore: before, SetupPassed: true}

	var cat categoryTally
	r.Nodes.Actual = walk(p, depth, &cat)

	r.Captures.Actual = cat.captures
	r.EnPassants.Actual = cat.enPassants
	r.Castles.Actual = cat.castles
	r.Promotions.Actual = cat.promotions
	r.Checks.Actual = cat.checks
	r.Checkmates.Actual = cat.checkmates

	r.FENAfter = p.FEN()
	r.IntegrityOK = r.FENAfter == r.FENBefore
	return r
}

type categoryTally struct {
	captures, enPassants, castles, promotions, checks, checkmates uint64
}

// walk is Leaves with per-leaf-move category classification folded in.
// Categories are attributed to the move that produced each leaf, i.e. at
// the ply immediately above depth 0, matching how the source this package
// descends from tallies perft results.
func walk(p *board0x88.Position, depth int, cat *categoryTally) uint64 {
	if depth == 0 {
		return 1
	}
	var buf [board0x88.MaxMoves]board0x88.Move
	pseudo := p.GeneratePseudoInto(buf[:0])

	var n uint64
	for _, m := range pseudo {
		captured := !p.PieceAt(m.To).IsEmpty()
		if !p.Make(m) {
			continue
		}
		if depth == 1 {
			classify(p, m, captured, cat)
		}
		n += walk(p, depth-1, cat)
		p.Unmake()
	}
	return n
}

func classify(p *board0x88.Position, m board0x88.Move, captured bool, cat *categoryTally) {
	if captured || m.IsEnPassant() {
		cat.captures++
	}
	if m.IsEnPassant() {
		cat.enPassants++
	}
	if m.IsCastle() {
		cat.castles++
	}
	if m.IsPromotion() {
		cat.promotions++
	}
	mover := p.SideToMove()
	if p.IsInCheck(mover) {
		cat.checks++
		var buf [board0x88.MaxMoves]board0x88.Move
		if len(p.GenerateLegalInto(buf[:0])) == 0 {
			cat.checkmates++
		}
	}
}

// Divide runs perft one ply at a time from the root, returning the leaf
// count contributed by each root move. Intended for diffing against a
// trusted oracle when a perft total disagrees with the expected count.
func Divide(p *board0x88.Position, depth int) map[board0x88.Move]uint64 {
	result := make(map[board0x88.Move]uint64)
	if depth <= 0 {
		return result
	}
	var buf [board0x88.MaxMoves]board0x88.Move
	pseudo := p.GeneratePseudoInto(buf[:0])
	for _, m := range pseudo {
		if !p.Make(m) {
			continue
		}
		result[m] = Leaves(p, depth-1)
		p.Unmake()
	}
	return result
}
