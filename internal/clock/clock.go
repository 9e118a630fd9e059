// Package clock formats perft timing results the way the command-line
// tool reports them: elapsed wall time, nodes per second, and mean time
// per node in ns below 1us, in us below 1ms, and in ms otherwise.
package clock

import (
	"fmt"
	"time"
)

// NodesPerSecond returns nodes/elapsed, or 0 if elapsed is too short to
// give a meaningful rate (matches the source's "N/A below 0.1s" guard,
// except returning a zero value instead of a sentinel string).
func NodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	if elapsed < 100*time.Millisecond {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}

// MeanTimePerNode formats elapsed/nodes in whichever of ns/us/ms keeps the
// printed value under 1000, matching GetTimeForOneNode in the source this
// package's reporting style descends from. Returns "N/A" for zero nodes.
func MeanTimePerNode(nodes uint64, elapsed time.Duration) string {
	if nodes == 0 {
		return "N/A"
	}
	perNode := elapsed / time.Duration(nodes)
	switch {
	case perNode < time.Microsecond:
		return fmt.Sprintf("%d ns", perNode.Nanoseconds())
	case perNode < time.Millisecond:
		return fmt.Sprintf("%d us", perNode.Microseconds())
	default:
		return fmt.Sprintf("%d ms", perNode.Milliseconds())
	}
}

// Report is a one-line summary of a timed run: label, depth, node count,
// elapsed wall time, nodes per second, and mean time per node.
func Report(label string, depth int, nodes uint64, elapsed time.Duration) string {
	nps := NodesPerSecond(nodes, elapsed)
	return fmt.Sprintf("%s\tdepth=%d\tnodes=%d\ttime=%s\tnps=%.0f\tmean=%s",
		label, depth, nodes, elapsed, nps, MeanTimePerNode(nodes, elapsed))
}
