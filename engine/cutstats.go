package engine

import (
	"fmt"
	"io"
)

// Stats collects node and cutoff counts for one search.
type Stats struct {
	Nodes            uint64
	Leaves           uint64
	TerminalLeaves   uint64 // checkmate or stalemate reached inside the tree
	RepetitionLeaves uint64 // every reply led to an already played position
	BetaCutoffs      uint64 // pruned at a maximizing node
	AlphaCutoffs     uint64 // pruned at a minimizing node
}

// DumpStats writes the counters as "info string" lines.
func DumpStats(w io.Writer, s Stats) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Leaves: %d\n", s.Leaves)
	fmt.Fprintf(w, "info string   Terminal leaves: %d\n", s.TerminalLeaves)
	fmt.Fprintf(w, "info string   Repetition leaves: %d\n", s.RepetitionLeaves)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", s.BetaCutoffs)
	fmt.Fprintf(w, "info string   Alpha cutoffs: %d\n", s.AlphaCutoffs)
}
