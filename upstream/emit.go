package upstream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/watershed/netgraph"
)

// Emit writes the upstream features to w: a second non-recursive sweep
// from Head that follows only arcs whose neighbor is marked upstream,
// printing each upstream vertex name exactly once and each upstream
// edge name exactly once. Arcs over deleted edges are skipped — an
// exploded edge's identifier is already represented by its substitute
// vertices. Names carry their own terminator, so nothing else is
// written between them.
//
// Explicit emitted flags (per vertex and per edge) guarantee the
// exactly-once property on every graph shape, including the high-index
// substitute vertices introduced by Reduction 1.
func Emit(n *netgraph.Network, res *Result, w io.Writer) error {
	// 1. Validate input.
	if n == nil {
		return ErrNetworkNil
	}
	if res == nil || len(res.Upstream) != n.VertexCount() {
		return ErrResultMismatch
	}

	// 2. Emission bookkeeping: one flag per vertex, one per edge.
	bw := bufio.NewWriter(w)
	doneV := make([]bool, n.VertexCount())
	doneE := make([]bool, n.EdgeCount())

	// 3. Walk the marked subgraph. Head is a sentinel with an empty
	//    name, so seeding it emits nothing.
	stack := append(make([]int, 0, res.Marked+1), netgraph.Head)
	doneV[netgraph.Head] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, arc := range n.Adj[v] {
			if !res.Upstream[arc.To] || n.Deleted[arc.Edge] {
				continue
			}
			if !doneE[arc.Edge] {
				doneE[arc.Edge] = true
				if _, err := bw.WriteString(n.EdgeNames[arc.Edge]); err != nil {
					return fmt.Errorf("upstream: emit: %w", err)
				}
			}
			if !doneV[arc.To] {
				doneV[arc.To] = true
				if _, err := bw.WriteString(n.Names[arc.To]); err != nil {
					return fmt.Errorf("upstream: emit: %w", err)
				}
				stack = append(stack, arc.To)
			}
		}
	}

	// 4. Flush the buffered output.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("upstream: emit: %w", err)
	}

	return nil
}

// Analyze runs the full pipeline on a constructed network: Trace marks
// the upstream features, Emit writes them to w.
func Analyze(n *netgraph.Network, w io.Writer) (*Result, error) {
	res, err := Trace(n)
	if err != nil {
		return nil, err
	}
	if err = Emit(n, res, w); err != nil {
		return res, err
	}

	return res, nil
}
