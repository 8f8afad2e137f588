package upstream

import (
	"github.com/katalvlaran/watershed/netgraph"
)

// Trace runs the marking sweep: one non-recursive depth-first traversal
// rooted at Head that computes discovery order, low-link values and
// articulation points, and marks every biconnected component whose
// closing subtree reached Tail. The network is treated as read-only.
func Trace(n *netgraph.Network) (*Result, error) {
	// 1. Validate input.
	if n == nil {
		return nil, ErrNetworkNil
	}

	// 2. Per-vertex state: discovery order (0 = unvisited), low-link,
	//    and the upstream marks being computed.
	nv := n.VertexCount()
	disc := make([]int, nv)
	low := make([]int, nv)
	up := make([]bool, nv)

	// 3. The component accumulator and the explicit recursion stack.
	count := 1
	acc := make([]int, 0, nv)
	stk := make([]frame, 0, 64)
	stk = append(stk, frame{v: netgraph.Head, low: count})
	count++

	// childReached threads the "subtree reached Tail" return value
	// between a child's final pop and its parent's next pop.
	childReached := false

	for len(stk) > 0 {
		fm := stk[len(stk)-1]
		stk = stk[:len(stk)-1]
		fm.reached = fm.reached || childReached // fetch the return value

		if fm.started {
			// Returning from the recursion on arc fm.i: test the
			// articulation condition against the child's final low-link.
			u := n.Adj[fm.v][fm.i].To
			if low[u] >= disc[fm.v] {
				// fm.v is an articulation point; everything above and
				// including u on the accumulator is one finished
				// biconnected component, upstream iff the child's
				// subtree reached Tail.
				for acc[len(acc)-1] != u {
					top := acc[len(acc)-1]
					up[top] = up[top] || childReached
					acc = acc[:len(acc)-1]
				}
				up[u] = up[u] || childReached
				acc = acc[:len(acc)-1]
			} else if low[u] < fm.low {
				fm.low = low[u] // merge the child's low-link
			}
			fm.i++
		} else {
			// First sighting of fm.v: assign discovery order and join
			// the in-progress component.
			disc[fm.v] = fm.low
			low[fm.v] = fm.low
			acc = append(acc, fm.v)
		}

		// Skip arcs that lead to visited vertices or run over deleted
		// edges, folding back-edge information into this frame.
		arcs := n.Adj[fm.v]
		for fm.i < len(arcs) {
			arc := arcs[fm.i]
			if disc[arc.To] == 0 && !n.Deleted[arc.Edge] {
				break // an unexplored, live arc: recurse below
			}
			if !n.Deleted[arc.Edge] {
				fm.reached = fm.reached || arc.To == netgraph.Tail
				if low[arc.To] < fm.low {
					fm.low = low[arc.To]
				}
			}
			fm.i++
		}

		if fm.i == len(arcs) {
			// All arcs exhausted: finalize the low-link and return the
			// reachability flag to the caller frame.
			low[fm.v] = fm.low
			childReached = fm.reached

			continue
		}

		// Recurse through arc fm.i.
		fm.reached = fm.reached || arcs[fm.i].To == netgraph.Tail
		fm.started = true
		stk = append(stk, fm)
		stk = append(stk, frame{v: arcs[fm.i].To, low: count})
		count++
		childReached = false
	}

	// 4. Whatever remains accumulated belongs to Head's own biconnected
	//    component, which lies on the path by construction.
	for len(acc) > 0 {
		up[acc[len(acc)-1]] = true
		acc = acc[:len(acc)-1]
	}

	// 5. Count the marks for diagnostics.
	res := &Result{Upstream: up}
	for _, m := range up {
		if m {
			res.Marked++
		}
	}

	return res, nil
}
