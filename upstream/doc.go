// Package upstream marks and emits the upstream features of a reduced
// network: every vertex and edge lying on some simple path from the
// Head sentinel to the Tail sentinel.
//
// What:
//
//   - Trace(n): a single non-recursive depth-first sweep rooted at Head
//     that simultaneously computes low-link values, articulation
//     points, and per-biconnected-component reachability of Tail. A
//     component is upstream exactly when the subtree that closed it
//     could reach Tail; the component containing Head is upstream by
//     construction.
//   - Emit(n, res, w): a second non-recursive sweep over the marked
//     subgraph, writing each upstream vertex name exactly once and each
//     upstream edge name exactly once. Names already carry their
//     terminator, so no extra delimiters are written.
//   - Analyze(n, w): Trace followed by Emit.
//
// Why the block-cut view works:
//
//	Biconnected components meet only at articulation points, so the
//	induced block-cut structure is a forest: there is at most one path
//	of components from the component containing Head to the one
//	containing Tail, and the upstream features are precisely the
//	vertices and edges of the components along it. Inside a biconnected
//	component, a simple path exists through any three vertices, which is
//	why whole components are marked at once.
//
// Mechanics:
//
//	The sweep runs on an explicit frame stack — (vertex, arc cursor,
//	accumulated low-link, reached-Tail flag, started flag) — so deeply
//	chained networks cannot overflow the call stack. A child's
//	reached-Tail flag is threaded between stack pops to emulate a
//	return value. Vertices accumulate on a component stack; when the
//	articulation condition low(child) ≥ disc(parent) fires, the entries
//	above and including the child form a finished component and are
//	marked if the child's subtree reached Tail. Edges deleted by
//	Reduction 1 are skipped everywhere.
//
// Termination:
//
//	Rooted at Head, the sweep visits every Head-reachable vertex exactly
//	once and stops when the frame stack empties. Unreachable vertices
//	stay unmarked and never appear in the output.
//
// Complexity:
//
//   - Trace: Time O(V + E), Memory O(V)
//   - Emit:  Time O(V + E), Memory O(V + E) for the emitted flags
//
// Errors:
//
//   - ErrNetworkNil     — nil *netgraph.Network.
//   - ErrResultMismatch — a Result from a different (or stale) network.
package upstream
