// Package netgraph builds the dense-index, undirected multigraph that
// the upstream analysis runs on, straight from a streaming scan of the
// network export — no intermediate document tree.
//
// What:
//
//   - Network: vertex and edge tables with dense 0-based indices,
//     adjacency lists of (neighbor, edge) Arcs, logical edge deletion,
//     and the two sentinel vertices Head (index 0) and Tail (index 1).
//   - Build(data, starts, opts...): consumes the JSON export and the
//     starting-points file, applying both structural reductions during
//     construction:
//
//     Reduction 1 (edge→vertex): an edge cited as a starting point or
//     controller is replaced by one substitute vertex per physical
//     segment it spans, each adopting the edge's global ID and wired
//     to the segment's two endpoints; the edge is marked deleted.
//     An edge is exploded at most once — later citations reuse the
//     substitutes.
//
//     Reduction 2 (single source/sink): every starting point is wired
//     to Head and every controller to Tail through a reserved dummy
//     edge, turning multi-source/multi-sink reachability into plain
//     HEAD→TAIL reachability.
//
// Identifier conventions:
//
//	Identifiers are opaque byte strings carrying the jsonscan.Terminator
//	suffix. Vertex names and edge names live in disjoint namespaces that
//	may collide in literal text; a starting point or controller matching
//	both gets both wirings. Identifiers matching neither are no-ops.
//
// Lifecycle:
//
//	All records are created exactly once during Build and never removed;
//	deletion is logical (Deleted flag) so that indices stay stable for
//	adjacency entries built earlier. After Build returns, the Network is
//	read-only — the traversal phase never mutates it.
//
// Failure policy:
//
//	A row missing one of its three identifiers contributes no edge and
//	parsing continues. Exhausting the input mid-structure aborts Build
//	with jsonscan.ErrUnexpectedEOF.
//
// Complexity:
//
//   - Build: Time O(bytes + V + E), Memory O(V + E).
//
// Options:
//
//   - WithStrictOrder()   use the order-dependent cursor (faster, but
//     assumes the canonical key order of the export)
//   - WithLogger(l)       structured progress/stats logging via slog
//
// Errors:
//
//   - ErrNilInput               — a nil reader was supplied.
//   - jsonscan.ErrUnexpectedEOF — input ended mid-structure.
package netgraph
