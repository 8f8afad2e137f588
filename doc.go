// Package watershed computes upstream features of a spatial network:
// every node and edge lying on some simple path from a designated
// starting point to a designated controller.
//
// 🚀 What is watershed?
//
//	A single-pass, allocation-conscious analyser for utility-network
//	exports (GIS Cup 2018 format) that brings together:
//		• jsonscan/  — a character-level streaming scanner over the raw
//		  byte stream: nesting counters + in-string flag, nothing more
//		• netgraph/  — dense-index graph construction driven directly by
//		  the scanner, applying the two structural reductions
//		  (edge→vertex explosion, HEAD/TAIL sentinel wiring)
//		• upstream/  — a non-recursive articulation-point DFS that marks
//		  every biconnected component on the HEAD→TAIL path, plus the
//		  feature emitter
//		• cmd/watershed — the CLI wrapper (cobra), with transparent
//		  gzip input and optional CPU profiling
//
// ✨ Why choose watershed?
//
//   - One forward sweep – the JSON document is never materialized;
//     graph construction is driven straight off the byte stream
//   - Unbounded depth – the traversal runs on an explicit frame stack,
//     so chained networks of any length cannot overflow the call stack
//   - Deterministic – single-threaded batch pass, same input → same output
//
// Pipeline, end to end:
//
//	input.json ──jsonscan──▶ netgraph.Build ──▶ upstream.Trace ──▶ upstream.Emit ──▶ output.txt
//	startingpoints.txt ────────────┘
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/watershed
package watershed
