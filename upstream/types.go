package upstream

import "errors"

var (
	// ErrNetworkNil is returned when a nil *netgraph.Network is passed
	// to Trace, Emit, or Analyze.
	ErrNetworkNil = errors.New("upstream: network is nil")

	// ErrResultMismatch is returned by Emit when the Result does not
	// match the network's vertex table (wrong or stale Result).
	ErrResultMismatch = errors.New("upstream: result does not match network")
)

// Result captures the outcome of the marking sweep.
type Result struct {
	// Upstream[v] reports whether vertex v lies on some simple
	// Head→Tail path. Indexed by the network's dense vertex indices,
	// sentinels included.
	Upstream []bool

	// Marked is the number of vertices marked upstream, sentinels
	// included. Useful for run diagnostics.
	Marked int
}

// frame is one entry of the explicit recursion stack.
type frame struct {
	v       int  // vertex under exploration
	i       int  // index of the last arc checked
	low     int  // accumulated low-link value
	reached bool // subtree can reach Tail
	started bool // at least one arc has been explored
}
