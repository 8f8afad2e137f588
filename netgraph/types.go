package netgraph

import "errors"

// Sentinel vertex indices introduced by Reduction 2. They always exist,
// carry empty names, and are never part of the input network.
const (
	// Head is the single underlying starting point.
	Head = 0
	// Tail is the single underlying controller.
	Tail = 1
)

var (
	// ErrNilInput indicates a nil reader was passed to Build.
	ErrNilInput = errors.New("netgraph: nil input reader")
)

// Arc is one adjacency entry: the neighbor's vertex index and the index
// of the incident edge. The graph is undirected — every Arc is mirrored
// on the neighbor's list with the same Edge index.
type Arc struct {
	To   int // neighbor vertex index
	Edge int // incident edge index
}

// span records one physical segment an edge originally connected. An
// edge identifier may denote several segments sharing one name, so
// edges carry a multiset of spans.
type span struct {
	u, v int
}

// Network is the fully reduced graph. The exported tables are read-only
// after Build; the traversal phase may index them freely.
type Network struct {
	// Adj[v] lists the (neighbor, edge) Arcs of vertex v, mirrored.
	Adj [][]Arc

	// Names[v] is the canonical (terminator-suffixed) identifier of
	// vertex v; empty for the Head/Tail sentinels.
	Names []string

	// EdgeNames[e] is the canonical identifier of edge e; empty for the
	// dummy edge reserved by Reduction 2.
	EdgeNames []string

	// Deleted[e] marks edges removed by Reduction 1. Deleted edges stay
	// in the tables (index stability) but no longer participate in
	// connectivity.
	Deleted []bool

	spans [][]span // spans[e] = segments edge e represents

	vertexIdx map[string]int // vertex namespace: identifier → index
	edgeIdx   map[string]int // edge namespace: identifier → index

	// split maps an exploded edge to its substitute vertices, in
	// explosion order. Presence in the map means Reduction 1 already
	// ran for that edge; later citations reuse the substitutes.
	split map[int][]int

	dummy int // index of the dummy edge; -1 until reserved

	stats Stats
}

// Stats captures construction counters for run reporting.
type Stats struct {
	// Rows is the number of complete row records that contributed an edge.
	Rows int
	// SkippedRows counts rows missing one of the three identifiers.
	SkippedRows int
	// Controllers is the number of controller records seen.
	Controllers int
	// StartingPoints is the number of starting-point lines read.
	StartingPoints int
	// BytesScanned is the total JSON input consumed.
	BytesScanned int64
}

// newNetwork allocates the tables with the two sentinels pre-seeded.
func newNetwork() *Network {
	n := &Network{
		vertexIdx: make(map[string]int),
		edgeIdx:   make(map[string]int),
		split:     make(map[int][]int),
		dummy:     -1,
	}
	// Head and Tail occupy indices 0 and 1; their names are unimportant.
	n.Names = append(n.Names, "", "")
	n.Adj = append(n.Adj, nil, nil)

	return n
}

// VertexCount reports the total number of vertices, sentinels and
// Reduction-1 substitutes included.
func (n *Network) VertexCount() int { return len(n.Adj) }

// EdgeCount reports the number of edge records, dummy edge included.
func (n *Network) EdgeCount() int { return len(n.EdgeNames) }

// DummyEdge reports the index of the edge reserved for sentinel wiring,
// or -1 if it has not been created yet.
func (n *Network) DummyEdge() int { return n.dummy }

// VertexIndex resolves a canonical identifier in the vertex namespace.
func (n *Network) VertexIndex(id string) (int, bool) {
	v, ok := n.vertexIdx[id]

	return v, ok
}

// EdgeIndex resolves a canonical identifier in the edge namespace.
func (n *Network) EdgeIndex(id string) (int, bool) {
	e, ok := n.edgeIdx[id]

	return e, ok
}

// Substitutes reports the vertices edge e was exploded into by
// Reduction 1, or nil if the edge was never exploded.
func (n *Network) Substitutes(e int) []int { return n.split[e] }

// Stats reports the construction counters.
func (n *Network) Stats() Stats { return n.stats }

// addVertex appends a fresh vertex with the given canonical name and
// returns its index. It does NOT touch the identifier table: substitute
// vertices share the exploded edge's name and must stay out of the
// vertex namespace.
func (n *Network) addVertex(name string) int {
	v := len(n.Adj)
	n.Names = append(n.Names, name)
	n.Adj = append(n.Adj, nil)

	return v
}

// internVertex resolves name in the vertex namespace, allocating a
// fresh vertex on first sighting.
func (n *Network) internVertex(name string) int {
	if v, ok := n.vertexIdx[name]; ok {
		return v
	}
	v := n.addVertex(name)
	n.vertexIdx[name] = v

	return v
}

// internEdge resolves name in the edge namespace, allocating a fresh
// edge record on first sighting.
func (n *Network) internEdge(name string) int {
	if e, ok := n.edgeIdx[name]; ok {
		return e
	}
	e := len(n.EdgeNames)
	n.EdgeNames = append(n.EdgeNames, name)
	n.Deleted = append(n.Deleted, false)
	n.spans = append(n.spans, nil)
	n.edgeIdx[name] = e

	return e
}

// link adds the mirrored adjacency pair u↔v tagged with edge e.
func (n *Network) link(u, v, e int) {
	n.Adj[u] = append(n.Adj[u], Arc{To: v, Edge: e})
	n.Adj[v] = append(n.Adj[v], Arc{To: u, Edge: e})
}

// ensureDummy reserves the dummy edge used by Reduction 2 wiring. It is
// created after the rows pass in the canonical document order, and
// lazily if controllers happen to precede rows.
func (n *Network) ensureDummy() {
	if n.dummy >= 0 {
		return
	}
	n.dummy = len(n.EdgeNames)
	n.EdgeNames = append(n.EdgeNames, "")
	n.Deleted = append(n.Deleted, false)
	n.spans = append(n.spans, nil)
}
