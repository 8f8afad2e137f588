package netgraph

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/watershed/jsonscan"
)

// Quoted wire forms of the keys consumed from the export. Everything
// else in the document is ignored.
const (
	keyRows        = `"rows"`
	keyControllers = `"controllers"`
	keyVia         = `"viaGlobalId"`
	keyFrom        = `"fromGlobalId"`
	keyTo          = `"toGlobalId"`
	keyGlobalID    = `"globalId"`
)

// Build consumes the JSON network export from data and the
// starting-points file from starts, returning the fully reduced
// Network. The construction sequence follows the canonical document
// order: rows (vertex/edge tables + adjacency), dummy edge,
// controllers (Tail wiring), then starting points (Head wiring).
//
// data is read exactly once, forward; starts likewise. The returned
// Network is read-only.
func Build(data io.Reader, starts io.Reader, opts ...Option) (*Network, error) {
	// 1. Validate inputs and apply options.
	if data == nil || starts == nil {
		return nil, ErrNilInput
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Seed the tables with the Head/Tail sentinels.
	n := newNetwork()

	// 3. Drive construction off the byte stream, with the selected
	//    cursor strategy.
	sc := jsonscan.NewScanner(data)
	var err error
	if cfg.strictOrder {
		err = n.readStrict(sc)
	} else {
		err = n.readAnyOrder(sc)
	}
	if err != nil {
		return nil, fmt.Errorf("netgraph: network document: %w", err)
	}
	n.stats.BytesScanned = sc.BytesRead()

	// 4. A document without a rows list still needs the dummy edge
	//    before any sentinel wiring can happen.
	n.ensureDummy()

	// 5. Starting points wire to Head exactly the way controllers wired
	//    to Tail.
	if err = n.readStartingPoints(starts); err != nil {
		return nil, fmt.Errorf("netgraph: starting points: %w", err)
	}

	cfg.logger.Debug("network constructed",
		slog.Int("vertices", n.VertexCount()),
		slog.Int("edges", n.EdgeCount()),
		slog.Int("rows", n.stats.Rows),
		slog.Int("skipped_rows", n.stats.SkippedRows),
		slog.Int("controllers", n.stats.Controllers),
		slog.Int("starting_points", n.stats.StartingPoints),
		slog.Int64("bytes_scanned", n.stats.BytesScanned),
	)

	return n, nil
}

// readAnyOrder consumes the export with the order-independent cursor:
// rows and controllers may arrive in either order, and row keys may be
// arbitrarily shuffled.
func (n *Network) readAnyOrder(sc *jsonscan.Scanner) error {
	_, err := sc.ScanField([]string{keyRows, keyControllers}, func(i int) error {
		switch i {
		case 0: // rows
			if _, inErr := sc.ScanList(func() error { return n.readRow(sc) }); inErr != nil {
				return inErr
			}
			n.ensureDummy()

			return nil
		case 1: // controllers
			_, inErr := sc.ScanList(func() error { return n.readController(sc) })

			return inErr
		default:
			return nil
		}
	})

	return err
}

// readRow parses one element of the rows list and records its edge.
// A row missing any of the three identifiers contributes nothing.
func (n *Network) readRow(sc *jsonscan.Scanner) error {
	var via, from, to []byte
	ok, err := sc.ScanField([]string{keyVia, keyFrom, keyTo}, func(i int) error {
		var exErr error
		switch i {
		case 0:
			via, exErr = sc.ExtractString(via[:0])
		case 1:
			from, exErr = sc.ExtractString(from[:0])
		case 2:
			to, exErr = sc.ExtractString(to[:0])
		}

		return exErr
	})
	if err != nil || !ok {
		return err
	}
	n.addRow(via, from, to)

	return nil
}

// readController parses one element of the controllers list and wires
// the identified feature to Tail.
func (n *Network) readController(sc *jsonscan.Scanner) error {
	var id []byte
	ok, err := sc.ScanField([]string{keyGlobalID}, func(int) error {
		var exErr error
		id, exErr = sc.ExtractString(id[:0])

		return exErr
	})
	if err != nil || !ok {
		return err
	}
	if len(id) == 0 {
		return nil
	}
	n.stats.Controllers++
	n.ensureDummy()
	n.attach(Tail, string(id))

	return nil
}

// readStrict consumes the export with the order-dependent cursor,
// assuming the canonical key order of the GIS export: a top-level
// object holding "rows" before "controllers", each row carrying
// viaGlobalId, fromGlobalId, toGlobalId in exactly that order.
func (n *Network) readStrict(sc *jsonscan.Scanner) error {
	if _, err := sc.BeginField(); err != nil {
		return err
	}
	found, err := sc.ReadToKey(keyRows)
	if err != nil {
		return err
	}
	if !found {
		return nil // no rows section; the top-level object is consumed
	}
	if _, err = sc.BeginList(); err != nil {
		return err
	}
	for {
		entered, err := sc.BeginField()
		if err != nil {
			return err
		}
		if !entered {
			break // the rows list closed
		}
		if err = n.readRowStrict(sc); err != nil {
			return err
		}
		if err = sc.EndField(); err != nil {
			return err
		}
	}
	n.ensureDummy()

	if found, err = sc.ReadToKey(keyControllers); err != nil {
		return err
	}
	if !found {
		return nil // no controllers section; the top-level object is consumed
	}
	if _, err = sc.BeginList(); err != nil {
		return err
	}
	for {
		entered, err := sc.BeginField()
		if err != nil {
			return err
		}
		if !entered {
			break // the controllers list closed
		}
		if _, err = sc.ReadToKey(keyGlobalID); err != nil {
			return err
		}
		id, exErr := sc.ExtractString(nil)
		if exErr != nil {
			return exErr
		}
		n.stats.Controllers++
		n.attach(Tail, string(id))
		if err = sc.EndField(); err != nil {
			return err
		}
	}

	// Consume the remainder of the top-level object.
	return sc.EndField()
}

// readRowStrict parses one row assuming the canonical key order.
func (n *Network) readRowStrict(sc *jsonscan.Scanner) error {
	var via, from, to []byte
	for _, field := range []struct {
		key string
		dst *[]byte
	}{
		{keyVia, &via},
		{keyFrom, &from},
		{keyTo, &to},
	} {
		if _, err := sc.ReadToKey(field.key); err != nil {
			return err
		}
		v, err := sc.ExtractString(nil)
		if err != nil {
			return err
		}
		*field.dst = v
	}
	n.addRow(via, from, to)

	return nil
}

// addRow resolves the three identifiers of a complete row and records
// the edge: first sighting allocates, later sightings reuse; the
// (from, to) pair joins the edge's span multiset; adjacency is mirrored.
func (n *Network) addRow(via, from, to []byte) {
	if len(via) == 0 || len(from) == 0 || len(to) == 0 {
		n.stats.SkippedRows++

		return
	}

	fromV := n.internVertex(string(from))
	toV := n.internVertex(string(to))
	e := n.internEdge(string(via))

	n.spans[e] = append(n.spans[e], span{u: fromV, v: toV})
	n.link(fromV, toV, e)
	n.stats.Rows++
}

// attach wires the feature identified by id to the given sentinel
// (Head for starting points, Tail for controllers). The two namespace
// lookups are independent: an identifier naming both a vertex and an
// edge gets both wirings.
//
// When id names an edge, Reduction 1 runs on first citation: every
// segment the edge spans is replaced by a substitute vertex adopting
// the edge's identifier, wired to the segment endpoints and to the
// sentinel; the edge is marked deleted. Later citations reuse the
// existing substitutes.
func (n *Network) attach(sentinel int, id string) {
	if v, ok := n.vertexIdx[id]; ok {
		n.link(sentinel, v, n.dummy)
	}

	e, ok := n.edgeIdx[id]
	if !ok {
		return // no structural match: a silent no-op
	}

	if subs, exploded := n.split[e]; exploded {
		for _, v := range subs {
			n.link(sentinel, v, n.dummy)
		}

		return
	}

	n.Deleted[e] = true
	subs := make([]int, 0, len(n.spans[e]))
	for _, sp := range n.spans[e] {
		v := n.addVertex(id) // the substitute adopts the edge's identifier
		subs = append(subs, v)
		n.link(sentinel, v, n.dummy)
		n.link(v, sp.u, n.dummy)
		n.link(v, sp.v, n.dummy)
	}
	n.split[e] = subs
}

// readStartingPoints applies the controller wiring logic to each line
// of the starting-points file, targeting Head instead of Tail. Each
// line is matched under the same terminator convention as extracted
// JSON strings.
func (n *Network) readStartingPoints(r io.Reader) error {
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		n.stats.StartingPoints++
		n.attach(Head, lines.Text()+string(jsonscan.Terminator))
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("read: %w", err)
	}

	return nil
}
