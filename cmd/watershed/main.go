// Command watershed computes the upstream features of a spatial
// network: every node and edge lying on some simple path from a
// starting point to a controller.
//
// Usage:
//
//	watershed <input.json> <startingpoints.txt> <output.txt>
//
// The input may be gzip-compressed (recognized by the .gz suffix) and
// is decompressed on the fly. The starting-points file holds one global
// ID per line. The output file receives one global ID per line, in
// traversal-from-HEAD order.
//
// Flags:
//
//	--strict-order     assume the canonical key order of the export
//	                   (faster parsing, no tolerance for reordering)
//	-v, --verbose      debug-level logging to stderr
//	--cpuprofile FILE  write a CPU profile for performance work
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/watershed/netgraph"
	"github.com/katalvlaran/watershed/upstream"
)

var (
	flagStrictOrder bool
	flagVerbose     bool
	flagCPUProfile  string
)

func main() {
	root := &cobra.Command{
		Use:   "watershed <input.json> <startingpoints.txt> <output.txt>",
		Short: "Find all upstream features of a spatial network",
		Long: `watershed reads a spatial-network export (JSON) and a list of
starting points, and writes the global IDs of all upstream features:
nodes and edges lying on some simple path from a starting point to a
controller. The whole analysis is one forward sweep over the input.`,
		Args:          cobra.ExactArgs(3),
		RunE:          run,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&flagStrictOrder, "strict-order", false,
		"assume canonical key order in the export (faster, less tolerant)")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"debug-level logging")
	root.Flags().StringVar(&flagCPUProfile, "cpuprofile", "",
		"write a CPU profile to the given file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "watershed:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flagCPUProfile != "" {
		prof, err := os.Create(flagCPUProfile)
		if err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer prof.Close()
		if err = pprof.StartCPUProfile(prof); err != nil {
			return fmt.Errorf("cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	started := time.Now()

	// Fail fast on unopenable inputs; no partial output is ever written.
	data, err := openInput(args[0])
	if err != nil {
		return err
	}
	defer data.Close()

	starts, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("starting points: %w", err)
	}
	defer starts.Close()

	opts := []netgraph.Option{netgraph.WithLogger(logger)}
	if flagStrictOrder {
		opts = append(opts, netgraph.WithStrictOrder())
	}
	n, err := netgraph.Build(data, starts, opts...)
	if err != nil {
		return err
	}

	out, err := os.Create(args[2])
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	res, err := upstream.Analyze(n, out)
	if err != nil {
		out.Close()

		return err
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	st := n.Stats()
	logger.Info("analysis complete",
		slog.String("rows", humanize.Comma(int64(st.Rows))),
		slog.String("vertices", humanize.Comma(int64(n.VertexCount()))),
		slog.String("edges", humanize.Comma(int64(n.EdgeCount()))),
		slog.Int("controllers", st.Controllers),
		slog.Int("starting_points", st.StartingPoints),
		slog.String("scanned", humanize.Bytes(uint64(st.BytesScanned))),
		slog.Int("upstream_vertices", res.Marked),
		slog.Duration("elapsed", time.Since(started)),
	)

	return nil
}

// openInput opens the network export, transparently decompressing
// gzip-compressed files by their .gz suffix.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("input: %w", err)
	}

	return &gzipInput{zr: zr, f: f}, nil
}

// gzipInput couples a gzip reader with its underlying file so that
// Close releases both.
type gzipInput struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipInput) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipInput) Close() error {
	zErr := g.zr.Close()
	fErr := g.f.Close()
	if zErr != nil {
		return zErr
	}

	return fErr
}
