package netgraph

import (
	"io"
	"log/slog"
)

// Option configures optional behavior of Build.
type Option func(*buildConfig)

// buildConfig holds the configurable parameters of a single Build run.
type buildConfig struct {
	strictOrder bool
	logger      *slog.Logger
}

// defaultConfig returns the baseline configuration: any-order parsing
// and a disabled logger.
func defaultConfig() buildConfig {
	return buildConfig{
		strictOrder: false,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithStrictOrder selects the order-dependent parsing strategy. It is
// faster than the default any-order strategy because it skips
// multi-pattern key matching, but it is only correct when the export
// carries keys in the canonical order (viaGlobalId, fromGlobalId,
// toGlobalId inside rows; rows before controllers).
func WithStrictOrder() Option {
	return func(c *buildConfig) { c.strictOrder = true }
}

// WithLogger attaches a structured logger for construction progress and
// stats. A nil logger has no effect (logging stays disabled).
func WithLogger(l *slog.Logger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
