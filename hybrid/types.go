// Package hybrid: sentinel errors, options, and report types.
package hybrid

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/F4nJ/2FoldSyn/partition"
)

// Sentinel errors for pipeline configuration.
var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed to Partition.
	ErrNilGraph = errors.New("hybrid: graph is nil")

	// ErrBadTargetSize indicates a non-positive target partition size.
	ErrBadTargetSize = errors.New("hybrid: target partition size must be positive")

	// ErrBadKLIter indicates a negative Kernighan-Lin iteration cap.
	ErrBadKLIter = errors.New("hybrid: KL max iterations must be non-negative")

	// ErrBadAlpha indicates a negative I/O balance weighting factor.
	ErrBadAlpha = errors.New("hybrid: io balance alpha must be non-negative")
)

// Pipeline defaults, matching the original tool's flag defaults.
const (
	// DefaultKLMaxIter bounds each pairwise Kernighan-Lin refinement.
	DefaultKLMaxIter = 10

	// DefaultAlpha weights I/O-imbalance gain against cut-size gain.
	DefaultAlpha = 0.1

	// DefaultSeed fixes the spectral clustering RNG.
	DefaultSeed int64 = 42
)

// Options configures a pipeline run.
//
// KLMaxIter – max Kernighan-Lin passes per adjacent pair (non-negative).
// Alpha     – I/O balance weighting factor (non-negative).
// Seed      – spectral clustering seed (0 ⇒ DefaultSeed).
// Logger    – phase metrics sink; nil discards.
type Options struct {
	KLMaxIter int
	Alpha     float64
	Seed      int64
	Logger    *log.Logger
}

// Option is a functional option for Partition.
type Option func(*Options)

// WithKLMaxIter overrides the per-pair Kernighan-Lin pass cap. Zero disables
// boundary refinement entirely.
func WithKLMaxIter(n int) Option {
	return func(o *Options) { o.KLMaxIter = n }
}

// WithAlpha overrides the I/O balance weighting factor. Zero makes the final
// phase a pure cut-size descent.
func WithAlpha(a float64) Option {
	return func(o *Options) { o.Alpha = a }
}

// WithSeed overrides the clustering seed. Passing 0 keeps the default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Seed = seed
		}
	}
}

// WithLogger attaches a logger receiving phase metrics at Info level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		KLMaxIter: DefaultKLMaxIter,
		Alpha:     DefaultAlpha,
		Seed:      DefaultSeed,
	}
}

// PartitionInfo is the per-partition slice of the final report.
type PartitionInfo struct {
	Index   int // position in the returned partition list
	Size    int // node count
	Inputs  int // distinct external predecessor nodes
	Outputs int // distinct external successor nodes
}

// Report carries the metrics recorded across the pipeline phases.
type Report struct {
	K          int // partition count targeted by the coarse phase
	Pairs      int // adjacent partition pairs refined
	Moves      int // balancing moves applied
	InitialCut int // cut size after spectral clustering
	RefinedCut int // cut size after Kernighan-Lin refinement
	FinalCut   int // cut size after I/O balancing
	Partitions []PartitionInfo
}

// Result is the outcome of a pipeline run: the finalized partition list and
// the phase metrics.
type Result struct {
	Parts  []partition.NodeSet
	Report Report
}

// discardLogger is the silent default sink for phase metrics.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
