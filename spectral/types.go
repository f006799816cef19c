// Package spectral: sentinel errors, options, and defaults.
package spectral

import "errors"

// Sentinel errors for spectral clustering.
var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed to Cluster.
	ErrNilGraph = errors.New("spectral: graph is nil")

	// ErrBadClusterCount indicates a negative target cluster count.
	ErrBadClusterCount = errors.New("spectral: cluster count must be non-negative")

	// ErrBadIterations indicates a non-positive k-means iteration cap.
	ErrBadIterations = errors.New("spectral: iteration cap must be positive")
)

// defaultSeed matches the original pipeline's fixed clustering seed.
const defaultSeed int64 = 42

// defaultMaxIterations bounds the k-means refinement loop. Convergence is
// typically much earlier; the cap only guarantees termination.
const defaultMaxIterations = 100

// Options configures spectral clustering.
//
// Seed          – RNG seed for k-means centroid initialization (0 ⇒ default).
// MaxIterations – hard cap on k-means refinement rounds (must be positive).
type Options struct {
	Seed          int64
	MaxIterations int
}

// Option is a functional option for Cluster.
type Option func(*Options)

// WithSeed fixes the k-means initialization seed. Passing 0 keeps the
// default seed (42), preserving the zero-value-means-default policy.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Seed = seed
		}
	}
}

// WithMaxIterations overrides the k-means iteration cap.
// Must be positive; non-positive values panic with ErrBadIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns the baseline configuration: seed 42 and a
// 100-iteration k-means cap.
func DefaultOptions() Options {
	return Options{
		Seed:          defaultSeed,
		MaxIterations: defaultMaxIterations,
	}
}
