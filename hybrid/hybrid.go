// Package hybrid: the Partition entry point.
package hybrid

import (
	"fmt"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/iobalance"
	"github.com/F4nJ/2FoldSyn/klrefine"
	"github.com/F4nJ/2FoldSyn/partition"
	"github.com/F4nJ/2FoldSyn/spectral"
)

// Partition runs the full hybrid pipeline over g with the given target
// partition size and returns the finalized partition list plus phase
// metrics. The returned partitions are disjoint, non-empty, and cover every
// node of g.
//
// Degenerate inputs are not errors: an empty graph yields an empty list, and
// a graph no larger than targetSize yields one partition with all nodes.
//
// Determinism: identical graph, configuration, and seed produce an identical
// partition list across runs.
func Partition(g *circuit.Graph, targetSize int, opts ...Option) (*Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if targetSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadTargetSize, targetSize)
	}
	if cfg.KLMaxIter < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadKLIter, cfg.KLMaxIter)
	}
	if cfg.Alpha < 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadAlpha, cfg.Alpha)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger()
	}

	// 2) Degenerate sizes.
	n := g.NodeCount()
	if n == 0 {
		return &Result{Parts: []partition.NodeSet{}}, nil
	}
	k := (n + targetSize - 1) / targetSize
	if k < 2 {
		logger.Info("graph fits a single partition", "nodes", n, "target", targetSize)

		return singlePartitionResult(g)
	}

	// 3) Coarse phase: spectral clustering into k groups.
	logger.Info("coarse partitioning", "nodes", n, "k", k, "seed", cfg.Seed)
	parts, err := spectral.Cluster(g, k, spectral.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("hybrid: coarse clustering: %w", err)
	}
	asg, err := partition.NewAssignment(parts)
	if err != nil {
		return nil, fmt.Errorf("hybrid: coarse clustering: %w", err)
	}

	report := Report{K: k, InitialCut: partition.CutSize(g, asg)}
	logger.Info("cut size", "phase", "spectral", "cut", report.InitialCut)

	// 4) Boundary refinement: Kernighan-Lin per adjacent pair, ascending
	// order. Pairs share partition indices, so each refinement sees the
	// latest state left by the previous one; the fixed order keeps the
	// outcome reproducible.
	pairs := partition.AdjacentPairs(g, asg)
	report.Pairs = len(pairs)
	logger.Info("boundary refinement", "pairs", len(pairs), "max_iter", cfg.KLMaxIter)
	for _, p := range pairs {
		a, b, err := klrefine.Bisect(g, asg.Part(p.I), asg.Part(p.J), cfg.KLMaxIter)
		if err != nil {
			return nil, fmt.Errorf("hybrid: refining pair (%d,%d): %w", p.I, p.J, err)
		}
		if err := asg.ReplacePair(p.I, p.J, a, b); err != nil {
			return nil, fmt.Errorf("hybrid: refining pair (%d,%d): %w", p.I, p.J, err)
		}
	}
	report.RefinedCut = partition.CutSize(g, asg)
	logger.Info("cut size", "phase", "kl", "cut", report.RefinedCut)

	// 5) Final phase: greedy I/O balancing to a local optimum.
	moves, err := iobalance.Balance(g, asg, cfg.Alpha)
	if err != nil {
		return nil, fmt.Errorf("hybrid: io balancing: %w", err)
	}
	report.Moves = moves
	report.FinalCut = partition.CutSize(g, asg)
	logger.Info("cut size", "phase", "iobalance", "cut", report.FinalCut, "moves", moves)

	// 6) Finalize: drop empties and collect per-partition stats.
	final := asg.DropEmpty()
	report.Partitions = partitionInfos(g, final)
	for _, pi := range report.Partitions {
		logger.Info("partition", "index", pi.Index, "size", pi.Size, "inputs", pi.Inputs, "outputs", pi.Outputs)
	}

	return &Result{Parts: final, Report: report}, nil
}

// singlePartitionResult wraps the whole node set as the one-partition
// outcome of the k < 2 short-circuit.
func singlePartitionResult(g *circuit.Graph) (*Result, error) {
	all := partition.NewNodeSet(g.Nodes()...)
	final := []partition.NodeSet{all}

	return &Result{
		Parts: final,
		Report: Report{
			K:          1,
			Partitions: partitionInfos(g, final),
		},
	}, nil
}

// partitionInfos computes the per-partition size and I/O stats of the final
// list.
func partitionInfos(g *circuit.Graph, parts []partition.NodeSet) []PartitionInfo {
	infos := make([]PartitionInfo, len(parts))
	for i, p := range parts {
		in, out := partition.IO(g, p)
		infos[i] = PartitionInfo{Index: i, Size: len(p), Inputs: in, Outputs: out}
	}

	return infos
}
