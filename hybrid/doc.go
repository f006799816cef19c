// Package hybrid sequences the three-phase circuit partitioning pipeline:
// spectral coarse clustering, pairwise Kernighan-Lin boundary refinement, and
// greedy I/O balancing.
//
// Pipeline:
//
//  1. k = ceil(node count / target partition size). An empty graph yields an
//     empty partition list; k < 2 yields a single partition holding every
//     node. Neither is an error.
//  2. spectral.Cluster seeds the k-way split (deterministic seed, default 42).
//  3. partition.AdjacentPairs finds connected partition index pairs; each
//     pair is refined with klrefine.Bisect in ascending (i, j) order,
//     mutating the shared assignment in place. A partition appearing in
//     several pairs is refined repeatedly against its latest state, so this
//     fixed order is what makes results reproducible.
//  4. iobalance.Balance trades residual cut size against I/O imbalance until
//     a local optimum or its pass cap.
//  5. Empty partitions are dropped; the result is an ordered list of
//     disjoint, non-empty node sets covering every graph node.
//
// Cut size is recorded at each phase boundary, and the final report carries
// per-partition size and external input/output counts. An optional
// charmbracelet logger receives the same metrics as the run progresses; the
// core stays silent by default.
package hybrid
