// Package klrefine implements Kernighan-Lin bisection over the induced
// subgraph of two adjacent partitions, reducing their mutual cut.
//
// Algorithm (per pass):
//
//  1. Every unlocked node gets a D-value: external edge count (to the
//     opposite side) minus internal edge count (to its own side), over the
//     undirected logical adjacency restricted to A ∪ B.
//  2. The unlocked pair (a ∈ A, b ∈ B) maximizing
//     D(a) + D(b) − 2·w(a,b) is selected, where w(a,b) is 1 if an edge
//     connects a and b and 0 otherwise. The maximand is the cut gain of
//     swapping a and b.
//  3. A positive best gain swaps the pair tentatively and locks both nodes;
//     a non-positive best gain ends the pass.
//  4. When the pass ends, the prefix of tentative swaps with the maximum
//     cumulative gain is committed and any negative-gain suffix discarded.
//
// Passes repeat until one yields zero net gain or the iteration cap is hit.
//
// Notes:
//
//   - The bisection is seeded by the existing A/B split, so refinement is a
//     pure improvement step over the coarse clustering. Because improvement
//     happens through pair swaps, the two side sizes are preserved exactly,
//     unlike bisection variants that resample a balanced initial split and
//     drift both sides toward |A ∪ B|/2.
//   - Candidate scans walk nodes in sorted ID order and keep the first best
//     pair, so results are deterministic.
//
// Degenerate input: |A ∪ B| < 2 returns the sides unchanged. A zero
// iteration cap performs no passes.
package klrefine
