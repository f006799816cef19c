// Package spectral computes the coarse k-way partition that seeds the hybrid
// partitioning pipeline.
//
// Algorithm:
//
//  1. Build the weighted affinity matrix of the undirected projection of the
//     circuit graph. The weight between two nodes is the edge multiplicity
//     across both directions (1 for a plain netlist).
//  2. Form the normalized symmetric Laplacian L = I − D^{-1/2} A D^{-1/2}.
//     Isolated nodes (degree 0) contribute only their identity entry, so a
//     disconnected or degenerate graph never produces NaN terms.
//  3. Eigendecompose L (gonum mat.EigenSym) and take the k eigenvectors of
//     smallest eigenvalue as a k-dimensional embedding; rows are normalized
//     to unit length where non-zero.
//  4. Cluster the embedded points with seeded k-means under a hard iteration
//     cap; each node receives its point's cluster label.
//
// Determinism: the k-means seed is an explicit option (default 42) and all
// tie-breaks resolve toward the lowest index, so identical inputs and
// configuration always produce identical labels.
//
// Degenerate inputs:
//
//   - k < 2 short-circuits to a single partition holding every node.
//   - k ≥ node count yields singleton clusters (plus empty ones), which the
//     caller must tolerate.
//   - If the eigendecomposition fails to converge, clustering falls back to
//     deterministic contiguous chunking of the sorted node order rather than
//     a fatal numeric error.
//
// Complexity: O(V³) for the dense eigendecomposition; V is bounded by the
// pre-partitioned circuit sizes this pipeline targets.
package spectral
