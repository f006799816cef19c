// Package partition defines the shared partition state mutated by the
// refinement algorithms, plus the cut-size and I/O metrics computed over it.
//
// State model:
//
//	An Assignment is a list of disjoint node sets covering the graph, paired
//	with a node→partition-index reverse map. The two structures are only ever
//	updated together (Move, ReplacePair), so no algorithm can observe one out
//	of sync with the other. Neither is derived lazily from the other
//	mid-algorithm.
//
// Metrics:
//
//   - CutSize: number of logical directed edges whose endpoints lie in
//     different partitions. O(E), one pass.
//   - IO: per partition, the count of distinct external predecessor and
//     successor nodes (signals entering vs. leaving the partition).
//   - AdjacentPairs: the set of partition index pairs connected by at least
//     one edge, computed in a single O(E) edge scan (never a cross-product
//     over partition contents) and returned in ascending (i, j) order so
//     the downstream pairwise refinement order is reproducible.
//
// Errors (sentinel):
//
//	ErrOverlap       - a node appears in more than one partition.
//	ErrNodeUnassigned - a moved node is not present in the assignment.
//	ErrBadIndex      - a partition index is out of range.
package partition
