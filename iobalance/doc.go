// Package iobalance implements the final greedy local-search phase of the
// partitioning pipeline: moving boundary nodes between partitions to jointly
// reduce cut size and I/O imbalance.
//
// Per pass:
//
//  1. Boundary nodes are collected in one edge scan: both endpoints of every
//     cross-partition edge. No boundary nodes means the state is converged.
//  2. For each boundary node n in partition c and each distinct partition t
//     held by one of its neighbors:
//     cut_gain = (#neighbors of n in t) − (#neighbors of n in c), with
//     predecessor and successor adjacencies counted per direction;
//     io_gain  = the drop in |inputs − outputs| summed over c and t if n
//     moved from c to t;
//     total_gain = cut_gain + α·io_gain.
//  3. The single best (node, target) move of the whole pass (not one per
//     node) applies when its total_gain is positive; otherwise the search
//     stops at a local optimum.
//
// Termination: a hard cap of one pass per graph node bounds the loop even if
// gains oscillate; hitting the cap is a stopping condition, not an error.
// On normal termination no boundary node has a positive-gain candidate move.
//
// Determinism: boundary nodes are visited in sorted ID order and candidate
// targets in ascending index order, with strictly-better-wins selection.
package iobalance
