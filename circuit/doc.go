// Package circuit provides the directed signal-flow graph that every other
// package in this module consumes: gates, wires, and primary inputs/outputs
// connected by driver→load edges.
//
// Model:
//
//   - Node: unique string ID plus a Kind (PI, PO, Wire, Gate). Gate nodes
//     additionally carry a Func label (and/or/not/nand/nor/xor/xnor).
//   - Edge: directed (From, To) pair representing signal flow. Parallel edges
//     between the same endpoints are stored as a multiplicity count and
//     collapse to a single logical adjacency for undirected operations.
//   - Graph: node catalog plus forward/reverse adjacency. Invariant: every
//     edge endpoint exists as a node; AddEdge rejects unknown endpoints with
//     ErrNodeNotFound rather than inventing nodes of an arbitrary kind.
//
// Lifecycle:
//
//	A Graph is built once (typically by the netlist loader) and treated as
//	read-only by the partitioning algorithms. Accessors return sorted slices
//	so that iteration order is deterministic across runs.
//
// Concurrency:
//
//	A single RWMutex guards all internal maps, so concurrent builds and
//	concurrent reads are safe. The partitioning pipeline itself is strictly
//	sequential and never mutates the graph.
//
// Errors (sentinel):
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - operation referenced a non-existent node.
//	ErrBadGateFunc  - gate function label is not one of the supported set.
package circuit
