// Package netlist loads simple structural Verilog into a circuit.Graph, the
// producer side of the partitioning pipeline.
//
// Supported subset:
//
//	input  a, b;          // primary inputs
//	output y;             // primary outputs
//	wire   n1, n2;        // internal nets
//	and    g1 (y, a, b);  // gate instances: output first, then inputs
//
// Gate primitives: and, or, not, nand, nor, xor, xnor. Line continuation
// backslashes are stripped before matching. Signals referenced by a gate but
// never declared default to wires; a signal declared as output after being
// seen as a wire is upgraded to a primary output.
//
// Edges follow signal flow: each gate input signal gets an edge signal→gate,
// and the gate gets an edge gate→output-signal.
//
// The optional wire-collapse transform folds every single-driver wire node
// away, wiring its driver directly to each reader. This shrinks the graph
// the partitioner sees without changing connectivity, matching the original
// pipeline's pre-partitioning collapse step.
//
// I/O failures are reported wrapped in ErrRead, keeping the loader's failure
// category distinct from the core's own errors; the core itself only ever
// sees a well-formed graph.
package netlist
