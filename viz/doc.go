// Package viz renders circuit graphs and partitioning results to Graphviz
// DOT, and rasterizes DOT to SVG or PNG via goccy/go-graphviz.
//
// Node fill colors follow the established palette of the upstream tooling:
// primary inputs green, primary outputs red, gates blue, wires grey. When a
// partition list is supplied, each partition becomes a labeled cluster
// subgraph, making cut edges visually obvious.
//
// Output is deterministic: nodes, edges, and cluster members are emitted in
// sorted order.
package viz
