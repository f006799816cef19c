// Package circuit: node/edge domain types, sentinel errors, and the Graph
// constructor. Methods live in methods.go.
package circuit

import (
	"errors"
	"sync"
)

// Sentinel errors for circuit graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("circuit: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("circuit: node not found")

	// ErrBadGateFunc indicates an unsupported gate function label.
	ErrBadGateFunc = errors.New("circuit: unsupported gate function")
)

// Kind classifies a node in the signal-flow graph.
type Kind uint8

const (
	// KindWire is an internal named signal (net).
	KindWire Kind = iota

	// KindPI is a primary input: an externally driven signal.
	KindPI

	// KindPO is a primary output: an externally observed signal.
	KindPO

	// KindGate is a logic gate instance.
	KindGate
)

// String returns the short label used in reports and DOT output.
func (k Kind) String() string {
	switch k {
	case KindPI:
		return "PI"
	case KindPO:
		return "PO"
	case KindGate:
		return "gate"
	default:
		return "wire"
	}
}

// GateFunc names the boolean function of a gate node.
type GateFunc string

// Supported gate functions, matching structural netlist primitives.
const (
	FuncAnd  GateFunc = "and"
	FuncOr   GateFunc = "or"
	FuncNot  GateFunc = "not"
	FuncNand GateFunc = "nand"
	FuncNor  GateFunc = "nor"
	FuncXor  GateFunc = "xor"
	FuncXnor GateFunc = "xnor"
)

// ValidGateFunc reports whether fn is one of the supported gate functions.
func ValidGateFunc(fn GateFunc) bool {
	switch fn {
	case FuncAnd, FuncOr, FuncNot, FuncNand, FuncNor, FuncXor, FuncXnor:
		return true
	}

	return false
}

// Node is a vertex of the signal-flow graph. Nodes are immutable once the
// graph is handed to the partitioning pipeline; SetKind exists only for the
// build phase (a signal declared as a wire may later turn out to be a PO).
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Kind classifies the node (PI, PO, Wire, Gate).
	Kind Kind

	// Func is the gate function label; empty unless Kind == KindGate.
	Func GateFunc
}

// Edge is a directed logical adjacency From→To with its multiplicity
// (number of parallel edges recorded between the endpoints).
type Edge struct {
	From string
	To   string
	Mult int
}

// Graph is the in-memory signal-flow graph.
//
// succ and pred are mirrored adjacency maps holding multiplicity counts:
// succ[from][to] == pred[to][from]. edgePairs counts distinct (from, to)
// pairs, i.e. logical edges.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	succ      map[string]map[string]int
	pred      map[string]map[string]int
	edgePairs int
}

// NewGraph creates an empty circuit graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		succ:  make(map[string]map[string]int),
		pred:  make(map[string]map[string]int),
	}
}
