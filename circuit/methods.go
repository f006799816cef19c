// Package circuit: Graph mutation and query methods.
//
// All accessors that return collections sort them first, so algorithm
// iteration order is deterministic regardless of map layout.
package circuit

import "sort"

// AddNode inserts a node with the given ID and kind.
// Returns ErrEmptyNodeID if id is empty. If the node already exists the call
// is a no-op (idempotent), keeping the first-declared kind.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, kind Kind) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil
	}
	g.nodes[id] = &Node{ID: id, Kind: kind}

	return nil
}

// AddGate inserts a gate node with the given function label.
// Returns ErrEmptyNodeID for an empty id and ErrBadGateFunc for an
// unsupported function. Idempotent for an existing node.
// Complexity: O(1) amortized.
func (g *Graph) AddGate(id string, fn GateFunc) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if !ValidGateFunc(fn) {
		return ErrBadGateFunc
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil
	}
	g.nodes[id] = &Node{ID: id, Kind: KindGate, Func: fn}

	return nil
}

// SetKind reclassifies an existing node. Build-phase only: the netlist
// loader uses this when an output declaration names a signal already added
// as a wire.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(1).
func (g *Graph) SetKind(id string, kind Kind) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	n.Kind = kind
	if kind != KindGate {
		n.Func = ""
	}

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns a copy of the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, exists := g.nodes[id]
	if !exists {
		return Node{}, false
	}

	return *n, true
}

// AddEdge records a directed edge from → to. Both endpoints must already
// exist (ErrNodeNotFound otherwise); this preserves the invariant that every
// edge endpoint is a catalogued node with a known kind. A repeated (from, to)
// pair increments the multiplicity of the existing logical edge.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrNodeNotFound
	}

	if g.succ[from] == nil {
		g.succ[from] = make(map[string]int)
	}
	if g.pred[to] == nil {
		g.pred[to] = make(map[string]int)
	}
	if g.succ[from][to] == 0 {
		g.edgePairs++
	}
	g.succ[from][to]++
	g.pred[to][from]++

	return nil
}

// RemoveNode deletes a node and all incident edges. Build-phase only: the
// wire-collapse transform uses it to fold single-driver wires away.
// Returns ErrNodeNotFound if the node does not exist.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	for to := range g.succ[id] {
		delete(g.pred[to], id)
		g.edgePairs--
	}
	for from := range g.pred[id] {
		delete(g.succ[from], id)
		g.edgePairs--
	}
	delete(g.succ, id)
	delete(g.pred, id)
	delete(g.nodes, id)

	return nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of logical directed edges (distinct
// (from, to) pairs; parallel edges count once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgePairs
}

// Nodes returns all node IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all logical directed edges with their multiplicities,
// sorted by (From, To) ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.edgePairs)
	for from, tos := range g.succ {
		for to, mult := range tos {
			edges = append(edges, Edge{From: from, To: to, Mult: mult})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// Successors returns the distinct destination IDs of edges leaving id,
// sorted ascending. A missing node yields an empty slice (the partitioning
// algorithms only query catalogued nodes).
// Complexity: O(d log d).
func (g *Graph) Successors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.succ[id])
}

// Predecessors returns the distinct source IDs of edges entering id,
// sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Predecessors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.pred[id])
}

// NeighborIDs returns the distinct IDs adjacent to id in either direction
// (the undirected projection of the node's neighborhood), sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{}, len(g.succ[id])+len(g.pred[id]))
	for to := range g.succ[id] {
		seen[to] = struct{}{}
	}
	for from := range g.pred[id] {
		seen[from] = struct{}{}
	}

	return sortedKeys2(seen)
}

// Adjacent reports whether an edge exists between u and v in either
// direction (the undirected logical adjacency used by the refinement
// algorithms).
// Complexity: O(1).
func (g *Graph) Adjacent(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.succ[u][v] > 0 || g.succ[v][u] > 0
}

// Multiplicity returns the number of parallel edges between u and v counting
// both directions; 0 when the nodes are not adjacent. This is the affinity
// weight used by the spectral clusterer.
// Complexity: O(1).
func (g *Graph) Multiplicity(u, v string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.succ[u][v] + g.succ[v][u]
}

func sortedKeys(m map[string]int) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func sortedKeys2(m map[string]struct{}) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
