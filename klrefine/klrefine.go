// Package klrefine: the Bisect entry point and its per-pass runner.
package klrefine

import (
	"errors"
	"sort"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/partition"
)

// Sentinel errors for pairwise refinement.
var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed to Bisect.
	ErrNilGraph = errors.New("klrefine: graph is nil")

	// ErrBadMaxIter indicates a negative pass cap.
	ErrBadMaxIter = errors.New("klrefine: max iterations must be non-negative")
)

// Bisect refines the split (a, b) of the induced subgraph a ∪ b with up to
// maxIter Kernighan-Lin passes and returns the refined sides. The inputs are
// not mutated; callers install the results into their partition state.
//
// Degenerate cases: fewer than two nodes in the union, or maxIter == 0,
// return clones of the inputs unchanged.
//
// Complexity: O(maxIter · n² · d) worst case for n = |a ∪ b|; the pass count
// in practice is far below the cap because passes stop at zero net gain.
func Bisect(g *circuit.Graph, a, b partition.NodeSet, maxIter int) (partition.NodeSet, partition.NodeSet, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if maxIter < 0 {
		return nil, nil, ErrBadMaxIter
	}

	// 2) Degenerate union: nothing to swap.
	if len(a)+len(b) < 2 {
		return a.Clone(), b.Clone(), nil
	}

	// 3) Set up the runner over the induced undirected subgraph.
	r := newRunner(g, a, b)

	// 4) Whole passes until the cap or a zero-gain pass.
	for iter := 0; iter < maxIter; iter++ {
		if r.pass() <= 0 {
			break
		}
	}

	return r.sides()
}

// runner holds the per-call state of a bisection: the node arena, the
// restricted neighbor lists, and the current side of each node.
type runner struct {
	g     *circuit.Graph
	nodes []string // sorted union of both sides; index is the node handle
	nb    [][]int  // restricted undirected neighbor indices, sorted
	inA   []bool   // current side per node handle
}

// newRunner indexes the union and precomputes neighbor lists restricted to
// it. The logical adjacency is undirected and collapsed (w ∈ {0,1}).
func newRunner(g *circuit.Graph, a, b partition.NodeSet) *runner {
	nodes := make([]string, 0, len(a)+len(b))
	for id := range a {
		nodes = append(nodes, id)
	}
	for id := range b {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)

	handle := make(map[string]int, len(nodes))
	for i, id := range nodes {
		handle[id] = i
	}

	r := &runner{
		g:     g,
		nodes: nodes,
		nb:    make([][]int, len(nodes)),
		inA:   make([]bool, len(nodes)),
	}
	for i, id := range nodes {
		r.inA[i] = a.Has(id)
		for _, n := range g.NeighborIDs(id) {
			if j, ok := handle[n]; ok && j != i {
				r.nb[i] = append(r.nb[i], j)
			}
		}
	}

	return r
}

// dValue computes D(i) = external − internal edge count for node i under the
// given side vector.
func (r *runner) dValue(i int, side []bool) int {
	d := 0
	for _, j := range r.nb[i] {
		if side[j] != side[i] {
			d++
		} else {
			d--
		}
	}

	return d
}

// adjacent reports w(i,j) ∈ {0,1} between two handles.
func (r *runner) adjacent(i, j int) bool {
	return r.g.Adjacent(r.nodes[i], r.nodes[j])
}

// pass runs one full Kernighan-Lin pass: tentative positive-gain swaps with
// locking, then commits the max-cumulative-gain prefix. Returns the net gain
// committed by this pass.
func (r *runner) pass() int {
	n := len(r.nodes)
	locked := make([]bool, n)
	side := append([]bool(nil), r.inA...) // tentative sides during the pass

	type swap struct {
		a, b int
		gain int
	}
	var swaps []swap

	for {
		// Select the best unlocked cross pair. Scanning handles in ascending
		// order and keeping the strictly-best pair makes ties deterministic.
		bestA, bestB, bestGain := -1, -1, 0
		found := false
		for i := 0; i < n; i++ {
			if locked[i] || !side[i] {
				continue
			}
			di := r.dValue(i, side)
			for j := 0; j < n; j++ {
				if locked[j] || side[j] {
					continue
				}
				gain := di + r.dValue(j, side)
				if r.adjacent(i, j) {
					gain -= 2
				}
				if !found || gain > bestGain {
					bestA, bestB, bestGain = i, j, gain
					found = true
				}
			}
		}
		if !found || bestGain <= 0 {
			break
		}

		// Tentatively swap and lock the pair.
		side[bestA], side[bestB] = false, true
		locked[bestA], locked[bestB] = true, true
		swaps = append(swaps, swap{a: bestA, b: bestB, gain: bestGain})
	}

	// Commit the prefix of swaps with the maximum cumulative gain. With only
	// positive per-swap gains the full prefix wins, but the scan guards the
	// invariant explicitly: a negative-gain suffix is never applied.
	bestLen, bestSum, sum := 0, 0, 0
	for i, s := range swaps {
		sum += s.gain
		if sum > bestSum {
			bestSum = sum
			bestLen = i + 1
		}
	}
	for _, s := range swaps[:bestLen] {
		r.inA[s.a] = false
		r.inA[s.b] = true
	}

	return bestSum
}

// sides materializes the current split back into node sets.
func (r *runner) sides() (partition.NodeSet, partition.NodeSet, error) {
	a := partition.NewNodeSet()
	b := partition.NewNodeSet()
	for i, id := range r.nodes {
		if r.inA[i] {
			a[id] = struct{}{}
		} else {
			b[id] = struct{}{}
		}
	}

	return a, b, nil
}
