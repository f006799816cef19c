// Package partition: cut-size, I/O, and adjacency metrics over an Assignment.
package partition

import (
	"sort"

	"github.com/F4nJ/2FoldSyn/circuit"
)

// CutSize counts logical directed edges whose endpoints lie in different
// partitions. Edges touching unassigned nodes are ignored.
// Complexity: O(E).
func CutSize(g *circuit.Graph, a *Assignment) int {
	cut := 0
	for _, e := range g.Edges() {
		fi, fok := a.IndexOf(e.From)
		ti, tok := a.IndexOf(e.To)
		if fok && tok && fi != ti {
			cut++
		}
	}

	return cut
}

// IO returns the number of distinct external predecessor and successor nodes
// of the given partition: the input and output signal count crossing its
// boundary.
// Complexity: O(sum of member degrees).
func IO(g *circuit.Graph, part NodeSet) (inputs, outputs int) {
	in := make(map[string]struct{})
	out := make(map[string]struct{})
	for id := range part {
		for _, p := range g.Predecessors(id) {
			if !part.Has(p) {
				in[p] = struct{}{}
			}
		}
		for _, s := range g.Successors(id) {
			if !part.Has(s) {
				out[s] = struct{}{}
			}
		}
	}

	return len(in), len(out)
}

// Imbalance returns |inputs − outputs| for the given partition: the I/O
// balance metric minimized by the balancing phase.
func Imbalance(g *circuit.Graph, part NodeSet) int {
	in, out := IO(g, part)
	if in > out {
		return in - out
	}

	return out - in
}

// AdjacentPairs returns every unordered partition index pair (i, j), i < j,
// connected by at least one edge in either direction. Implemented as a single
// pass over the edge list with reverse-map lookups; the result is sorted by
// (I, J) ascending so downstream pairwise refinement runs in a fixed order.
// Complexity: O(E + P log P) where P is the number of adjacent pairs.
func AdjacentPairs(g *circuit.Graph, a *Assignment) []Pair {
	seen := make(map[Pair]struct{})
	for _, e := range g.Edges() {
		fi, fok := a.IndexOf(e.From)
		ti, tok := a.IndexOf(e.To)
		if !fok || !tok || fi == ti {
			continue
		}
		p := Pair{I: fi, J: ti}
		if p.I > p.J {
			p.I, p.J = p.J, p.I
		}
		seen[p] = struct{}{}
	}

	pairs := make([]Pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(x, y int) bool {
		if pairs[x].I != pairs[y].I {
			return pairs[x].I < pairs[y].I
		}

		return pairs[x].J < pairs[y].J
	})

	return pairs
}
