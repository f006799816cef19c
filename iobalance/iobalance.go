// Package iobalance: the Balance entry point and its pass runner.
package iobalance

import (
	"errors"
	"sort"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/partition"
)

// Sentinel errors for the balancing phase.
var (
	// ErrNilGraph indicates a nil *circuit.Graph was passed to Balance.
	ErrNilGraph = errors.New("iobalance: graph is nil")

	// ErrNilAssignment indicates a nil *partition.Assignment.
	ErrNilAssignment = errors.New("iobalance: assignment is nil")

	// ErrBadAlpha indicates a negative I/O weighting factor.
	ErrBadAlpha = errors.New("iobalance: alpha must be non-negative")
)

// Balance runs the greedy multi-objective local search over the shared
// partition state, mutating asg in place. alpha weights I/O-imbalance gain
// against cut-size gain. Returns the number of moves applied.
//
// The loop is bounded by one pass per graph node; within the cap it stops as
// soon as no boundary node remains or no candidate move has positive gain.
//
// Complexity: O(N) passes worst case, each pass O(B·T·d) for B boundary
// nodes, T candidate targets, and d member degrees in the affected
// partitions.
func Balance(g *circuit.Graph, asg *partition.Assignment, alpha float64) (int, error) {
	// 1) Validate inputs.
	if g == nil {
		return 0, ErrNilGraph
	}
	if asg == nil {
		return 0, ErrNilAssignment
	}
	if alpha < 0 {
		return 0, ErrBadAlpha
	}

	// 2) One best move per pass, failsafe-capped at the node count.
	moves := 0
	for pass := 0; pass < g.NodeCount(); pass++ {
		boundary := boundaryNodes(g, asg)
		if len(boundary) == 0 {
			break // converged: no edge crosses a partition boundary
		}

		node, target, gain := bestMove(g, asg, boundary, alpha)
		if gain <= 0 {
			break // local optimum reached
		}
		if err := asg.Move(node, target); err != nil {
			return moves, err
		}
		moves++
	}

	return moves, nil
}

// boundaryNodes collects, in sorted order, every node touched by a
// cross-partition edge. Single O(E) scan.
func boundaryNodes(g *circuit.Graph, asg *partition.Assignment) []string {
	seen := make(map[string]struct{})
	for _, e := range g.Edges() {
		fi, fok := asg.IndexOf(e.From)
		ti, tok := asg.IndexOf(e.To)
		if fok && tok && fi != ti {
			seen[e.From] = struct{}{}
			seen[e.To] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// bestMove scores every (boundary node, neighbor partition) candidate and
// returns the single best. Ties keep the earliest candidate in the fixed
// visit order, so the choice is deterministic.
func bestMove(g *circuit.Graph, asg *partition.Assignment, boundary []string, alpha float64) (string, int, float64) {
	bestNode := ""
	bestTarget := -1
	bestGain := 0.0
	found := false

	for _, node := range boundary {
		cur, ok := asg.IndexOf(node)
		if !ok {
			continue
		}
		for _, target := range neighborPartitions(g, asg, node, cur) {
			gain := float64(cutGain(g, asg, node, cur, target)) +
				alpha*float64(ioGain(g, asg, node, cur, target))
			if !found || gain > bestGain {
				bestNode, bestTarget, bestGain = node, target, gain
				found = true
			}
		}
	}

	return bestNode, bestTarget, bestGain
}

// neighborPartitions returns the distinct partition indices, ascending, held
// by neighbors of node, excluding its current partition.
func neighborPartitions(g *circuit.Graph, asg *partition.Assignment, node string, cur int) []int {
	seen := make(map[int]struct{})
	for _, n := range g.NeighborIDs(node) {
		if i, ok := asg.IndexOf(n); ok && i != cur {
			seen[i] = struct{}{}
		}
	}

	targets := make([]int, 0, len(seen))
	for i := range seen {
		targets = append(targets, i)
	}
	sort.Ints(targets)

	return targets
}

// cutGain is the net cut-size reduction of moving node from cur to target.
// Predecessor and successor adjacencies are counted separately, so a node
// connected to a neighbor in both directions weighs that neighbor twice:
// exactly the number of edges whose crossing state flips.
func cutGain(g *circuit.Graph, asg *partition.Assignment, node string, cur, target int) int {
	gain := 0
	count := func(neighbors []string) {
		for _, n := range neighbors {
			i, ok := asg.IndexOf(n)
			if !ok {
				continue
			}
			switch i {
			case cur:
				gain-- // leaving an internal adjacency behind increases cut
			case target:
				gain++ // joining an external adjacency removes a crossing
			}
		}
	}
	count(g.Predecessors(node))
	count(g.Successors(node))

	return gain
}

// ioGain is the reduction in summed I/O imbalance over the two affected
// partitions if node moved from cur to target: (imbalance before) −
// (imbalance after), each simulated on copies of the two sets.
func ioGain(g *circuit.Graph, asg *partition.Assignment, node string, cur, target int) int {
	curBefore := asg.Part(cur)
	tgtBefore := asg.Part(target)

	curAfter := curBefore.Clone()
	delete(curAfter, node)
	tgtAfter := tgtBefore.Clone()
	tgtAfter[node] = struct{}{}

	before := partition.Imbalance(g, curBefore) + partition.Imbalance(g, tgtBefore)
	after := partition.Imbalance(g, curAfter) + partition.Imbalance(g, tgtAfter)

	return before - after
}
