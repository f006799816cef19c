package hybrid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/hybrid"
	"github.com/F4nJ/2FoldSyn/partition"
)

// sixCycle builds the directed cycle a→b→c→d→e→f→a.
func sixCycle(t *testing.T) *circuit.Graph {
	t.Helper()
	g := circuit.NewGraph()
	ids := []string{"a", "b", "c", "d", "e", "f"}
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, circuit.KindWire))
	}
	for i, id := range ids {
		require.NoError(t, g.AddEdge(id, ids[(i+1)%len(ids)]))
	}

	return g
}

// twoTriangles builds two disjoint 3-node cliques with no edges between.
func twoTriangles(t *testing.T) *circuit.Graph {
	t.Helper()
	g := circuit.NewGraph()
	for _, id := range []string{"a", "b", "c", "x", "y", "z"} {
		require.NoError(t, g.AddNode(id, circuit.KindWire))
	}
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "a"},
		{"x", "y"}, {"y", "z"}, {"z", "x"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// assertCoverage checks disjointness, coverage, and the no-empty invariant.
func assertCoverage(t *testing.T, g *circuit.Graph, parts []partition.NodeSet) {
	t.Helper()
	seen := make(map[string]int)
	for _, p := range parts {
		require.NotEmpty(t, p, "no returned partition may be empty")
		for id := range p {
			seen[id]++
		}
	}
	for _, id := range g.Nodes() {
		assert.Equal(t, 1, seen[id], "node %s must appear exactly once", id)
	}
	assert.Len(t, seen, g.NodeCount())
}

// TestPartition_Validation covers nil graph and bad parameters.
func TestPartition_Validation(t *testing.T) {
	g := sixCycle(t)

	_, err := hybrid.Partition(nil, 3)
	assert.ErrorIs(t, err, hybrid.ErrNilGraph)

	_, err = hybrid.Partition(g, 0)
	assert.ErrorIs(t, err, hybrid.ErrBadTargetSize)

	_, err = hybrid.Partition(g, 3, hybrid.WithKLMaxIter(-1))
	assert.ErrorIs(t, err, hybrid.ErrBadKLIter)

	_, err = hybrid.Partition(g, 3, hybrid.WithAlpha(-0.1))
	assert.ErrorIs(t, err, hybrid.ErrBadAlpha)
}

// TestPartition_EmptyGraph yields an empty list, not an error.
func TestPartition_EmptyGraph(t *testing.T) {
	res, err := hybrid.Partition(circuit.NewGraph(), 10)
	require.NoError(t, err)
	assert.Empty(t, res.Parts)
}

// TestPartition_SingleNode returns one singleton partition with (0,0) I/O.
func TestPartition_SingleNode(t *testing.T) {
	g := circuit.NewGraph()
	require.NoError(t, g.AddNode("only", circuit.KindPI))

	res, err := hybrid.Partition(g, 100)
	require.NoError(t, err)
	require.Len(t, res.Parts, 1)
	assert.True(t, res.Parts[0].Has("only"))
	require.Len(t, res.Report.Partitions, 1)
	assert.Zero(t, res.Report.Partitions[0].Inputs)
	assert.Zero(t, res.Report.Partitions[0].Outputs)
}

// TestPartition_DegenerateTargetSize: target ≥ node count keeps everything in
// one partition.
func TestPartition_DegenerateTargetSize(t *testing.T) {
	g := sixCycle(t)

	res, err := hybrid.Partition(g, 6)
	require.NoError(t, err)
	require.Len(t, res.Parts, 1)
	assert.Len(t, res.Parts[0], 6)
	assert.Equal(t, 1, res.Report.K)
	assertCoverage(t, g, res.Parts)
}

// TestPartition_SixCycle: target 3 ⇒ k = 2, final cut no worse than the
// coarse cut, two non-empty partitions covering all six nodes.
func TestPartition_SixCycle(t *testing.T) {
	g := sixCycle(t)

	res, err := hybrid.Partition(g, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Report.K)
	assert.LessOrEqual(t, res.Report.FinalCut, res.Report.InitialCut)
	require.Len(t, res.Parts, 2)
	assertCoverage(t, g, res.Parts)
}

// TestPartition_TwoTriangles: disconnected cliques split at zero cost, with
// cut size 0 at every phase and no balancing moves (no boundary nodes exist).
func TestPartition_TwoTriangles(t *testing.T) {
	g := twoTriangles(t)

	res, err := hybrid.Partition(g, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Report.K)
	assert.Zero(t, res.Report.InitialCut)
	assert.Zero(t, res.Report.RefinedCut)
	assert.Zero(t, res.Report.FinalCut)
	assert.Zero(t, res.Report.Moves)
	assertCoverage(t, g, res.Parts)
}

// TestPartition_ZeroAlphaCutMonotone: with α = 0 the balancing phase can only
// reduce the post-refinement cut.
func TestPartition_ZeroAlphaCutMonotone(t *testing.T) {
	g := sixCycle(t)

	res, err := hybrid.Partition(g, 2, hybrid.WithAlpha(0))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Report.FinalCut, res.Report.RefinedCut)
	assertCoverage(t, g, res.Parts)
}

// TestPartition_Deterministic: identical input and configuration ⇒ identical
// partitions across repeated runs.
func TestPartition_Deterministic(t *testing.T) {
	first, err := hybrid.Partition(sixCycle(t), 2, hybrid.WithSeed(7))
	require.NoError(t, err)

	for run := 0; run < 3; run++ {
		again, err := hybrid.Partition(sixCycle(t), 2, hybrid.WithSeed(7))
		require.NoError(t, err)
		assert.Equal(t, first.Parts, again.Parts, "run %d diverged", run)
		assert.Equal(t, first.Report, again.Report, "run %d report diverged", run)
	}
}

// TestResult_WriteReport renders the partition summary layout.
func TestResult_WriteReport(t *testing.T) {
	g := twoTriangles(t)
	res, err := hybrid.Partition(g, 3)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, res.WriteReport(&sb))
	out := sb.String()

	assert.Contains(t, out, "Total Partitions Created: 2")
	assert.Contains(t, out, "--- Partition 0 ---")
	assert.Contains(t, out, "  - Size: 3 nodes")
	assert.Contains(t, out, "  - I/O: 0 inputs, 0 outputs")
}
