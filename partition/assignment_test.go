package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/partition"
)

// chainGraph builds a→b→c→d as wires.
func chainGraph(t *testing.T) *circuit.Graph {
	t.Helper()
	g := circuit.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(id, circuit.KindWire))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "d"))

	return g
}

// TestNewAssignment_Overlap verifies duplicate membership is rejected.
func TestNewAssignment_Overlap(t *testing.T) {
	_, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("a", "b"),
		partition.NewNodeSet("b"),
	})
	assert.ErrorIs(t, err, partition.ErrOverlap)
}

// TestAssignment_Move verifies both the set list and the reverse map update
// together.
func TestAssignment_Move(t *testing.T) {
	a, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("a", "b"),
		partition.NewNodeSet("c", "d"),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, a.Move("a", 7), partition.ErrBadIndex)
	assert.ErrorIs(t, a.Move("zz", 1), partition.ErrNodeUnassigned)

	require.NoError(t, a.Move("b", 1))
	idx, ok := a.IndexOf("b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.False(t, a.Part(0).Has("b"))
	assert.True(t, a.Part(1).Has("b"))
	assert.Equal(t, 1, a.Size(0))
	assert.Equal(t, 3, a.Size(1))

	// Moving to the current partition is a no-op.
	require.NoError(t, a.Move("a", 0))
	assert.Equal(t, 1, a.Size(0))
}

// TestAssignment_ReplacePair verifies re-indexing after a pairwise swap.
func TestAssignment_ReplacePair(t *testing.T) {
	a, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("a", "b"),
		partition.NewNodeSet("c", "d"),
		partition.NewNodeSet("e"),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, a.ReplacePair(0, 0, nil, nil), partition.ErrBadIndex)

	require.NoError(t, a.ReplacePair(0, 1,
		partition.NewNodeSet("a", "c"),
		partition.NewNodeSet("b", "d"),
	))
	for id, want := range map[string]int{"a": 0, "c": 0, "b": 1, "d": 1, "e": 2} {
		got, ok := a.IndexOf(id)
		require.True(t, ok, id)
		assert.Equal(t, want, got, id)
	}
}

// TestAssignment_DropEmpty verifies finalization keeps index order.
func TestAssignment_DropEmpty(t *testing.T) {
	a, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("a"),
		partition.NewNodeSet(),
		partition.NewNodeSet("b"),
	})
	require.NoError(t, err)

	out := a.DropEmpty()
	require.Len(t, out, 2)
	assert.True(t, out[0].Has("a"))
	assert.True(t, out[1].Has("b"))
	assert.Equal(t, 3, a.Len(), "assignment itself is untouched")
}

// TestCutSize counts only cross-partition edges.
func TestCutSize(t *testing.T) {
	g := chainGraph(t)
	a, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("a", "b"),
		partition.NewNodeSet("c", "d"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, partition.CutSize(g, a), "only b→c crosses")
}

// TestIO verifies distinct external predecessor/successor counting.
func TestIO(t *testing.T) {
	g := circuit.NewGraph()
	for _, id := range []string{"p1", "p2", "g1", "o1"} {
		require.NoError(t, g.AddNode(id, circuit.KindWire))
	}
	require.NoError(t, g.AddEdge("p1", "g1"))
	require.NoError(t, g.AddEdge("p2", "g1"))
	require.NoError(t, g.AddEdge("g1", "o1"))

	in, out := partition.IO(g, partition.NewNodeSet("g1"))
	assert.Equal(t, 2, in)
	assert.Equal(t, 1, out)
	assert.Equal(t, 1, partition.Imbalance(g, partition.NewNodeSet("g1")))

	in, out = partition.IO(g, partition.NewNodeSet("p1", "p2", "g1", "o1"))
	assert.Zero(t, in)
	assert.Zero(t, out)
}

// TestAdjacentPairs verifies the single-pass pair scan and its fixed order.
func TestAdjacentPairs(t *testing.T) {
	g := chainGraph(t)
	a, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("d"),
		partition.NewNodeSet("a", "b"),
		partition.NewNodeSet("c"),
	})
	require.NoError(t, err)

	// b→c connects (1,2); c→d connects (0,2); a→b is internal.
	want := []partition.Pair{{I: 0, J: 2}, {I: 1, J: 2}}
	assert.Equal(t, want, partition.AdjacentPairs(g, a))
}

// TestAdjacentPairs_Disconnected yields no pairs for isolated partitions.
func TestAdjacentPairs_Disconnected(t *testing.T) {
	g := circuit.NewGraph()
	require.NoError(t, g.AddNode("a", circuit.KindWire))
	require.NoError(t, g.AddNode("b", circuit.KindWire))

	a, err := partition.NewAssignment([]partition.NodeSet{
		partition.NewNodeSet("a"),
		partition.NewNodeSet("b"),
	})
	require.NoError(t, err)

	assert.Empty(t, partition.AdjacentPairs(g, a))
}
