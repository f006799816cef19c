package klrefine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/klrefine"
	"github.com/F4nJ/2FoldSyn/partition"
)

// pairCut counts undirected logical edges crossing the (a, b) split.
func pairCut(g *circuit.Graph, a, b partition.NodeSet) int {
	cut := 0
	for _, e := range g.Edges() {
		if (a.Has(e.From) && b.Has(e.To)) || (b.Has(e.From) && a.Has(e.To)) {
			cut++
		}
	}

	return cut
}

// scrambledTriangles builds two triangles with a deliberately bad split:
// one node of each triangle starts on the wrong side.
func scrambledTriangles(t *testing.T) (*circuit.Graph, partition.NodeSet, partition.NodeSet) {
	t.Helper()
	g := circuit.NewGraph()
	for _, id := range []string{"a1", "a2", "a3", "b1", "b2", "b3"} {
		require.NoError(t, g.AddNode(id, circuit.KindWire))
	}
	for _, e := range [][2]string{
		{"a1", "a2"}, {"a2", "a3"}, {"a3", "a1"},
		{"b1", "b2"}, {"b2", "b3"}, {"b3", "b1"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g, partition.NewNodeSet("a1", "a2", "b1"), partition.NewNodeSet("a3", "b2", "b3")
}

// TestBisect_Validation covers nil graph and negative cap.
func TestBisect_Validation(t *testing.T) {
	_, _, err := klrefine.Bisect(nil, nil, nil, 1)
	assert.ErrorIs(t, err, klrefine.ErrNilGraph)

	g := circuit.NewGraph()
	_, _, err = klrefine.Bisect(g, partition.NewNodeSet(), partition.NewNodeSet(), -1)
	assert.ErrorIs(t, err, klrefine.ErrBadMaxIter)
}

// TestBisect_DegenerateUnion returns sub-2-node unions unchanged.
func TestBisect_DegenerateUnion(t *testing.T) {
	g := circuit.NewGraph()
	require.NoError(t, g.AddNode("only", circuit.KindWire))

	a, b, err := klrefine.Bisect(g, partition.NewNodeSet("only"), partition.NewNodeSet(), 10)
	require.NoError(t, err)
	assert.True(t, a.Has("only"))
	assert.Empty(t, b)
}

// TestBisect_ZeroIterations performs no passes.
func TestBisect_ZeroIterations(t *testing.T) {
	g, a0, b0 := scrambledTriangles(t)

	a, b, err := klrefine.Bisect(g, a0, b0, 0)
	require.NoError(t, err)
	assert.Equal(t, a0, a)
	assert.Equal(t, b0, b)
}

// TestBisect_UntanglesTriangles: the misassigned nodes swap back, driving the
// cut between two disconnected triangles to zero.
func TestBisect_UntanglesTriangles(t *testing.T) {
	g, a0, b0 := scrambledTriangles(t)
	require.Equal(t, 4, pairCut(g, a0, b0), "scrambled split starts with cut 4")

	a, b, err := klrefine.Bisect(g, a0, b0, 10)
	require.NoError(t, err)

	assert.Zero(t, pairCut(g, a, b))
	assert.Len(t, a, 3)
	assert.Len(t, b, 3)
	union := make(partition.NodeSet)
	for id := range a {
		union[id] = struct{}{}
	}
	for id := range b {
		require.False(t, union.Has(id), "sides must stay disjoint")
		union[id] = struct{}{}
	}
	assert.Len(t, union, 6)
}

// TestBisect_NeverWorsensCut: the committed prefix only ever improves or
// preserves the pair cut.
func TestBisect_NeverWorsensCut(t *testing.T) {
	g := circuit.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		require.NoError(t, g.AddNode(id, circuit.KindWire))
	}
	// Directed 6-cycle.
	for _, e := range [][2]string{
		{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "e"}, {"e", "f"}, {"f", "a"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	a0 := partition.NewNodeSet("a", "c", "e")
	b0 := partition.NewNodeSet("b", "d", "f")
	before := pairCut(g, a0, b0)

	a, b, err := klrefine.Bisect(g, a0, b0, 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, pairCut(g, a, b), before)
}

// TestBisect_Deterministic: identical inputs ⇒ identical refined sides.
func TestBisect_Deterministic(t *testing.T) {
	g, a0, b0 := scrambledTriangles(t)

	firstA, firstB, err := klrefine.Bisect(g, a0, b0, 10)
	require.NoError(t, err)
	for run := 0; run < 3; run++ {
		a, b, err := klrefine.Bisect(g, a0, b0, 10)
		require.NoError(t, err)
		assert.Equal(t, firstA, a)
		assert.Equal(t, firstB, b)
	}
}
