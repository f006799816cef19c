// Package spectral: affinity construction, Laplacian embedding, and the
// public Cluster entry point.
package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/F4nJ/2FoldSyn/circuit"
	"github.com/F4nJ/2FoldSyn/partition"
)

// Cluster partitions the nodes of g into k groups via spectral embedding and
// seeded k-means on the undirected projection of the graph.
//
// Behavior:
//
//   - Empty graph ⇒ empty partition list.
//   - k < 2 ⇒ one partition holding all nodes (short-circuit, no numerics).
//   - k ≥ node count ⇒ singleton clusters; surplus partitions come back empty.
//   - Some of the k returned partitions may be empty when a centroid attracts
//     no points; callers must tolerate this.
//
// Returns ErrNilGraph or ErrBadClusterCount on invalid input.
//
// Complexity: O(V³) eigendecomposition + O(I·k·V) k-means.
func Cluster(g *circuit.Graph, k int, opts ...Option) ([]partition.NodeSet, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 0 {
		return nil, ErrBadClusterCount
	}

	// 3) Degenerate sizes: empty graph and the k<2 short-circuit.
	ids := g.Nodes() // sorted: row order of the embedding is deterministic
	n := len(ids)
	if n == 0 {
		return []partition.NodeSet{}, nil
	}
	if k < 2 {
		return []partition.NodeSet{partition.NewNodeSet(ids...)}, nil
	}

	// 4) Compute per-node labels from the Laplacian embedding.
	labels := embedAndCluster(g, ids, k, cfg)

	// 5) Materialize the k partitions from the label vector.
	parts := make([]partition.NodeSet, k)
	for i := range parts {
		parts[i] = partition.NewNodeSet()
	}
	for i, id := range ids {
		parts[labels[i]][id] = struct{}{}
	}

	return parts, nil
}

// embedAndCluster builds the normalized Laplacian of the undirected
// projection, embeds nodes into the k leading eigenvectors, and runs k-means.
// When the eigendecomposition fails to converge it degrades to deterministic
// contiguous chunking of the sorted node order instead of failing.
func embedAndCluster(g *circuit.Graph, ids []string, k int, cfg Options) []int {
	n := len(ids)

	// Affinity weights and degrees of the undirected projection.
	// Multiplicity collapses parallel edges into a single weighted adjacency.
	weights := make([][]float64, n)
	degrees := make([]float64, n)
	for i := range weights {
		weights[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := float64(g.Multiplicity(ids[i], ids[j]))
			if w == 0 {
				continue
			}
			weights[i][j] = w
			weights[j][i] = w
			degrees[i] += w
			degrees[j] += w
		}
	}

	// Normalized symmetric Laplacian L = I − D^{-1/2} A D^{-1/2}.
	// Isolated nodes have degree 0; their scaling factor is 0, leaving only
	// the identity entry on the diagonal.
	invSqrt := make([]float64, n)
	for i, d := range degrees {
		if d > 0 {
			invSqrt[i] = 1 / math.Sqrt(d)
		}
	}
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		lap.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			if weights[i][j] != 0 {
				lap.SetSym(i, j, -weights[i][j]*invSqrt[i]*invSqrt[j])
			}
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(lap, true) {
		// Non-convergent decomposition: deterministic fallback keeps the
		// pipeline alive on pathological affinity structure.
		return chunkLabels(n, k)
	}

	// Embedding: the eigenvectors of the k smallest eigenvalues.
	// mat.EigenSym orders eigenvalues ascending, so the leading columns are
	// exactly the smoothest Laplacian modes.
	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	dims := k
	if dims > n {
		dims = n
	}
	points := make([][]float64, n)
	for i := range points {
		row := make([]float64, dims)
		norm := 0.0
		for d := 0; d < dims; d++ {
			row[d] = vectors.At(i, d)
			norm += row[d] * row[d]
		}
		// Row normalization projects points onto the unit sphere; zero rows
		// (possible for isolated nodes) stay at the origin.
		if norm > 0 {
			norm = math.Sqrt(norm)
			for d := range row {
				row[d] /= norm
			}
		}
		points[i] = row
	}

	return kmeans(points, k, cfg.MaxIterations, rngFromSeed(cfg.Seed))
}

// chunkLabels assigns n nodes to k contiguous chunks of the sorted order.
// Used only as the degenerate-affinity fallback; deterministic by design.
func chunkLabels(n, k int) []int {
	size := (n + k - 1) / k
	labels := make([]int, n)
	for i := range labels {
		l := i / size
		if l >= k {
			l = k - 1
		}
		labels[i] = l
	}

	return labels
}
