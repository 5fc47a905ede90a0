package prim_kruskal

import (
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/matrix"
)

// settled marks a vertex already in the tree in the mindist table.
const settled = -1

// PrimArray computes the MST with the dense O(V²) formulation: a linear scan
// over a mindist array replaces the priority queue.
//
// Error Conditions:
//   - ErrInvalidGraph         : graph is nil.
//   - core.ErrVertexNotFound  : WithRoot names a missing vertex.
//   - matrix.ErrBadSentinel   : an edge weight reaches the WithUnreachable sentinel.
//   - ErrDisconnected         : |V| == 0, or a round finds no reachable vertex.
//
// Steps:
//  1. Build the adjacency matrix; mindist[j] = w(root, j), nearest[j] = root.
//  2. Repeat |V|-1 times: pick the unsettled j with the smallest mindist below
//     the sentinel, emit (nearest[j], j), settle j.
//  3. Relax: for every unsettled k with w(j, k) < mindist[k], set mindist[k]
//     and nearest[k] = j.
//
// Complexity: O(V²) time, O(V²) memory for the matrix.
func PrimArray(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := resolve(opts)
	vertices, root, err := startVertex(MethodPrimArray, graph, cfg.Root)
	if err != nil {
		return nil, 0, err
	}
	n := len(vertices)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 1. Dense view and initial distances from the root.
	am, err := matrix.NewAdjacencyMatrix(graph, matrix.WithUnreachable(cfg.Unreachable))
	if err != nil {
		return nil, 0, err
	}
	inf := am.Unreachable()
	r, err := am.Index(root)
	if err != nil {
		return nil, 0, err
	}
	mindist := make([]float64, n)
	nearest := make([]int, n)
	copy(mindist, am.Row(r))
	for j := range nearest {
		nearest[j] = r
	}
	mindist[r] = settled

	mst := make([]core.Edge, 0, n-1)
	var total float64
	for round := 1; round < n; round++ {
		// 2. Linear scan for the closest unsettled vertex.
		best, pick := inf, -1
		for j, d := range mindist {
			if d >= 0 && d < best {
				best, pick = d, j
			}
		}
		if pick < 0 {
			return nil, 0, disconnected(MethodPrimArray)
		}
		mst = append(mst, treeEdge(am, nearest[pick], pick, best))
		total += best
		mindist[pick] = settled

		// 3. Relax through the new tree vertex.
		row := am.Row(pick)
		for k, w := range row {
			if mindist[k] >= 0 && w < mindist[k] {
				mindist[k] = w
				nearest[k] = pick
			}
		}
	}

	return mst, total, nil
}

// treeEdge materialises the MST edge between matrix indices from and to.
func treeEdge(am *matrix.AdjacencyMatrix, from, to int, w float64) core.Edge {
	return core.Edge{From: am.VertexID(from), To: am.VertexID(to), Weight: w}
}
