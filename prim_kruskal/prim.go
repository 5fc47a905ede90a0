// Package prim_kruskal provides the lazy-deletion variant of Prim’s Minimum Spanning Tree algorithm.
// It grows the MST from a root vertex with a min-priority queue of candidate edges.
package prim_kruskal

import (
	"github.com/oleiade/lane/v2"

	"github.com/katalvlaran/mstlab/core"
)

// PrimLazy computes the MST by pushing candidate edges instead of decreasing keys.
// Stale entries (edges into already-visited vertices) are discarded when popped.
//
// Error Conditions:
//   - ErrInvalidGraph        : graph is nil.
//   - core.ErrVertexNotFound : WithRoot names a missing vertex.
//   - ErrDisconnected        : |V| == 0, or the queue drains before |V|-1 edges are found.
//
// Steps:
//  1. Validate and pick the root (WithRoot, else the first sorted vertex).
//  2. Mark the root as visited and push every edge to an unvisited neighbor.
//  3. While the queue yields edges and MST has < |V|-1 edges:
//     a. Pop the lightest edge (u→v); skip it if v is already visited.
//     b. Otherwise add (u→v) to MST, mark v as visited, accumulate weight.
//     c. Push all edges from v to as-yet-unvisited neighbors.
//  4. If MST size < |V|-1 after loop → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func PrimLazy(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	// 1. Validate.
	cfg := resolve(opts)
	vertices, root, err := startVertex(MethodPrimLazy, graph, cfg.Root)
	if err != nil {
		return nil, 0, err
	}
	n := len(vertices)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Seed the candidate queue from the root.
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64
	queue := lane.NewMinPriorityQueue[core.Edge, float64]()
	push := func(u string) error {
		nbrs, err := graph.NeighborIDs(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			if visited[v] {
				continue
			}
			w, err := graph.Weight(u, v)
			if err != nil {
				return err
			}
			queue.Push(core.Edge{From: u, To: v, Weight: w}, w)
		}

		return nil
	}
	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	// 3. Main loop.
	for len(mst) < n-1 {
		e, _, ok := queue.Pop()
		if !ok {
			break
		}
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		mst = append(mst, e)
		totalWeight += e.Weight
		if err := push(e.To); err != nil {
			return nil, 0, err
		}
	}

	// 4. Spanning check.
	if len(mst) < n-1 {
		return nil, 0, disconnected(MethodPrimLazy)
	}

	return mst, totalWeight, nil
}
