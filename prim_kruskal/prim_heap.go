package prim_kruskal

import (
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/matrix"
	"github.com/katalvlaran/mstlab/pq"
)

// newQueue builds the frontier queue selected by cfg.
func newQueue[V any](cfg Options) (pq.Queue[float64, V], error) {
	return pq.New[float64, V](cfg.Queue, pq.WithArity(cfg.Arity))
}

// PrimHeap computes the MST over the dense adjacency matrix with a decrease-key
// queue. A vertex enters the queue the first time an edge reaches it; later
// improvements lower its key through the stored handle.
//
// Error Conditions:
//   - ErrInvalidGraph         : graph is nil.
//   - core.ErrVertexNotFound  : WithRoot names a missing vertex.
//   - pq.ErrBadArity          : WithQueue(pq.KindDary) with an arity below 2.
//   - matrix.ErrBadSentinel   : an edge weight reaches the WithUnreachable sentinel.
//   - ErrDisconnected         : |V| == 0, or the queue drains before |V| vertices settle.
//
// Steps:
//  1. Build the matrix and queue; insert the root with key 0.
//  2. Extract the minimum vertex u; emit (pred[u], u) unless u is the root; settle u.
//  3. For every unsettled v with w(u, v) below the sentinel: insert v on first
//     sight, else DecreaseKey if w(u, v) < key(v); record pred[v] = u.
//
// Complexity: O(V²) for the row scans plus V extractions and up to V² decrease-keys
// at the cost of the chosen queue.
func PrimHeap(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := resolve(opts)
	vertices, root, err := startVertex(MethodPrimHeap, graph, cfg.Root)
	if err != nil {
		return nil, 0, err
	}
	n := len(vertices)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 1. Dense view, queue and per-vertex bookkeeping.
	am, err := matrix.NewAdjacencyMatrix(graph, matrix.WithUnreachable(cfg.Unreachable))
	if err != nil {
		return nil, 0, err
	}
	inf := am.Unreachable()
	r, err := am.Index(root)
	if err != nil {
		return nil, 0, err
	}
	q, err := newQueue[int](cfg)
	if err != nil {
		return nil, 0, err
	}
	handles := make([]pq.Handle[float64, int], n)
	pred := make([]int, n)
	done := make([]bool, n)
	handles[r] = q.Insert(0, r)
	pred[r] = -1

	mst := make([]core.Edge, 0, n-1)
	var total float64
	for extracted := 0; extracted < n; extracted++ {
		// 2. Closest frontier vertex.
		key, u, err := q.ExtractMin()
		if err != nil {
			return nil, 0, disconnected(MethodPrimHeap)
		}
		done[u] = true
		if u != r {
			mst = append(mst, treeEdge(am, pred[u], u, key))
			total += key
		}

		// 3. Relax.
		for v, w := range am.Row(u) {
			if done[v] || w >= inf {
				continue
			}
			switch h := handles[v]; {
			case h == nil:
				handles[v] = q.Insert(w, v)
				pred[v] = u
			case w < h.Key():
				if err := q.DecreaseKey(h, w); err != nil {
					return nil, 0, err
				}
				pred[v] = u
			}
		}
	}

	return mst, total, nil
}
