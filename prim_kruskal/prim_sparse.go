package prim_kruskal

import (
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/pq"
)

// frontier is the per-run side record of one vertex in PrimHeapSparse.
type frontier struct {
	pred    string
	handle  pq.Handle[float64, string]
	settled bool
}

// PrimHeapSparse computes the MST from adjacency lists, so only existing edges
// are scanned. Per-vertex state lives in a side table owned by the run; the
// graph itself is never mutated.
//
// Error Conditions:
//   - ErrInvalidGraph         : graph is nil.
//   - core.ErrVertexNotFound  : WithRoot names a missing vertex.
//   - pq.ErrBadArity          : WithQueue(pq.KindDary) with an arity below 2.
//   - ErrDisconnected         : |V| == 0, or the queue drains before |V| vertices settle.
//
// Steps:
//  1. Insert the root with key 0 and an empty predecessor.
//  2. Extract u, emit (pred[u], u) unless u is the root, settle u.
//  3. For each neighbor v of u that is not settled: insert on first sight, or
//     DecreaseKey when w(u, v) is strictly smaller than v's key. Loops are ignored.
//
// Complexity: O(E) relaxations plus V extractions and up to E decrease-keys at
// the cost of the chosen queue; O(E + V log V) amortized with the Fibonacci heap.
func PrimHeapSparse(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := resolve(opts)
	vertices, root, err := startVertex(MethodPrimSparse, graph, cfg.Root)
	if err != nil {
		return nil, 0, err
	}
	n := len(vertices)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 1. Queue and side table.
	q, err := newQueue[string](cfg)
	if err != nil {
		return nil, 0, err
	}
	side := make(map[string]*frontier, n)
	side[root] = &frontier{handle: q.Insert(0, root)}

	mst := make([]core.Edge, 0, n-1)
	var total float64
	for extracted := 0; extracted < n; extracted++ {
		// 2. Settle the closest frontier vertex.
		key, u, err := q.ExtractMin()
		if err != nil {
			return nil, 0, disconnected(MethodPrimSparse)
		}
		fu := side[u]
		fu.settled = true
		if u != root {
			mst = append(mst, core.Edge{From: fu.pred, To: u, Weight: key})
			total += key
		}

		// 3. Relax outgoing adjacency.
		nbrs, err := graph.NeighborIDs(u)
		if err != nil {
			return nil, 0, err
		}
		for _, v := range nbrs {
			if v == u {
				continue
			}
			fv := side[v]
			if fv != nil && fv.settled {
				continue
			}
			w, err := graph.Weight(u, v)
			if err != nil {
				return nil, 0, err
			}
			switch {
			case fv == nil:
				side[v] = &frontier{pred: u, handle: q.Insert(w, v)}
			case w < fv.handle.Key():
				if err := q.DecreaseKey(fv.handle, w); err != nil {
					return nil, 0, err
				}
				fv.pred = u
			}
		}
	}

	return mst, total, nil
}
