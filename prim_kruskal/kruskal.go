// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/disjointset"
)

// SortEdges returns the non-loop edges of graph ordered by ascending weight.
// The sort is stable, so equal weights keep insertion order.
// Complexity: O(E log E).
func SortEdges(graph *core.Graph) []core.Edge {
	if graph == nil {
		return nil
	}
	all := graph.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, *e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return edges
}

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by scanning edges in ascending weight and merging components in a disjoint set.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//   - ErrDisconnected : if |V| == 0, or fewer than |V|-1 edges join distinct components.
//
// Steps:
//  1. Validate: graph != nil; |V| == 0 → ErrDisconnected; |V| == 1 → trivial MST.
//  2. Order edges: the WithPresortedEdges list if given, else SortEdges(graph).
//  3. Initialize one singleton set per vertex.
//  4. For each edge: skip loops; if Find(u) != Find(v), accept it and Merge the labels.
//     Stop at |V|-1 accepted edges; the scan never runs past the end of the list.
//  5. If fewer than |V|-1 edges were accepted → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) with sorting, O(α(V)·E) when presorted. Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	// 1. Validate the input graph.
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, disconnected(MethodKruskal)
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Obtain the edge order.
	cfg := resolve(opts)
	edges := cfg.Presorted
	if edges == nil {
		edges = SortEdges(graph)
	}

	// 3. Disjoint set over the vertex universe.
	ds := disjointset.New(vertices)

	// 4. Greedy scan.
	var (
		numVerts    = len(vertices)
		mst         = make([]core.Edge, 0, numVerts-1)
		totalWeight float64
	)
	for i := 0; i < len(edges) && len(mst) < numVerts-1; i++ {
		e := edges[i]
		if e.From == e.To {
			continue
		}
		ru, err := ds.Find(e.From)
		if err != nil {
			return nil, 0, err
		}
		rv, err := ds.Find(e.To)
		if err != nil {
			return nil, 0, err
		}
		if ru == rv {
			continue // would close a cycle
		}
		ds.Merge(ru, rv)
		mst = append(mst, e)
		totalWeight += e.Weight
	}

	// 5. Spanning check.
	if len(mst) < numVerts-1 {
		return nil, 0, disconnected(MethodKruskal)
	}

	return mst, totalWeight, nil
}
