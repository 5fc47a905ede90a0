// Package prim_kruskal computes Minimum Spanning Trees (MST) of an undirected,
// weighted *core.Graph with Kruskal’s algorithm and four formulations of Prim’s.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why several Prim variants?
//     Prim's running time is dominated by the frontier structure. Keeping the same
//     greedy step and swapping the structure makes the cost of each priority queue
//     directly comparable on dense and sparse inputs.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...)
//     Sort edges (or take WithPresortedEdges), then merge components in a
//     disjointset.DisjointSet. Stops at |V|−1 accepted edges.
//     Time O(E log E + α(V)·E).
//
//   - PrimArray(g, opts...)
//     Dense matrix plus a linear mindist scan per round. Time O(V²), no queue.
//
//   - PrimHeap(g, opts...)
//     Dense matrix plus a decrease-key queue chosen by WithQueue / WithArity.
//
//   - PrimHeapSparse(g, opts...)
//     Adjacency lists plus a decrease-key queue. Time O(E + V log V) amortized
//     with pq.KindFibonacci.
//
//   - PrimLazy(g, opts...)
//     Candidate-edge queue with lazy deletion (github.com/oleiade/lane/v2).
//     Time O(E log E).
//
//   - Compute(g, WithMethod(m), ...)
//     Dispatch by method name.
//
// Determinism and ties
//
//	Vertices are taken in sorted order; the default Prim root is the first of them.
//	Relaxation only accepts a strictly smaller weight, so on ties the earlier
//	predecessor is kept. Different algorithms may return different trees of equal
//	total weight when weights repeat.
//
// Returned edges
//
//	Kruskal returns the graph's own edges (with IDs). The Prim variants return
//	edges oriented parent → child, carrying the lightest weight between the pair
//	and no edge ID.
//
// Error Conditions
//
//	- ErrInvalidGraph         graph is nil.
//	- ErrDisconnected         |V| == 0, or no spanning tree exists. The error is
//	                          wrapped with the method name, e.g. "prim_heap: ...".
//	- ErrUnknownMethod        Compute with an unrecognised method.
//	- core.ErrVertexNotFound  WithRoot names a missing vertex.
//	- pq.ErrBadArity          d-ary queue with d < 2.
//	- matrix.ErrBadSentinel   dense variants, weight not below the WithUnreachable sentinel.
//
// A graph with a single vertex yields an empty MST with total weight 0.
package prim_kruskal
