// Package core provides the in-memory, thread-safe Graph consumed by every MST
// algorithm in mstlab.
//
// The Graph G = (V,E) is undirected and weighted:
//
//   - Vertices are identified by non-empty strings.
//   - Each Edge carries a non-negative, finite float64 Weight.
//   - At most one edge per unordered vertex pair unless WithMultiEdges() is set.
//   - Self-loops are rejected unless WithLoops() is set.
//
// Why a dedicated graph type?
//
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted IDs,
//     Edges() returns edges in insertion order. Every algorithm that walks the graph
//     therefore sees the same order on every run, which keeps tie-breaking stable.
//   - Read-only algorithms: MST code never mutates a Graph. Per-run scratch state
//     (costs, predecessors, queue handles) lives in the algorithm, so several
//     algorithms can be compared against the same Graph back to back.
//
// Concurrency:
//
//	muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.
//	Readers take RLock, mutators take Lock. Lock order is always muVert before
//	muEdgeAdj when both are needed.
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	AddEdge(from, to string, weight float64) (string, error)     // O(1) amortized
//	HasVertex(id string) bool                                    // O(1)
//	HasEdge(from, to string) bool                                // O(1)
//	Vertices() []string                                          // O(V log V)
//	Edges() []*Edge                                              // O(E)
//	NeighborIDs(id string) ([]string, error)                     // O(d log d)
//	Weight(from, to string) (float64, error)                     // O(k), k = parallel edges
//	VertexCount(), EdgeCount() int                               // O(1)
//	Density() float64                                            // O(1)
package core
