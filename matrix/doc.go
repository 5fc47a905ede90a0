// Package matrix offers a dense adjacency-matrix view of a core.Graph for the
// O(V²) MST variants.
//
// The matrix package provides:
//
//   - AdjacencyMatrix backed by gonum's *mat.Dense, indexed by the sorted vertex
//     order of the source graph, with O(1) edge-weight lookups and O(V²) memory.
//   - A configurable "no edge" sentinel (default +Inf). Every stored edge weight
//     must be strictly below the sentinel so a linear scan can tell edges from gaps.
//   - Parallel edges collapse to the lightest weight; self-loops are dropped
//     (the diagonal always holds the sentinel).
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
package matrix
