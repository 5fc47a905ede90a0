// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: AdjacencyMatrix construction and read-only queries.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mstlab/core"
)

// AdjacencyMatrix wraps a *mat.Dense as an undirected graph adjacency representation.
// VertexIndex maps vertex ID → row/col in Mat; vertexByIndex is the reverse lookup.
// Mat is symmetric; absent pairs and the diagonal hold the unreachable sentinel.
type AdjacencyMatrix struct {
	Mat           *mat.Dense     // underlying n×n matrix
	VertexIndex   map[string]int // vertex ID → index
	vertexByIndex []string       // index → vertex ID
	unreachable   float64        // "no edge" sentinel
}

// NewAdjacencyMatrix constructs an AdjacencyMatrix from g.
// Stage 1 (Validate): ensure g is non-nil and non-empty.
// Stage 2 (Prepare): index the sorted vertex list and fill storage with the sentinel.
// Stage 3 (Execute): write every non-loop edge, keeping the lightest parallel edge.
// Stage 4 (Finalize): wrap the dense matrix.
// Complexity: O(V² + E) time, O(V²) memory.
func NewAdjacencyMatrix(g *core.Graph, opts ...Option) (*AdjacencyMatrix, error) {
	// Stage 1: validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// Stage 2: index vertices and pre-fill with the sentinel
	idx := make(map[string]int, n)
	for i, id := range vertices {
		idx[id] = i
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = cfg.Unreachable
	}

	// Stage 3: populate edges
	var src, dst int
	for _, e := range g.Edges() {
		src, dst = idx[e.From], idx[e.To]
		if src == dst {
			continue // loops never join two distinct vertices
		}
		if e.Weight >= cfg.Unreachable {
			return nil, fmt.Errorf("NewAdjacencyMatrix: edge %s-%s weight=%g, sentinel=%g: %w",
				e.From, e.To, e.Weight, cfg.Unreachable, ErrBadSentinel)
		}
		if e.Weight < data[src*n+dst] {
			data[src*n+dst] = e.Weight
			data[dst*n+src] = e.Weight
		}
	}

	// Stage 4: wrap
	return &AdjacencyMatrix{
		Mat:           mat.NewDense(n, n, data),
		VertexIndex:   idx,
		vertexByIndex: vertices,
		unreachable:   cfg.Unreachable,
	}, nil
}

// VertexCount returns the matrix dimension.
func (am *AdjacencyMatrix) VertexCount() int {
	return len(am.vertexByIndex)
}

// Unreachable returns the "no edge" sentinel.
func (am *AdjacencyMatrix) Unreachable() float64 {
	return am.unreachable
}

// At returns the weight stored for (i, j), or an ErrOutOfRange error.
func (am *AdjacencyMatrix) At(i, j int) (float64, error) {
	n := am.VertexCount()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return am.Mat.At(i, j), nil
}

// Row returns a read-only view of row i. Callers must not modify the slice.
// Panics if i is out of range; intended for hot loops over validated indices.
func (am *AdjacencyMatrix) Row(i int) []float64 {
	return am.Mat.RawRowView(i)
}

// HasEdge reports whether (i, j) holds a weight below the sentinel.
func (am *AdjacencyMatrix) HasEdge(i, j int) bool {
	w, err := am.At(i, j)

	return err == nil && w < am.unreachable
}

// Index returns the row/col index of a vertex ID.
func (am *AdjacencyMatrix) Index(id string) (int, error) {
	i, ok := am.VertexIndex[id]
	if !ok {
		return 0, fmt.Errorf("Index(%q): %w", id, ErrUnknownVertex)
	}

	return i, nil
}

// VertexID returns the vertex ID stored at index i, or "" when out of range.
func (am *AdjacencyMatrix) VertexID(i int) string {
	if i < 0 || i >= len(am.vertexByIndex) {
		return ""
	}

	return am.vertexByIndex[i]
}

// Neighbors returns all vertex IDs adjacent to u in index order.
// Complexity: O(V) single scan over the row.
func (am *AdjacencyMatrix) Neighbors(u string) ([]string, error) {
	src, err := am.Index(u)
	if err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}

	row := am.Row(src)
	out := make([]string, 0, 8)
	for j, w := range row {
		if w < am.unreachable {
			out = append(out, am.vertexByIndex[j])
		}
	}

	return out, nil
}
