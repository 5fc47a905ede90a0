// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle plus read-only queries.
// Determinism:
//   - Vertices() and NeighborIDs() are sorted ascending.
//   - Edges() preserves insertion order; edge IDs are "e" + decimal counter.
// Concurrency:
//   - Mutations under write locks, queries under read locks.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddVertex inserts a vertex. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates a new undirected edge between from and to.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Ensure both endpoints exist via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Generate the edge ID, store the edge and mirror the adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s-%s weight=%g", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s-%s weight=%g", ErrNegativeWeight, from, to, weight)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	g.nextEdgeID++
	eid := string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10))
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, e)
	g.link(from, to, eid)
	if from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// link records eid under adjacencyList[from][to]. Caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacencyList[from]
	if !ok {
		inner = make(map[string]map[string]struct{})
		g.adjacencyList[from] = inner
	}
	bucket, ok := inner[to]
	if !ok {
		bucket = make(map[string]struct{})
		inner[to] = bucket
	}
	bucket[eid] = struct{}{}
}

// HasEdge reports whether at least one edge joins from and to (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all edges in insertion order. Each unordered pair appears once
// per stored edge. The returned pointers must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// NeighborIDs returns the sorted IDs of vertices adjacent to id.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner := g.adjacencyList[id]
	out := make([]string, 0, len(inner))
	for to, bucket := range inner {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Weight returns the weight of the lightest edge joining from and to.
// Returns ErrEdgeNotFound when the vertices are not adjacent.
// Complexity: O(k) for k parallel edges.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return 0, fmt.Errorf("Weight(%q,%q): %w", from, to, ErrEdgeNotFound)
	}
	best := math.Inf(1)
	for eid := range bucket {
		if w := g.edges[eid].Weight; w < best {
			best = w
		}
	}

	return best, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeOrder)
}

// Density returns 2E / (V(V-1)), or 0 for graphs with fewer than two vertices.
// Complexity: O(1).
func (g *Graph) Density() float64 {
	n := float64(g.VertexCount())
	if n < 2 {
		return 0
	}

	return 2 * float64(g.EdgeCount()) / (n * (n - 1))
}
