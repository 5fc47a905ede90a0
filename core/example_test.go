package core_test

import (
	"fmt"

	"github.com/katalvlaran/mstlab/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create an undirected weighted graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C).
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "A", 4)

	// 3) Inspect vertices, adjacency and weights.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))
	ids, _ := g.NeighborIDs("C")
	fmt.Println("Neighbors of C:", ids)
	w, _ := g.Weight("A", "C")
	fmt.Println("Weight A-C:", w)

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// Neighbors of C: [A B]
	// Weight A-C: 4
}
