package compare

import (
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/pq"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

// MSTFunc is the signature shared by every algorithm in prim_kruskal.
type MSTFunc func(g *core.Graph, opts ...prim_kruskal.Option) ([]core.Edge, float64, error)

// Algorithm is one named entry in a benchmark batch.
//
// Setup, when set, runs before the timer starts and returns extra options for
// Run; kruskal_sorted1 uses it to sort the edges outside the measurement.
type Algorithm struct {
	Name    string
	Label   string
	Run     MSTFunc
	Options []prim_kruskal.Option
	Setup   func(g *core.Graph) []prim_kruskal.Option
}

func presort(g *core.Graph) []prim_kruskal.Option {
	return []prim_kruskal.Option{prim_kruskal.WithPresortedEdges(prim_kruskal.SortEdges(g))}
}

func heap(kind pq.Kind, arity int) []prim_kruskal.Option {
	opts := []prim_kruskal.Option{prim_kruskal.WithQueue(kind)}
	if kind == pq.KindDary {
		opts = append(opts, prim_kruskal.WithArity(arity))
	}

	return opts
}

// DefaultAlgorithms returns the full benchmark set in reporting order.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{
		{Name: "kruskal_sorted1", Label: "Kruskal, presorted edges", Run: prim_kruskal.Kruskal, Setup: presort},
		{Name: "kruskal_sorted2", Label: "Kruskal", Run: prim_kruskal.Kruskal},
		{Name: "prim", Label: "Prim, array scan", Run: prim_kruskal.PrimArray},
		{Name: "prim_2h", Label: "Prim, binary heap, matrix", Run: prim_kruskal.PrimHeap, Options: heap(pq.KindDary, 2)},
		{Name: "prim_2h_nx", Label: "Prim, binary heap, adjacency", Run: prim_kruskal.PrimHeapSparse, Options: heap(pq.KindDary, 2)},
		{Name: "prim_3h", Label: "Prim, ternary heap, matrix", Run: prim_kruskal.PrimHeap, Options: heap(pq.KindDary, 3)},
		{Name: "prim_3h_nx", Label: "Prim, ternary heap, adjacency", Run: prim_kruskal.PrimHeapSparse, Options: heap(pq.KindDary, 3)},
		{Name: "prim_binomial", Label: "Prim, binomial heap, matrix", Run: prim_kruskal.PrimHeap, Options: heap(pq.KindBinomial, 0)},
		{Name: "prim_binomial_nx", Label: "Prim, binomial heap, adjacency", Run: prim_kruskal.PrimHeapSparse, Options: heap(pq.KindBinomial, 0)},
		{Name: "prim_fibonacci", Label: "Prim, Fibonacci heap, matrix", Run: prim_kruskal.PrimHeap, Options: heap(pq.KindFibonacci, 0)},
		{Name: "prim_fibonacci_nx", Label: "Prim, Fibonacci heap, adjacency", Run: prim_kruskal.PrimHeapSparse, Options: heap(pq.KindFibonacci, 0)},
		{Name: "prim_lazy", Label: "Prim, lazy edge queue", Run: prim_kruskal.PrimLazy},
	}
}

// Select returns the algorithms of DefaultAlgorithms whose names are listed,
// in the order given. An empty list selects all of them.
func Select(names ...string) ([]Algorithm, error) {
	all := DefaultAlgorithms()
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Algorithm, len(all))
	for _, a := range all {
		byName[a.Name] = a
	}
	out := make([]Algorithm, 0, len(names))
	for _, n := range names {
		a, ok := byName[n]
		if !ok {
			return nil, unknownAlgorithm(n)
		}
		out = append(out, a)
	}

	return out, nil
}
