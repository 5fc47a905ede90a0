// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and the Prim variants via Options.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/matrix"
	"github.com/katalvlaran/mstlab/pq"
)

// ErrInvalidGraph indicates that MST algorithms received a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Also returned for |V| == 0.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was asked for a method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Method names accepted by WithMethod and Compute.
const (
	MethodKruskal    = "kruskal"
	MethodPrimArray  = "prim_array"
	MethodPrimHeap   = "prim_heap"
	MethodPrimSparse = "prim_sparse"
	MethodPrimLazy   = "prim_lazy"
)

// Methods lists every method Compute dispatches, in a stable order.
var Methods = []string{MethodKruskal, MethodPrimArray, MethodPrimHeap, MethodPrimSparse, MethodPrimLazy}

// Options configures the MST algorithms. Use DefaultOptions() and Option values.
//
// Fields:
//
//	Method      string      - algorithm run by Compute.
//	Root        string      - Prim start vertex; "" selects the first sorted vertex.
//	Queue       pq.Kind     - queue implementation for PrimHeap and PrimHeapSparse.
//	Arity       int         - branching factor when Queue == pq.KindDary.
//	Presorted   []core.Edge - Kruskal input already ordered by weight; skips the sort.
//	Unreachable float64     - "no edge" sentinel for the dense Prim variants.
type Options struct {
	Method      string
	Root        string
	Queue       pq.Kind
	Arity       int
	Presorted   []core.Edge
	Unreachable float64
}

// Option configures Options.
type Option func(*Options)

// WithMethod sets the algorithm run by Compute.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets the start vertex for the Prim variants; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// WithQueue selects the decrease-key queue used by PrimHeap and PrimHeapSparse.
func WithQueue(kind pq.Kind) Option {
	return func(o *Options) { o.Queue = kind }
}

// WithArity sets the d-ary heap branching factor. Panics if d < 2.
func WithArity(d int) Option {
	if d < 2 {
		panic(fmt.Sprintf("prim_kruskal: WithArity(%d): %v", d, pq.ErrBadArity))
	}

	return func(o *Options) { o.Arity = d }
}

// WithPresortedEdges hands Kruskal an edge list already sorted by ascending weight,
// such as the output of SortEdges. Kruskal then skips its own sort.
func WithPresortedEdges(edges []core.Edge) Option {
	return func(o *Options) { o.Presorted = edges }
}

// WithUnreachable overrides the "no edge" sentinel of the dense adjacency matrix.
func WithUnreachable(v float64) Option {
	return func(o *Options) { o.Unreachable = v }
}

// DefaultOptions returns Options for Kruskal, a binary heap for the Prim heap
// variants and a +Inf sentinel.
func DefaultOptions() Options {
	return Options{
		Method:      MethodKruskal,
		Queue:       pq.KindDary,
		Arity:       pq.DefaultArity,
		Unreachable: matrix.DefaultUnreachable,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Compute selects and runs the MST algorithm named by the WithMethod option.
//
// Returns:
//
//	[]core.Edge - edges of the MST (empty for a single vertex).
//	float64     - total weight of the MST.
//	error       - ErrUnknownMethod or the error of the selected algorithm.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	cfg := resolve(opts)
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrimArray:
		return PrimArray(graph, opts...)
	case MethodPrimHeap:
		return PrimHeap(graph, opts...)
	case MethodPrimSparse:
		return PrimHeapSparse(graph, opts...)
	case MethodPrimLazy:
		return PrimLazy(graph, opts...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}
}

// disconnected wraps ErrDisconnected with the failing method name.
func disconnected(method string) error {
	return fmt.Errorf("%s: %w", method, ErrDisconnected)
}

// startVertex validates the graph and returns its sorted vertices and the Prim root.
func startVertex(method string, graph *core.Graph, root string) (vertices []string, start string, err error) {
	if graph == nil {
		return nil, "", ErrInvalidGraph
	}
	vertices = graph.Vertices()
	if len(vertices) == 0 {
		return nil, "", disconnected(method)
	}
	if root == "" {
		return vertices, vertices[0], nil
	}
	if !graph.HasVertex(root) {
		return nil, "", fmt.Errorf("%s: root %q: %w", method, root, core.ErrVertexNotFound)
	}

	return vertices, root, nil
}
