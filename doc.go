// Package mstlab is a workbench for minimum spanning trees: one graph model,
// five MST algorithms and three decrease-key priority queues, plus the tooling
// to generate benchmark graphs and time every combination on them.
//
// What is inside?
//
//	core/          - thread-safe undirected weighted Graph, Vertex and Edge primitives
//	matrix/        - dense adjacency matrix view with an "unreachable" sentinel
//	disjointset/   - union-find with path compression and union by rank
//	pq/            - DaryHeap, BinomialHeap and FibonacciHeap behind one Queue capability
//	prim_kruskal/  - Kruskal, PrimArray, PrimHeap, PrimHeapSparse and PrimLazy
//	builder/       - deterministic graph constructors (complete, path, random connected, by density)
//	edgelist/      - "u v weight" text format used by the benchmark files
//	compare/       - run a batch of algorithms, validate the trees, write TSV timings
//	cmd/mstbench/  - CLI: `gen` writes benchmark graphs, `run` times the algorithms
//
// Quick example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──3──D
//
//	The MST keeps A–B, B–D and C–D for a total weight of 6.
//
// Every algorithm returns the tree edges and their total weight, and reports a
// disconnected input with prim_kruskal.ErrDisconnected.
//
//	go get github.com/katalvlaran/mstlab
package mstlab
