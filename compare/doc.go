// Package compare runs a batch of MST algorithms over the same graph, checks
// that every result is a spanning tree of equal size and weight, and writes the
// timings as tab-separated rows.
//
// DefaultAlgorithms is the benchmark set:
//
//	kruskal_sorted1    Kruskal over edges sorted before the timer starts
//	kruskal_sorted2    Kruskal sorting inside the timed run
//	prim               PrimArray (dense, linear scan)
//	prim_2h            PrimHeap, binary heap
//	prim_2h_nx         PrimHeapSparse, binary heap
//	prim_3h            PrimHeap, ternary heap
//	prim_3h_nx         PrimHeapSparse, ternary heap
//	prim_binomial      PrimHeap, binomial heap
//	prim_binomial_nx   PrimHeapSparse, binomial heap
//	prim_fibonacci     PrimHeap, Fibonacci heap
//	prim_fibonacci_nx  PrimHeapSparse, Fibonacci heap
//	prim_lazy          PrimLazy
//
// The "_nx" entries walk adjacency lists; their partners without the suffix
// scan rows of the dense adjacency matrix.
//
// Run never stops on a failing algorithm: the error is stored on its Result.
// Report.Agree then turns any failure or mismatch into an error.
package compare
