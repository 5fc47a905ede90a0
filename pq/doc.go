// Package pq provides a uniform decrease-key priority-queue capability with three
// structurally distinct implementations.
//
// What & Why
//
//	Prim's algorithm needs to lower the tentative cost of a frontier vertex in
//	place. container/heap can only do that if the caller tracks slot indices by
//	hand, and it offers a single (binary) shape. Queue hides the bookkeeping behind
//	an opaque Handle returned by Insert: the handle stays valid across every
//	internal restructuring until its item is extracted.
//
// Implementations
//
//   - DaryHeap(d): one dense slice forming an implicit d-ary tree. Every item
//     records its own slot, so DecreaseKey sifts it up in O(log_d n).
//     Insert O(log_d n), ExtractMin O(d·log_d n).
//
//   - BinomialHeap: at most one binomial tree per rank. Insert merges a rank-0
//     tree with binary-counter carries (amortized O(1)). ExtractMin re-inserts the
//     children of the minimum tree and rescans the roots (O(log n)). DecreaseKey
//     swaps payloads up the ancestor chain, so tree nodes never move but the
//     handle's back-reference follows its payload (O(log n)).
//
//   - FibonacciHeap: circular doubly-linked root list plus a cached minimum.
//     Insert O(1). ExtractMin promotes the children of the minimum and
//     consolidates roots through a degree-indexed bucket array (amortized
//     O(log n)). DecreaseKey cuts the node and runs cascading cuts on marked
//     ancestors (amortized O(1)).
//
// Consolidation choice
//
//	The Fibonacci heap consolidates with degree buckets rather than by pairwise
//	scanning of the root list. Pairwise scanning is O(r²) per extraction for r
//	roots; buckets are O(r + log n). Neither choice affects DecreaseKey, whose
//	amortized bound only depends on cut and cascading cut.
//
// Errors
//
//	ErrEmptyQueue     ExtractMin/FindMin on an empty queue.
//	ErrKeyIncrease    DecreaseKey with a key larger than the current one.
//	ErrForeignHandle  DecreaseKey with a handle from a different queue or nil.
//	ErrStaleHandle    DecreaseKey with a handle whose item was already extracted.
//	ErrBadArity       DaryHeap with d < 2.
//	ErrInvalidLink    panic value when two heap trees are joined against the
//	                  rank or key-order invariant; unreachable through the API.
//
// A Queue is owned by a single MST run and is not safe for concurrent use.
package pq
