// SPDX-License-Identifier: MIT
// Package pq: Fibonacci heap with degree-bucket consolidation and cascading cuts.

package pq

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// fibNode is both a tree node and the handle given to callers. Payloads never
// move between nodes, so the node itself is a stable handle.
type fibNode[K constraints.Ordered, V any] struct {
	key   K
	value V

	parent      *fibNode[K, V]
	child       *fibNode[K, V] // any node of the circular child list
	left, right *fibNode[K, V] // circular sibling links
	degree      int
	marked      bool

	owner   *FibonacciHeap[K, V]
	removed bool
}

func (n *fibNode[K, V]) Key() K   { return n.key }
func (n *fibNode[K, V]) Value() V { return n.value }
func (n *fibNode[K, V]) sealed()  {}

// FibonacciHeap is a circular doubly-linked list of heap-ordered trees with a
// pointer to the minimum root.
type FibonacciHeap[K constraints.Ordered, V any] struct {
	min  *fibNode[K, V]
	size int
}

// NewFibonacciHeap returns an empty heap.
func NewFibonacciHeap[K constraints.Ordered, V any]() *FibonacciHeap[K, V] {
	return &FibonacciHeap[K, V]{}
}

// Len returns the number of items.
func (h *FibonacciHeap[K, V]) Len() int { return h.size }

// Insert splices a single-node tree into the root list.
// Complexity: O(1).
func (h *FibonacciHeap[K, V]) Insert(key K, value V) Handle[K, V] {
	n := &fibNode[K, V]{key: key, value: value, owner: h}
	n.left, n.right = n, n
	h.addRoot(n)
	h.size++

	return n
}

// FindMin returns the minimum root.
// Complexity: O(1).
func (h *FibonacciHeap[K, V]) FindMin() (K, V, error) {
	if h.min == nil {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}

	return h.min.key, h.min.value, nil
}

// ExtractMin removes the minimum root, promotes its children to the root list
// and consolidates so that no two roots share a degree.
// Complexity: amortized O(log n).
func (h *FibonacciHeap[K, V]) ExtractMin() (K, V, error) {
	z := h.min
	if z == nil {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}

	// Stage 1: promote children.
	for z.child != nil {
		c := z.child
		z.child = unlinkSibling(c)
		c.parent = nil
		c.marked = false
		h.spliceRoot(c)
	}
	z.degree = 0

	// Stage 2: drop z from the root list.
	next := unlinkSibling(z)
	h.size--
	z.removed = true
	if next == nil {
		h.min = nil
	} else {
		h.min = next
		// Stage 3: consolidate.
		h.consolidate()
	}

	return z.key, z.value, nil
}

// DecreaseKey lowers the key of handle. If heap order with the parent breaks,
// the node is cut to the root list and marked ancestors are cut in turn.
// Complexity: amortized O(1).
func (h *FibonacciHeap[K, V]) DecreaseKey(handle Handle[K, V], key K) error {
	n, ok := handle.(*fibNode[K, V])
	if !ok || n == nil || n.owner != h {
		return ErrForeignHandle
	}
	if n.removed {
		return ErrStaleHandle
	}
	if key > n.key {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncrease, key, n.key)
	}

	n.key = key
	if p := n.parent; p != nil && n.key < p.key {
		h.cut(n)
		h.cascadingCut(p)
	}
	if n.key < h.min.key {
		h.min = n
	}

	return nil
}

// addRoot splices n into the root list and updates min on a strictly smaller key.
func (h *FibonacciHeap[K, V]) addRoot(n *fibNode[K, V]) {
	h.spliceRoot(n)
	if n.key < h.min.key {
		h.min = n
	}
}

// spliceRoot inserts n next to min without touching min, unless the list is empty.
func (h *FibonacciHeap[K, V]) spliceRoot(n *fibNode[K, V]) {
	if h.min == nil {
		n.left, n.right = n, n
		h.min = n
		return
	}
	n.left = h.min
	n.right = h.min.right
	h.min.right.left = n
	h.min.right = n
}

// unlinkSibling removes n from its circular list and returns some other member,
// or nil if n was alone. n is left as a self-loop.
func unlinkSibling[K constraints.Ordered, V any](n *fibNode[K, V]) *fibNode[K, V] {
	if n.right == n {
		return nil
	}
	next := n.right
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n

	return next
}

// link makes child a child of parent. Both must be roots of equal degree with
// parent holding the smaller (or equal) key.
func (h *FibonacciHeap[K, V]) link(child, parent *fibNode[K, V]) {
	if child.degree != parent.degree {
		panic(fmt.Errorf("%w: degree %d under degree %d", ErrInvalidLink, child.degree, parent.degree))
	}
	if child.key < parent.key {
		panic(fmt.Errorf("%w: parent key %v above child key %v", ErrInvalidLink, parent.key, child.key))
	}
	child.left, child.right = child, child
	child.parent = parent
	child.marked = false
	if parent.child == nil {
		parent.child = child
	} else {
		c := parent.child
		child.left = c
		child.right = c.right
		c.right.left = child
		c.right = child
	}
	parent.degree++
}

// consolidate links roots of equal degree through a degree-indexed bucket array
// until every degree is represented at most once, then rebuilds the root list.
func (h *FibonacciHeap[K, V]) consolidate() {
	// Snapshot the root list; links rewrite sibling pointers.
	var roots []*fibNode[K, V]
	start := h.min
	for n := start; ; {
		roots = append(roots, n)
		n = n.right
		if n == start {
			break
		}
	}

	var buckets []*fibNode[K, V]
	for _, x := range roots {
		x.left, x.right = x, x
		for {
			for len(buckets) <= x.degree {
				buckets = append(buckets, nil)
			}
			y := buckets[x.degree]
			if y == nil {
				break
			}
			buckets[x.degree] = nil
			if y.key < x.key {
				x, y = y, x
			}
			h.link(y, x)
		}
		buckets[x.degree] = x
	}

	h.min = nil
	for _, n := range buckets {
		if n != nil {
			h.addRoot(n)
		}
	}
}

// cut moves n from its parent's child list to the root list and clears its mark.
func (h *FibonacciHeap[K, V]) cut(n *fibNode[K, V]) {
	p := n.parent
	rest := unlinkSibling(n)
	if p.child == n {
		p.child = rest
	}
	p.degree--
	n.parent = nil
	n.marked = false
	h.spliceRoot(n)
}

// cascadingCut walks up from n: an unmarked non-root gets marked and the walk
// stops; a marked one is cut and the walk continues with its parent.
func (h *FibonacciHeap[K, V]) cascadingCut(n *fibNode[K, V]) {
	for n.parent != nil {
		if !n.marked {
			n.marked = true
			return
		}
		p := n.parent
		h.cut(n)
		n = p
	}
}
