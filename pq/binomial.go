// SPDX-License-Identifier: MIT
// Package pq: binomial heap with payload-swapping decrease-key.

package pq

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// binomialItem is the payload carried by a tree node and the handle given to
// callers. tree points at the node currently holding the payload; it is nil
// once the item has been extracted.
type binomialItem[K constraints.Ordered, V any] struct {
	key   K
	value V
	tree  *binomialTree[K, V]
	owner *BinomialHeap[K, V]
}

func (it *binomialItem[K, V]) Key() K   { return it.key }
func (it *binomialItem[K, V]) Value() V { return it.value }
func (it *binomialItem[K, V]) sealed()  {}

// binomialTree is a node of a binomial tree. A tree of rank r has exactly 2^r
// nodes; children[i] is a tree of rank i.
type binomialTree[K constraints.Ordered, V any] struct {
	rank     int
	item     *binomialItem[K, V]
	children []*binomialTree[K, V]
	parent   *binomialTree[K, V]
}

// link makes other a child of t. Both trees must share a rank and t must hold
// the smaller (or equal) key; anything else is an internal invariant violation.
func (t *binomialTree[K, V]) link(other *binomialTree[K, V]) {
	if t.rank != other.rank {
		panic(fmt.Errorf("%w: rank %d with rank %d", ErrInvalidLink, t.rank, other.rank))
	}
	if other.item.key < t.item.key {
		panic(fmt.Errorf("%w: parent key %v above child key %v", ErrInvalidLink, t.item.key, other.item.key))
	}
	t.children = append(t.children, other)
	other.parent = t
	t.rank++
}

// decrease sets the payload key and swaps payloads with ancestors until heap
// order holds. Tree nodes stay in place; each payload's back-reference follows it.
func (t *binomialTree[K, V]) decrease(key K) {
	node := t
	node.item.key = key
	for parent := node.parent; parent != nil && node.item.key < parent.item.key; parent = node.parent {
		parent.item, node.item = node.item, parent.item
		parent.item.tree = parent
		node.item.tree = node
		node = parent
	}
}

// BinomialHeap keeps at most one binomial tree per rank in trees[rank].
// minRank is the rank of the tree whose root holds the global minimum, or -1.
type BinomialHeap[K constraints.Ordered, V any] struct {
	trees   []*binomialTree[K, V]
	size    int
	minRank int
}

// NewBinomialHeap returns an empty heap.
func NewBinomialHeap[K constraints.Ordered, V any]() *BinomialHeap[K, V] {
	return &BinomialHeap[K, V]{minRank: -1}
}

// Len returns the number of items.
func (h *BinomialHeap[K, V]) Len() int { return h.size }

// Insert adds a rank-0 tree and propagates carries like a binary counter.
// Complexity: amortized O(1), worst case O(log n).
func (h *BinomialHeap[K, V]) Insert(key K, value V) Handle[K, V] {
	t := &binomialTree[K, V]{}
	it := &binomialItem[K, V]{key: key, value: value, tree: t, owner: h}
	t.item = it

	// The minimum tree may be consumed by a carry; the merged root can only be
	// smaller or equal, so comparing against the old minimum key is enough.
	hadMin := h.minRank >= 0
	var oldMin K
	if hadMin {
		oldMin = h.trees[h.minRank].item.key
	}
	merged := h.addTree(t)
	if !hadMin || merged.item.key <= oldMin {
		h.minRank = merged.rank
	}

	return it
}

// addTree merges t into the rank slots and returns the tree that finally
// settles in an empty slot.
func (h *BinomialHeap[K, V]) addTree(t *binomialTree[K, V]) *binomialTree[K, V] {
	h.size += 1 << t.rank
	for {
		for len(h.trees) <= t.rank {
			h.trees = append(h.trees, nil)
		}
		other := h.trees[t.rank]
		if other == nil {
			break
		}
		h.trees[t.rank] = nil
		if other.item.key < t.item.key {
			t, other = other, t
		}
		t.link(other)
	}
	h.trees[t.rank] = t

	return t
}

// FindMin returns the cached minimum.
// Complexity: O(1).
func (h *BinomialHeap[K, V]) FindMin() (K, V, error) {
	if h.size == 0 {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}
	it := h.trees[h.minRank].item

	return it.key, it.value, nil
}

// ExtractMin removes the minimum tree, re-adds each of its children as a
// standalone tree, then rescans the roots for the new minimum.
// Complexity: O(log n).
func (h *BinomialHeap[K, V]) ExtractMin() (K, V, error) {
	if h.size == 0 {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}

	removed := h.trees[h.minRank]
	h.trees[h.minRank] = nil
	h.size -= 1 << removed.rank
	for _, child := range removed.children {
		child.parent = nil
		h.addTree(child)
	}
	h.trimTrees()
	h.rescan()

	it := removed.item
	it.tree = nil
	removed.item = nil
	removed.children = nil

	return it.key, it.value, nil
}

// DecreaseKey lowers the key of handle by swapping payloads up its tree, then
// recomputes the cached minimum.
// Complexity: O(log n).
func (h *BinomialHeap[K, V]) DecreaseKey(handle Handle[K, V], key K) error {
	it, ok := handle.(*binomialItem[K, V])
	if !ok || it == nil || it.owner != h {
		return ErrForeignHandle
	}
	if it.tree == nil {
		return ErrStaleHandle
	}
	if key > it.key {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncrease, key, it.key)
	}
	it.tree.decrease(key)
	h.rescan()

	return nil
}

// rescan recomputes minRank over all root trees. Ties go to the higher rank.
func (h *BinomialHeap[K, V]) rescan() {
	h.minRank = -1
	for r, t := range h.trees {
		if t == nil {
			continue
		}
		if h.minRank < 0 || t.item.key <= h.trees[h.minRank].item.key {
			h.minRank = r
		}
	}
}

// trimTrees drops empty slots above the highest rank in use.
func (h *BinomialHeap[K, V]) trimTrees() {
	n := len(h.trees)
	for n > 0 && h.trees[n-1] == nil {
		n--
	}
	h.trees = h.trees[:n]
}
