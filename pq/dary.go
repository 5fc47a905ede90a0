// SPDX-License-Identifier: MIT
// Package pq: array-backed d-ary heap.

package pq

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// daryItem is the handle of a DaryHeap entry. pos is its slot in DaryHeap.items,
// or -1 once extracted.
type daryItem[K constraints.Ordered, V any] struct {
	key   K
	value V
	pos   int
	owner *DaryHeap[K, V]
}

func (it *daryItem[K, V]) Key() K   { return it.key }
func (it *daryItem[K, V]) Value() V { return it.value }
func (it *daryItem[K, V]) sealed()  {}

// DaryHeap is a min-heap laid out as an implicit d-ary tree in one slice:
// the children of slot i are slots d*i+1 .. d*i+d, the parent of slot i>0 is (i-1)/d.
// Invariant: items[i].key <= every child key, and items[i].pos == i.
type DaryHeap[K constraints.Ordered, V any] struct {
	items []*daryItem[K, V]
	d     int
}

// NewDaryHeap returns an empty heap with branching factor d.
// Returns ErrBadArity if d < 2.
func NewDaryHeap[K constraints.Ordered, V any](d int) (*DaryHeap[K, V], error) {
	if d < 2 {
		return nil, fmt.Errorf("%w: d=%d", ErrBadArity, d)
	}

	return &DaryHeap[K, V]{d: d}, nil
}

// Arity returns the branching factor.
func (h *DaryHeap[K, V]) Arity() int { return h.d }

// Len returns the number of items.
func (h *DaryHeap[K, V]) Len() int { return len(h.items) }

// Insert appends the item and sifts it up.
// Complexity: O(log_d n).
func (h *DaryHeap[K, V]) Insert(key K, value V) Handle[K, V] {
	it := &daryItem[K, V]{key: key, value: value, owner: h}
	h.items = append(h.items, nil)
	h.siftUp(it, len(h.items)-1)

	return it
}

// FindMin returns the root item.
// Complexity: O(1).
func (h *DaryHeap[K, V]) FindMin() (K, V, error) {
	if len(h.items) == 0 {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}

	return h.items[0].key, h.items[0].value, nil
}

// ExtractMin removes the root, moves the last item into the root slot and
// sifts it down.
// Complexity: O(d·log_d n).
func (h *DaryHeap[K, V]) ExtractMin() (K, V, error) {
	n := len(h.items)
	if n == 0 {
		var k K
		var v V
		return k, v, ErrEmptyQueue
	}

	top := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = nil
	h.items = h.items[:n-1]
	if n > 1 {
		h.siftDown(last, 0)
	}
	top.pos = -1

	return top.key, top.value, nil
}

// DecreaseKey lowers the key of handle and sifts it up.
// Complexity: O(log_d n).
func (h *DaryHeap[K, V]) DecreaseKey(handle Handle[K, V], key K) error {
	it, ok := handle.(*daryItem[K, V])
	if !ok || it == nil || it.owner != h {
		return ErrForeignHandle
	}
	if it.pos < 0 {
		return ErrStaleHandle
	}
	if key > it.key {
		return fmt.Errorf("%w: %v > %v", ErrKeyIncrease, key, it.key)
	}
	it.key = key
	h.siftUp(it, it.pos)

	return nil
}

// siftUp moves it from slot pos toward the root while its parent has a larger key.
func (h *DaryHeap[K, V]) siftUp(it *daryItem[K, V], pos int) {
	for pos > 0 {
		p := (pos - 1) / h.d
		if h.items[p].key <= it.key {
			break
		}
		h.items[pos] = h.items[p]
		h.items[pos].pos = pos
		pos = p
	}
	h.items[pos] = it
	it.pos = pos
}

// siftDown moves it from slot pos toward the leaves while a child has a smaller key.
func (h *DaryHeap[K, V]) siftDown(it *daryItem[K, V], pos int) {
	for {
		c := h.minChild(pos)
		if c < 0 || h.items[c].key >= it.key {
			break
		}
		h.items[pos] = h.items[c]
		h.items[pos].pos = pos
		pos = c
	}
	h.items[pos] = it
	it.pos = pos
}

// minChild returns the slot of the smallest child of pos, or -1 for a leaf.
// Scans up to d children.
func (h *DaryHeap[K, V]) minChild(pos int) int {
	first := h.d*pos + 1
	n := len(h.items)
	if first >= n {
		return -1
	}
	end := first + h.d
	if end > n {
		end = n
	}
	best := first
	for c := first + 1; c < end; c++ {
		if h.items[c].key < h.items[best].key {
			best = c
		}
	}

	return best
}
