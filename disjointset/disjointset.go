package disjointset

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates a lookup for an element outside the universe.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// DisjointSet tracks a partition of a fixed element universe.
//
// sets[i] is the parent link of element i; sets[r] == r marks a root.
// ranks[r] is the rank hint of root r (singletons start at 1).
type DisjointSet struct {
	index map[string]int // element → position
	elems []string       // position → element
	sets  []int          // parent links
	ranks []int          // rank hints
	count int            // number of disjoint sets
}

// New creates one singleton set per element. Duplicate elements keep their
// first position.
// Complexity: O(n).
func New(elements []string) *DisjointSet {
	n := len(elements)
	ds := &DisjointSet{
		index: make(map[string]int, n),
		elems: make([]string, 0, n),
		sets:  make([]int, 0, n),
		ranks: make([]int, 0, n),
	}
	for _, e := range elements {
		if _, dup := ds.index[e]; dup {
			continue
		}
		i := len(ds.elems)
		ds.index[e] = i
		ds.elems = append(ds.elems, e)
		ds.sets = append(ds.sets, i)
		ds.ranks = append(ds.ranks, 1)
	}
	ds.count = len(ds.elems)

	return ds
}

// Len returns the size of the universe.
func (ds *DisjointSet) Len() int { return len(ds.elems) }

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int { return ds.count }

// Index returns the position of x in the universe.
func (ds *DisjointSet) Index(x string) (int, error) {
	i, ok := ds.index[x]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, x)
	}

	return i, nil
}

// Element returns the element stored at position i.
func (ds *DisjointSet) Element(i int) string { return ds.elems[i] }

// Find returns the label (root position) of the set containing x.
func (ds *DisjointSet) Find(x string) (int, error) {
	i, err := ds.Index(x)
	if err != nil {
		return 0, err
	}

	return ds.FindIndex(i), nil
}

// FindIndex returns the root of the set containing position i and re-points
// every node on the walked path directly at that root.
// Panics if i is outside [0, Len()).
func (ds *DisjointSet) FindIndex(i int) int {
	// Walk up to the root.
	r := i
	for ds.sets[r] != r {
		r = ds.sets[r]
	}
	// Second pass: compress the path.
	for i != r {
		next := ds.sets[i]
		ds.sets[i] = r
		i = next
	}

	return r
}

// Merge unions the sets labelled a and b. Both must be roots returned by Find
// or FindIndex and should differ; merging a label with itself is a no-op.
func (ds *DisjointSet) Merge(a, b int) {
	if a == b {
		return
	}
	switch {
	case ds.ranks[a] == ds.ranks[b]:
		ds.ranks[a]++
		ds.sets[b] = a
	case ds.ranks[a] > ds.ranks[b]:
		ds.sets[b] = a
	default:
		ds.sets[a] = b
	}
	ds.count--
}

// Connected reports whether x and y belong to the same set.
func (ds *DisjointSet) Connected(x, y string) (bool, error) {
	rx, err := ds.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := ds.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Rank returns the rank hint stored for position i. Meaningful only for roots.
func (ds *DisjointSet) Rank(i int) int { return ds.ranks[i] }

// Parent returns the raw parent link of position i, without compression.
func (ds *DisjointSet) Parent(i int) int { return ds.sets[i] }
