package pq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkDary verifies heap order and position bookkeeping.
func checkDary(t *testing.T, h *DaryHeap[int, int]) {
	t.Helper()
	for i, it := range h.items {
		require.Equal(t, i, it.pos, "slot %d", i)
		if i > 0 {
			p := (i - 1) / h.d
			require.LessOrEqual(t, h.items[p].key, it.key, "parent %d of %d", p, i)
		}
	}
}

// treeSize counts nodes and asserts heap order, child ranks and back-references.
func treeSize(t *testing.T, tr *binomialTree[int, int]) int {
	t.Helper()
	require.Len(t, tr.children, tr.rank)
	require.Equal(t, tr, tr.item.tree)
	size := 1
	for i, c := range tr.children {
		require.Equal(t, i, c.rank, "child %d rank", i)
		require.Equal(t, tr, c.parent)
		require.LessOrEqual(t, tr.item.key, c.item.key)
		size += treeSize(t, c)
	}

	return size
}

func checkBinomial(t *testing.T, h *BinomialHeap[int, int]) {
	t.Helper()
	total := 0
	for r, tr := range h.trees {
		if tr == nil {
			continue
		}
		require.Equal(t, r, tr.rank)
		require.Nil(t, tr.parent)
		require.Equal(t, 1<<r, treeSize(t, tr), "tree of rank %d", r)
		total += 1 << r
		require.LessOrEqual(t, h.trees[h.minRank].item.key, tr.item.key)
	}
	require.Equal(t, h.size, total)
}

// fibCheck walks a circular list and returns the node count of all trees in it.
func fibCheck(t *testing.T, start, parent *fibNode[int, int]) int {
	t.Helper()
	if start == nil {
		return 0
	}
	count, siblings := 0, 0
	n := start
	for {
		require.Equal(t, n, n.right.left)
		require.Equal(t, n, n.left.right)
		require.Equal(t, parent, n.parent)
		if parent != nil {
			require.LessOrEqual(t, parent.key, n.key)
		} else {
			require.False(t, n.marked, "roots are never marked")
		}
		siblings++
		count += 1 + fibCheck(t, n.child, n)
		n = n.right
		if n == start {
			break
		}
	}
	if parent != nil {
		require.Equal(t, parent.degree, siblings)
	}

	return count
}

func checkFibonacci(t *testing.T, h *FibonacciHeap[int, int]) {
	t.Helper()
	require.Equal(t, h.size, fibCheck(t, h.min, nil))
	if h.min == nil {
		return
	}
	for n := h.min.right; n != h.min; n = n.right {
		require.LessOrEqual(t, h.min.key, n.key)
	}
}

func TestDaryInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, d := range []int{2, 3, 5} {
		h, err := NewDaryHeap[int, int](d)
		require.NoError(t, err)
		var handles []Handle[int, int]
		for i := 0; i < 300; i++ {
			handles = append(handles, h.Insert(r.Intn(1000), i))
		}
		checkDary(t, h)
		for i := 0; i < 100; i++ {
			hd := handles[r.Intn(len(handles))]
			if hd.(*daryItem[int, int]).pos >= 0 {
				require.NoError(t, h.DecreaseKey(hd, hd.Key()-r.Intn(200)))
			}
			_, _, err := h.ExtractMin()
			require.NoError(t, err)
			checkDary(t, h)
		}
	}
}

func TestBinomialInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	h := NewBinomialHeap[int, int]()
	var handles []Handle[int, int]
	for i := 0; i < 257; i++ {
		handles = append(handles, h.Insert(r.Intn(1000), i))
		checkBinomial(t, h)
	}
	// 257 = 0b100000001: exactly ranks 0 and 8.
	require.Len(t, h.trees, 9)
	require.NotNil(t, h.trees[0])
	require.NotNil(t, h.trees[8])

	for i := 0; i < 150; i++ {
		hd := handles[r.Intn(len(handles))]
		if hd.(*binomialItem[int, int]).tree != nil {
			require.NoError(t, h.DecreaseKey(hd, hd.Key()-r.Intn(300)))
			checkBinomial(t, h)
		}
		_, _, err := h.ExtractMin()
		require.NoError(t, err)
		checkBinomial(t, h)
	}
}

func TestBinomialDecreaseKeySwapsPayloads(t *testing.T) {
	h := NewBinomialHeap[int, int]()
	a := h.Insert(1, 1)
	b := h.Insert(2, 2)
	c := h.Insert(3, 3)
	d := h.Insert(4, 4)
	// One rank-2 tree rooted at a.
	require.Len(t, h.trees, 3)
	require.Equal(t, a, h.trees[2].item)

	require.NoError(t, h.DecreaseKey(d, 0))
	checkBinomial(t, h)
	assert.Equal(t, d, h.trees[2].item, "payload climbs to the root")
	for _, hd := range []Handle[int, int]{a, b, c, d} {
		it := hd.(*binomialItem[int, int])
		assert.Equal(t, it, it.tree.item, "back-reference follows the payload")
	}

	k, v, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 0, k)
	assert.Equal(t, 4, v)
}

func TestBinomialLinkPanics(t *testing.T) {
	mk := func(key, rank int) *binomialTree[int, int] {
		tr := &binomialTree[int, int]{rank: rank}
		tr.item = &binomialItem[int, int]{key: key, tree: tr}
		return tr
	}
	assert.PanicsWithError(t, "pq: invalid tree link: rank 0 with rank 1", func() {
		mk(1, 0).link(mk(2, 1))
	})
	assert.Panics(t, func() { mk(5, 0).link(mk(2, 0)) })
}

func TestFibonacciInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	h := NewFibonacciHeap[int, int]()
	var handles []Handle[int, int]
	for i := 0; i < 400; i++ {
		handles = append(handles, h.Insert(r.Intn(1000), i))
	}
	checkFibonacci(t, h)

	for i := 0; i < 250; i++ {
		for j := 0; j < 3; j++ {
			hd := handles[r.Intn(len(handles))]
			if !hd.(*fibNode[int, int]).removed {
				require.NoError(t, h.DecreaseKey(hd, hd.Key()-r.Intn(400)))
			}
		}
		checkFibonacci(t, h)
		_, _, err := h.ExtractMin()
		require.NoError(t, err)
		checkFibonacci(t, h)
	}
}

func TestFibonacciConsolidateDistinctDegrees(t *testing.T) {
	h := NewFibonacciHeap[int, int]()
	for i := 0; i < 16; i++ {
		h.Insert(i, i)
	}
	_, _, err := h.ExtractMin()
	require.NoError(t, err)
	checkFibonacci(t, h)

	// 15 remaining nodes consolidate into roots of degrees 0..3.
	seen := map[int]bool{}
	n := h.min
	for {
		require.False(t, seen[n.degree], "duplicate root degree %d", n.degree)
		seen[n.degree] = true
		n = n.right
		if n == h.min {
			break
		}
	}
	assert.Len(t, seen, 4)
}

func TestFibonacciCascadingCut(t *testing.T) {
	h := NewFibonacciHeap[int, int]()
	for i := 0; i < 9; i++ {
		h.Insert(i*10, i)
	}
	// Removing key 0 leaves 8 nodes: a single tree of degree 3 rooted at key 10.
	_, _, err := h.ExtractMin()
	require.NoError(t, err)
	require.Equal(t, h.min, h.min.right, "single root")
	require.Equal(t, 3, h.min.degree)
	root := h.min

	// p is the degree-2 child of the root, g one of its children.
	p := root.child
	for p.degree != 2 {
		p = p.right
	}
	g := p.child

	// First cut marks p.
	require.NoError(t, h.DecreaseKey(g, -1))
	checkFibonacci(t, h)
	assert.Nil(t, g.parent)
	assert.True(t, p.marked)
	assert.Equal(t, g, h.min)

	// A second loss below p cascades p to the root list.
	require.NotNil(t, p.child)
	require.NoError(t, h.DecreaseKey(p.child, -2))
	checkFibonacci(t, h)
	assert.Nil(t, p.parent)
	assert.False(t, p.marked)
	assert.Equal(t, 2, root.degree)
	assert.Equal(t, 8, h.Len())
}

func TestFibonacciLinkPanics(t *testing.T) {
	h := NewFibonacciHeap[int, int]()
	a := &fibNode[int, int]{key: 1}
	b := &fibNode[int, int]{key: 2, degree: 1}
	assert.Panics(t, func() { h.link(a, b) })

	c := &fibNode[int, int]{key: 1}
	d := &fibNode[int, int]{key: 2}
	assert.PanicsWithError(t, "pq: invalid tree link: parent key 2 above child key 1", func() { h.link(c, d) })
}
