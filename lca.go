package suffixtree

import "cmp"

// lcaIndex is the Harel-Tarjan reduction of tree LCA to a +-1 range
// minimum query over a DFS Euler tour (spec §4.7). It is built once,
// lazily, the first time a query needs it, and invalidated by every
// subsequent Add.
type lcaIndex[ID comparable, S cmp.Ordered] struct {
	tour  []*node[ID, S] // node at each Euler tour position, length 2N-1
	depth []int          // tree depth (edge count from root) at each tour position
	first map[*node[ID, S]]int

	// sparse table over depth, table[k][i] = index (into tour) of the
	// minimum-depth entry in the window starting at i of length 2^k.
	table [][]int
}

func buildLCAIndex[ID comparable, S cmp.Ordered](root *node[ID, S]) *lcaIndex[ID, S] {
	idx := &lcaIndex[ID, S]{
		first: make(map[*node[ID, S]]int),
	}

	var walk func(n *node[ID, S], d int)
	walk = func(n *node[ID, S], d int) {
		idx.first[n] = len(idx.tour)
		idx.tour = append(idx.tour, n)
		idx.depth = append(idx.depth, d)
		for _, k := range n.sortedChildKeys() {
			c := n.children[k]
			walk(c, d+1)
			idx.tour = append(idx.tour, n)
			idx.depth = append(idx.depth, d)
		}
	}
	walk(root, 0)

	idx.buildSparseTable()
	return idx
}

// buildSparseTable precomputes, for every power-of-two window length,
// the tour index holding the minimum depth in that window (spec §4.7
// "O(N log N) preprocessing / O(1) query").
func (idx *lcaIndex[ID, S]) buildSparseTable() {
	n := len(idx.tour)
	if n == 0 {
		return
	}
	levels := 1
	for (1 << levels) <= n {
		levels++
	}
	idx.table = make([][]int, levels)
	idx.table[0] = make([]int, n)
	for i := range idx.table[0] {
		idx.table[0][i] = i
	}
	for k := 1; k < levels; k++ {
		half := 1 << (k - 1)
		size := n - (1 << k) + 1
		if size < 0 {
			size = 0
		}
		idx.table[k] = make([]int, size)
		for i := 0; i < size; i++ {
			left := idx.table[k-1][i]
			right := idx.table[k-1][i+half]
			if idx.depth[left] <= idx.depth[right] {
				idx.table[k][i] = left
			} else {
				idx.table[k][i] = right
			}
		}
	}
}

// rangeMinPos returns the tour index of the minimum-depth entry in
// tour[lo..hi] inclusive.
func (idx *lcaIndex[ID, S]) rangeMinPos(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	length := hi - lo + 1
	k := 0
	for (1 << (k + 1)) <= length {
		k++
	}
	half := 1 << k
	left := idx.table[k][lo]
	right := idx.table[k][hi-half+1]
	if idx.depth[left] <= idx.depth[right] {
		return left
	}
	return right
}

// lca returns the lowest common ancestor of u and v.
func (idx *lcaIndex[ID, S]) lca(u, v *node[ID, S]) *node[ID, S] {
	fu, fv := idx.first[u], idx.first[v]
	return idx.tour[idx.rangeMinPos(fu, fv)]
}
