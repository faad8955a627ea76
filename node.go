package suffixtree

import (
	"cmp"
	"slices"
)

// node is the single concrete representation for both internal nodes
// and leaves (spec §4.2). A tagged struct is used instead of an
// interface/two-struct split so that builders can treat "the node at
// the far end of an edge" uniformly; the `leaf` flag distinguishes the
// two shapes spec §3 calls Internal and Leaf.
type node[ID comparable, S cmp.Ordered] struct {
	parent   *node[ID, S]
	incoming Path[ID, S] // edge label from parent; empty at root
	depth    int         // string depth: symbols from root to this node

	// Internal-only fields.
	children   map[Elem[S]]*node[ID, S]
	suffixLink *node[ID, S]
	name       int // debug/dot output only; WriteDot sets it on leaves too

	// Leaf-only fields.
	leaf        bool
	seqID       ID
	suffixStart int
}

func newInternal[ID comparable, S cmp.Ordered](parent *node[ID, S], incoming Path[ID, S], depth int) *node[ID, S] {
	return &node[ID, S]{
		parent:   parent,
		incoming: incoming,
		depth:    depth,
		children: make(map[Elem[S]]*node[ID, S]),
	}
}

func newLeaf[ID comparable, S cmp.Ordered](parent *node[ID, S], incoming Path[ID, S], seqID ID, suffixStart int) *node[ID, S] {
	return &node[ID, S]{
		parent:      parent,
		incoming:    incoming,
		leaf:        true,
		seqID:       seqID,
		suffixStart: suffixStart,
	}
}

// isRoot reports whether n has no incoming edge, i.e. it is the tree
// root (the only internal node allowed zero or one children, spec §3
// invariant 1).
func (n *node[ID, S]) isRoot() bool { return n.parent == nil }

// stringDepth returns n's string depth: the number of symbols from
// root to n. Internal nodes cache this at creation time since their
// edges never change length once built. Leaves never cache it: during
// Ukkonen construction a leaf's incoming edge keeps growing (the
// open-ended "Trick 3" edge), so its depth is always derived from its
// (fixed-depth) parent plus its current edge length.
func (n *node[ID, S]) stringDepth() int {
	if n.leaf {
		return n.parent.depth + n.incoming.Len()
	}
	return n.depth
}

// firstSym returns the key n is reachable under from its parent's
// children map.
func (n *node[ID, S]) firstSym() Elem[S] { return n.incoming.At(0) }

// addChild installs child, keyed by the first element of its incoming
// edge (spec §4.2 add_child).
func (n *node[ID, S]) addChild(child *node[ID, S]) {
	n.children[child.firstSym()] = child
}

// child looks up the child reached by descending on sym.
func (n *node[ID, S]) child(sym Elem[S]) (*node[ID, S], bool) {
	c, ok := n.children[sym]
	return c, ok
}

// splitEdge materializes a new internal node offsetLen symbols into
// child's incoming edge (spec §4.2 split_edge). The new node adopts
// child as its own child; n's children map is rewired to point at the
// new node under the edge's original first symbol. The new node's
// suffix link starts unset; the caller is responsible for it.
func (n *node[ID, S]) splitEdge(child *node[ID, S], offsetLen int) *node[ID, S] {
	mid := newInternal[ID, S](n, child.incoming.Slice(0, offsetLen), n.depth+offsetLen)
	child.incoming = child.incoming.Slice(offsetLen, child.incoming.Len())
	child.parent = mid
	mid.addChild(child)
	n.addChild(mid)
	return mid
}

// matchResult describes where descending a path from a node stopped:
// either exactly at a node boundary (edgeChild == nil), or partway
// into an edge. Mirrors spec §4.2's
// "(matched_node, mismatch_offset, mismatched_child_or_None)".
type matchResult[ID comparable, S cmp.Ordered] struct {
	node          *node[ID, S]
	edgeChild     *node[ID, S]
	matchedInEdge int
	consumed      int
}

// full reports whether descend consumed the whole of the path asked
// for.
func (m matchResult[ID, S]) full(p Path[ID, S]) bool { return m.consumed == p.Len() }

// locus returns the node at the end of the matched path, or nil if the
// match stopped mid-edge (no node exists there).
func (m matchResult[ID, S]) locus() *node[ID, S] {
	if m.edgeChild != nil {
		return nil
	}
	return m.node
}

// target returns the node whose subtree is "everything below the
// matched point", whether or not that point landed exactly on a node
// boundary. Used by find_all/find_id, which care about the matched
// region's descendants, not whether the match happened to end at a
// node.
func (m matchResult[ID, S]) target() *node[ID, S] {
	if m.edgeChild != nil {
		return m.edgeChild
	}
	return m.node
}

// descend walks from n, matching symbols of p one at a time, following
// edges keyed by first symbol and comparing the remainder of each edge
// content-wise. It stops at the first mismatch or once p is exhausted.
func (n *node[ID, S]) descend(p Path[ID, S]) matchResult[ID, S] {
	current := n
	i := 0
	for i < p.Len() {
		c, ok := current.child(p.At(i))
		if !ok {
			return matchResult[ID, S]{node: current, consumed: i}
		}
		edgeLen := c.incoming.Len()
		j := 0
		for j < edgeLen && i < p.Len() && c.incoming.At(j) == p.At(i) {
			j++
			i++
		}
		if j < edgeLen {
			return matchResult[ID, S]{node: current, edgeChild: c, matchedInEdge: j, consumed: i}
		}
		current = c
	}
	return matchResult[ID, S]{node: current, consumed: i}
}

// sortedChildKeys returns n's children keys in ascending order, used
// for deterministic traversal (canonical form for equivalence tests,
// dot output, and the common_substrings tie-break, spec §9).
func (n *node[ID, S]) sortedChildKeys() []Elem[S] {
	keys := make([]Elem[S], 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Elem[S]) int {
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	return keys
}

// preOrder calls visit for n and every descendant, in a deterministic
// (first-symbol-ascending) pre-order. Order within children is only
// guaranteed deterministic, never guaranteed to match any particular
// builder's internal creation order (spec §4.2).
func (n *node[ID, S]) preOrder(visit func(*node[ID, S])) {
	visit(n)
	for _, k := range n.sortedChildKeys() {
		n.children[k].preOrder(visit)
	}
}

// leavesBelow calls visit for every leaf in n's subtree (n included if
// n is itself a leaf).
func (n *node[ID, S]) leavesBelow(visit func(*node[ID, S])) {
	n.preOrder(func(v *node[ID, S]) {
		if v.leaf {
			visit(v)
		}
	})
}
