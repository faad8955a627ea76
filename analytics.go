package suffixtree

import "cmp"

// precede records the symbol occurring immediately before an
// occurrence a leaf represents, or a distinguished "beginning of
// sequence" marker for suffix 0 (spec §4.2 compute_left_diverse).
type precede[S cmp.Ordered] struct {
	bos bool
	v   Elem[S]
}

// analysis bundles the two bottom-up, once-per-call annotations the
// generalized queries need: C(v), the count of distinct sequence ids
// among v's leaves (spec §4.2 compute_C), and left-diversity (spec
// §4.2 compute_left_diverse). Both are computed in a single post-order
// pass, keyed by node identity; they are not cached across calls since
// a mutating Add invalidates them anyway.
type analysis[ID comparable, S cmp.Ordered] struct {
	c           map[*node[ID, S]]int
	leftDiverse map[*node[ID, S]]bool
}

func analyze[ID comparable, S cmp.Ordered](t *Tree[ID, S]) analysis[ID, S] {
	ids := make(map[*node[ID, S]]map[ID]struct{})
	precedes := make(map[*node[ID, S]]map[precede[S]]struct{})

	var walk func(n *node[ID, S])
	walk = func(n *node[ID, S]) {
		if n.leaf {
			idSet := map[ID]struct{}{n.seqID: {}}
			pr := precede[S]{bos: true}
			if n.suffixStart > 0 {
				pr = precede[S]{v: t.sequences[n.seqID].at(n.suffixStart - 1)}
			}
			ids[n] = idSet
			precedes[n] = map[precede[S]]struct{}{pr: {}}
			return
		}

		idSet := make(map[ID]struct{})
		preSet := make(map[precede[S]]struct{})
		for _, k := range n.sortedChildKeys() {
			c := n.children[k]
			walk(c)
			for id := range ids[c] {
				idSet[id] = struct{}{}
			}
			for p := range precedes[c] {
				preSet[p] = struct{}{}
			}
		}
		ids[n] = idSet
		precedes[n] = preSet
	}
	walk(t.root)

	out := analysis[ID, S]{
		c:           make(map[*node[ID, S]]int, len(ids)),
		leftDiverse: make(map[*node[ID, S]]bool, len(precedes)),
	}
	for n, set := range ids {
		out.c[n] = len(set)
	}
	for n, set := range precedes {
		out.leftDiverse[n] = len(set) > 1
	}
	return out
}
