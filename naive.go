package suffixtree

import "cmp"

// naiveBuilder inserts every suffix of a sequence by descending from
// the root each time and splitting whatever edge the match stops on
// (spec §4.4). It maintains no suffix links and is Θ(n²); it exists
// purely as an independent oracle the linear-time builders can be
// checked against (spec §8 "Equivalence property").
type naiveBuilder[ID comparable, S cmp.Ordered] struct{}

func (b *naiveBuilder[ID, S]) build(t *Tree[ID, S], seq *sequence[ID, S]) {
	n := seq.len()
	for i := 0; i < n; i++ {
		suffix := seq.suffix(i)
		m := t.root.descend(suffix)

		switch {
		case m.edgeChild == nil && m.full(suffix):
			// The whole suffix already exists as a path to m.node. Under
			// invariant 5 this can only happen for a duplicate sentinel,
			// which Add already rejects by construction (each sequence's
			// sentinel is unique), so this suffix always has a genuinely
			// new remainder to attach below.
			panic("suffixtree: naive builder found no remainder to attach")
		case m.edgeChild == nil:
			// Stopped exactly at a node with suffix symbols left over:
			// attach a fresh leaf for the remainder.
			parent := m.node
			remainder := suffix.Slice(m.consumed, suffix.Len())
			parent.addChild(newLeaf[ID, S](parent, remainder, seq.id, i))
		default:
			// Stopped mid-edge: split it, then attach the remainder (which
			// may be empty only if the suffix ended exactly at the split,
			// impossible here since every suffix carries a unique trailing
			// sentinel not seen before).
			mid := m.node.splitEdge(m.edgeChild, m.matchedInEdge)
			remainder := suffix.Slice(m.consumed, suffix.Len())
			mid.addChild(newLeaf[ID, S](mid, remainder, seq.id, i))
		}
	}
}
