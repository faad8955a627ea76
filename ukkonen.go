package suffixtree

import "cmp"

// ukkonenBuilder inserts one sequence on-line: phase i feeds symbol
// i, extending every open leaf for free (Trick 3) and performing
// `remainder` explicit extensions tracked via the active point (spec
// §4.6).
type ukkonenBuilder[ID comparable, S cmp.Ordered] struct{}

func (b *ukkonenBuilder[ID, S]) build(t *Tree[ID, S], seq *sequence[ID, S]) {
	root := t.root
	growing := &liveEnd{}

	activeNode := root
	activeLength := 0
	remainder := 0
	var pendingLink *node[ID, S] // internal node created earlier this phase awaiting a suffix link

	n := seq.len()
	for i := 0; i < n; i++ {
		growing.phase = i + 1 // Trick 3: every open leaf edge now reaches i+1
		remainder++
		pendingLink = nil

		for remainder > 0 {
			// edgeSym identifies which edge out of activeNode the active
			// point sits on. When activeLength is 0 this is simply the
			// symbol being inserted this phase; the same formula
			// (i - activeLength) covers both cases because activeLength
			// counts exactly how far back along the matched suffix the
			// active point's edge begins.
			edgeSym := seq.at(i - activeLength)
			child, ok := activeNode.child(edgeSym)

			if !ok {
				// Rule 2 (no edge): attach a fresh open leaf straight off
				// activeNode.
				leaf := newLeaf[ID, S](activeNode, newOpenPath[ID, S](seq, i, growing), seq.id, i-activeNode.depth)
				activeNode.addChild(leaf)
				if pendingLink != nil {
					pendingLink.suffixLink = activeNode
					pendingLink = nil
				}
			} else if activeLength >= child.incoming.Len() {
				// Walk down: the active point has already crossed this
				// whole edge (canonicalization). Re-test from the top
				// without consuming a unit of remainder.
				activeLength -= child.incoming.Len()
				activeNode = child
				continue
			} else if child.incoming.At(activeLength) == seq.at(i) {
				// Rule 3 (Trick 2): the extension is already implicit.
				// Every shorter pending suffix is implicit too, so the
				// whole phase ends here without touching remainder.
				activeLength++
				if pendingLink != nil {
					pendingLink.suffixLink = activeNode
					pendingLink = nil
				}
				break
			} else {
				// Rule 2 (split): the active edge diverges from the new
				// symbol; split it and attach a fresh open leaf.
				mid := activeNode.splitEdge(child, activeLength)
				leaf := newLeaf[ID, S](mid, newOpenPath[ID, S](seq, i, growing), seq.id, i-mid.depth)
				mid.addChild(leaf)
				if pendingLink != nil {
					pendingLink.suffixLink = mid
				}
				pendingLink = mid
			}

			remainder--

			if activeNode == root && activeLength > 0 {
				activeLength--
			} else if activeNode != root {
				if activeNode.suffixLink != nil {
					activeNode = activeNode.suffixLink
				} else {
					activeNode = root
				}
			}
		}
	}

	// Terminal state: freeze every open leaf edge belonging to this
	// sequence by rebinding its end from the live counter to the
	// concrete value it reached (spec §4.6 "Terminal state").
	freezeOpenEdges(t.root, growing, n)
}

// freezeOpenEdges walks the whole tree converting any Path still
// referencing growing into a fixed end at its final value. Only edges
// created during this sequence's construction can reference growing,
// but the walk is over the whole tree since growing is not otherwise
// tracked per node.
func freezeOpenEdges[ID comparable, S cmp.Ordered](n *node[ID, S], growing *liveEnd, final int) {
	if n.incoming.e == growing {
		n.incoming.e = fixedEnd(final)
	}
	for _, c := range n.children {
		freezeOpenEdges(c, growing, final)
	}
}
