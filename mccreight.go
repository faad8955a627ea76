package suffixtree

import "cmp"

// mcCreightBuilder inserts suffixes in decreasing order of length,
// maintaining suffix links so that each step after the first locates
// its head in amortized O(1) extra work past the previous step's
// remainder (spec §4.5).
type mcCreightBuilder[ID comparable, S cmp.Ordered] struct{}

func (b *mcCreightBuilder[ID, S]) build(t *Tree[ID, S], seq *sequence[ID, S]) {
	n := seq.len()
	// prevHead holds head_{i-1}; starting it at root makes the i==0
	// iteration take the "slow scan from root" path below uniformly,
	// since head_0 (the head of the empty previous suffix) is root by
	// definition.
	prevHead := t.root

	for i := 0; i < n; i++ {
		d := t.root
		if prevHead != t.root {
			d = b.resolveSuffixLink(t, prevHead)
		}

		// Substep C: scan γ, the part of suf_i past d's string depth,
		// symbol by symbol (these are not known to exist, unlike the
		// rescanned prefix).
		suf := seq.suffix(i)
		remaining := suf.Slice(d.depth, suf.Len())
		m := d.descend(remaining)

		var head *node[ID, S]
		if m.edgeChild == nil {
			head = m.node
		} else {
			head = m.node.splitEdge(m.edgeChild, m.matchedInEdge)
		}

		rest := remaining.Slice(m.consumed, remaining.Len())
		head.addChild(newLeaf[ID, S](head, rest, seq.id, i))

		prevHead = head
	}

	// Completion: resolve whatever suffix link the final step's head
	// left unset (spec §4.5 "Completion").
	if prevHead != t.root && prevHead.suffixLink == nil {
		b.resolveSuffixLink(t, prevHead)
	}
}

// resolveSuffixLink computes and records prevHead.suffixLink (substeps
// A and B of spec §4.5), returning the locus d of α·β it found. It may
// only be called once prevHead.parent's own suffix link is already
// known, which invariant P1 guarantees for any prevHead that is not
// itself the still-unresolved node of the current step.
func (b *mcCreightBuilder[ID, S]) resolveSuffixLink(t *Tree[ID, S], prevHead *node[ID, S]) *node[ID, S] {
	v := prevHead.parent

	var c *node[ID, S]
	var beta Path[ID, S]
	if v == t.root {
		// χα collapses to χ alone (α empty): the contracted locus of the
		// empty string is root itself, and β is prevHead's edge with its
		// first symbol (χ) dropped.
		c = t.root
		beta = prevHead.incoming.Slice(1, prevHead.incoming.Len())
	} else {
		c = v.suffixLink
		beta = prevHead.incoming
	}

	d := rescanByLength(c, beta)
	prevHead.suffixLink = d
	return d
}

// rescanByLength descends from start, following beta's symbols to pick
// which child to take at each node but comparing only edge *lengths*
// against beta's remaining length, never re-verifying symbol content
// (those symbols are guaranteed present already). This length-only
// comparison is what makes the rescan amortized O(1) total across a
// whole sequence's insertion; per-symbol comparison here is the most
// common bug in hand-rolled implementations and must not occur.
func rescanByLength[ID comparable, S cmp.Ordered](start *node[ID, S], beta Path[ID, S]) *node[ID, S] {
	current := start
	offset := 0
	for offset < beta.Len() {
		c, ok := current.child(beta.At(offset))
		if !ok {
			panic("suffixtree: rescan could not find an edge guaranteed by a suffix link")
		}
		edgeLen := c.incoming.Len()
		if offset+edgeLen <= beta.Len() {
			offset += edgeLen
			current = c
			continue
		}
		return current.splitEdge(c, beta.Len()-offset)
	}
	return current
}
