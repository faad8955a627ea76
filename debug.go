package suffixtree

import (
	"cmp"
	"fmt"
	"slices"
)

// CheckInvariants walks t and panics with an [InvariantError] the
// first time it finds a structural invariant broken: invariants 1-5 of
// spec §3, plus a node count of at most twice the total sequence length
// (sentinels included), which it reports as invariant "6". Sentinel
// uniqueness is not checked here. It is never called automatically
// unless [WithDebugInvariants] is set; callers writing their own tests
// may call it directly.
func CheckInvariants[ID comparable, S cmp.Ordered](t *Tree[ID, S]) {
	totalLen := 0
	for _, seq := range t.sequences {
		totalLen += seq.len()
	}

	nodeCount := 0
	var spell func(n *node[ID, S]) []Elem[S]
	spelled := make(map[*node[ID, S]][]Elem[S])
	spell = func(n *node[ID, S]) []Elem[S] {
		if s, ok := spelled[n]; ok {
			return s
		}
		var s []Elem[S]
		if !n.isRoot() {
			s = append(slices.Clone(spell(n.parent)), n.incoming.Elems()...)
		}
		spelled[n] = s
		return s
	}

	leavesSeen := make(map[ID]map[int]bool)

	var walk func(n *node[ID, S])
	walk = func(n *node[ID, S]) {
		nodeCount++

		if n.leaf {
			full := spell(n)
			seq, ok := t.sequences[n.seqID]
			if !ok {
				panicInvariant("5", fmt.Sprintf("leaf references unknown sequence id %v", n.seqID))
			}
			want := seq.suffix(n.suffixStart)
			if len(full) != want.Len() {
				panicInvariant("5", fmt.Sprintf("leaf for (%v,%d) spells %d symbols, want %d", n.seqID, n.suffixStart, len(full), want.Len()))
			}
			for i, e := range full {
				if e != want.At(i) {
					panicInvariant("5", fmt.Sprintf("leaf for (%v,%d) mismatches sequence content at offset %d", n.seqID, n.suffixStart, i))
				}
			}
			if leavesSeen[n.seqID] == nil {
				leavesSeen[n.seqID] = make(map[int]bool)
			}
			if leavesSeen[n.seqID][n.suffixStart] {
				panicInvariant("5", fmt.Sprintf("duplicate leaf for (%v,%d)", n.seqID, n.suffixStart))
			}
			leavesSeen[n.seqID][n.suffixStart] = true
			return
		}

		if !n.isRoot() && len(n.children) < 2 {
			panicInvariant("1", fmt.Sprintf("internal node at depth %d has %d children", n.depth, len(n.children)))
		}

		for sym, c := range n.children {
			if c.firstSym() != sym {
				panicInvariant("2", fmt.Sprintf("children map key %v does not match child's first symbol %v", sym, c.firstSym()))
			}
			if c.incoming.Len() < 1 {
				panicInvariant("3", "edge with zero length")
			}
			if c.stringDepth() != n.depth+c.incoming.Len() {
				panicInvariant("3", fmt.Sprintf("depth mismatch: got %d, want %d", c.stringDepth(), n.depth+c.incoming.Len()))
			}
		}

		if !n.isRoot() && n.suffixLink != nil && n.depth >= 1 {
			got := spell(n.suffixLink)
			want := spell(n)[1:]
			if len(got) != len(want) {
				panicInvariant("4", fmt.Sprintf("suffix link spells %d symbols, want %d", len(got), len(want)))
			}
			for i := range want {
				if got[i] != want[i] {
					panicInvariant("4", fmt.Sprintf("suffix link content mismatch at offset %d", i))
				}
			}
		}

		for _, k := range n.sortedChildKeys() {
			walk(n.children[k])
		}
	}
	walk(t.root)

	if nodeCount > 2*totalLen {
		panicInvariant("6", fmt.Sprintf("node count %d exceeds 2*%d", nodeCount, totalLen))
	}

	for id, seq := range t.sequences {
		for i := 0; i < seq.len(); i++ {
			if !leavesSeen[id][i] {
				panicInvariant("5", fmt.Sprintf("no leaf for (%v,%d)", id, i))
			}
		}
	}
}

func panicInvariant(number, detail string) {
	panic(&InvariantError{Invariant: number, Detail: detail})
}
