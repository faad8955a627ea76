package suffixtree

import (
	"cmp"
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// canonicalForm renders a tree as a string that depends only on its
// structure (edge content, children sorted by first symbol, leaf
// identity) — never on builder-internal details like node creation
// order or suffix-link shape. Two trees built by different strategies
// from the same input must produce identical canonical forms (spec §8
// "Equivalence property").
func canonicalForm[ID comparable, S cmp.Ordered](n *node[ID, S]) string {
	if n.leaf {
		return fmt.Sprintf("L(%v,%d)", n.seqID, n.suffixStart)
	}
	s := "("
	for _, k := range n.sortedChildKeys() {
		c := n.children[k]
		s += c.incoming.String() + ":" + canonicalForm[ID, S](c) + ","
	}
	return s + ")"
}

func buildTree(t *testing.T, kind BuilderKind, seqs map[string]string) *Tree[string, byte] {
	t.Helper()
	tree := New[string, byte](WithBuilder(kind), WithDebugInvariants())
	// Add in id order so every tree numbers the sentinels the same way.
	for _, id := range slices.Sorted(maps.Keys(seqs)) {
		require.NoError(t, tree.Add(id, []byte(seqs[id])))
	}
	return tree
}

func TestEquivalence_FixedInputs(t *testing.T) {
	inputs := []map[string]string{
		{"1": "xabxac"},
		{"A": "xabxac", "B": "awyawxawxz"},
		{"A": "sandollar", "B": "sandlot", "C": "handler", "D": "grand", "E": "pantry"},
		{"A": "banana"},
		{"A": "mississippi"},
	}

	for _, in := range inputs {
		naive := buildTree(t, BuilderNaive, in)
		mcc := buildTree(t, BuilderMcCreight, in)
		ukk := buildTree(t, BuilderUkkonen, in)

		want := canonicalForm[string, byte](naive.root)
		require.Equal(t, want, canonicalForm[string, byte](mcc.root), "mccreight diverges from naive for %v", in)
		require.Equal(t, want, canonicalForm[string, byte](ukk.root), "ukkonen diverges from naive for %v", in)
	}
}

func TestEquivalence_RandomizedFuzz(t *testing.T) {
	fz := fuzz.NewWithSeed(42)
	alphabet := []byte("abc")

	for trial := 0; trial < 30; trial++ {
		var numSeqs int
		fz.Fuzz(&numSeqs)
		numSeqs = 1 + numSeqs%4

		r := rand.New(rand.NewSource(int64(trial) + 1))
		in := make(map[string]string, numSeqs)
		for i := 0; i < numSeqs; i++ {
			n := 1 + r.Intn(12)
			buf := make([]byte, n)
			for j := range buf {
				buf[j] = alphabet[r.Intn(len(alphabet))]
			}
			in[fmt.Sprintf("S%d", i)] = string(buf)
		}

		naive := buildTree(t, BuilderNaive, in)
		mcc := buildTree(t, BuilderMcCreight, in)
		ukk := buildTree(t, BuilderUkkonen, in)

		want := canonicalForm[string, byte](naive.root)
		require.Equal(t, want, canonicalForm[string, byte](mcc.root), "trial %d: mccreight diverges for %v", trial, in)
		require.Equal(t, want, canonicalForm[string, byte](ukk.root), "trial %d: ukkonen diverges for %v", trial, in)
	}
}
