package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInvariants_ValidTreesNeverPanic(t *testing.T) {
	for _, kind := range allBuilders {
		t.Run(builderLabel(kind), func(t *testing.T) {
			tree := New[string, byte](WithBuilder(kind))
			require.NoError(t, tree.Add("A", []byte("sandollar")))
			require.NoError(t, tree.Add("B", []byte("sandlot")))
			require.NoError(t, tree.Add("C", []byte("handler")))

			assert.NotPanics(t, func() {
				CheckInvariants[string, byte](tree)
			})
		})
	}
}

func TestCheckInvariants_CatchesBrokenChildKey(t *testing.T) {
	tree := New[string, byte]()
	require.NoError(t, tree.Add("A", []byte("banana")))

	// Corrupt a children-map entry so its key no longer matches the
	// child's own first symbol (invariant 2).
	for sym, c := range tree.root.children {
		delete(tree.root.children, sym)
		tree.root.children[elemOf(byte('!'))] = c
		break
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		ierr, ok := r.(*InvariantError)
		require.True(t, ok, "panic value should be *InvariantError, got %T", r)
		assert.Equal(t, "2", ierr.Invariant)
	}()
	CheckInvariants[string, byte](tree)
}

func TestCheckInvariants_CatchesMissingLeaf(t *testing.T) {
	tree := New[string, byte]()
	require.NoError(t, tree.Add("A", []byte("ab")))

	// Drop one of the root's children so a suffix no longer has a leaf
	// (invariant 5, leaf coverage).
	for sym := range tree.root.children {
		delete(tree.root.children, sym)
		break
	}

	assert.Panics(t, func() {
		CheckInvariants[string, byte](tree)
	})
}
