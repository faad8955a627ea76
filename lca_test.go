package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_LCA(t *testing.T) {
	for _, kind := range allBuilders {
		t.Run(builderLabel(kind), func(t *testing.T) {
			tree := New[string, byte](WithBuilder(kind))
			require.NoError(t, tree.Add("A", []byte("xabxac")))
			require.NoError(t, tree.Add("B", []byte("awyawxawxz")))

			// The suffixes "xabxac$" and "xac$" (A, offsets 0 and 3) share
			// the longest common prefix "xa" among A's suffixes beginning
			// with 'x': their LCA should spell exactly that prefix.
			p, err := tree.LCA("A", 0, "A", 3)
			require.NoError(t, err)
			assert.Equal(t, "xa", textOf(p))

			// A leaf is its own LCA with itself.
			p, err = tree.LCA("A", 0, "A", 0)
			require.NoError(t, err)
			assert.Equal(t, "120 97 98 120 97 99 $", p.String())

			_, err = tree.LCA("A", 0, "Z", 0)
			require.ErrorIs(t, err, ErrUnknownID)

			_, err = tree.LCA("A", 999, "B", 0)
			require.ErrorIs(t, err, ErrInvalidOffset)
		})
	}
}
