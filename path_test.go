package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_LenAndAt(t *testing.T) {
	seq := newSequence[string, byte]("A", []byte("banana"), 0)
	p := newPath[string, byte](seq, 1, 4)
	require.Equal(t, 3, p.Len())
	assert.Equal(t, elemOf(byte('a')), p.At(0))
	assert.Equal(t, elemOf(byte('n')), p.At(1))
	assert.Equal(t, elemOf(byte('a')), p.At(2))
}

func TestPath_Slice(t *testing.T) {
	seq := newSequence[string, byte]("A", []byte("banana"), 0)
	full := seq.full()

	sub := full.Slice(1, 4)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, 1, sub.Start())

	// Slicing to the current length must preserve the end reference,
	// not snapshot it: this matters when the end is still live.
	open := newOpenPath[string, byte](seq, 1, &liveEnd{phase: 4})
	grown := open.Slice(1, open.Len())
	assert.IsType(t, &liveEnd{}, grown.e)
}

func TestPath_EqualAndLess(t *testing.T) {
	a := newSequence[string, byte]("A", []byte("abc"), 0)
	b := newSequence[string, byte]("B", []byte("abd"), 1)

	pa := a.full().Slice(0, 3)
	pb := b.full().Slice(0, 3)
	assert.False(t, pa.Equal(pb))
	assert.True(t, pa.Less(pb))

	pc := a.full().Slice(0, 2)
	assert.True(t, pc.Less(pa))
}

func TestPath_String(t *testing.T) {
	seq := newSequence[string, byte]("A", []byte("ab"), 0)
	got := seq.full().Slice(0, 2).String()
	assert.Equal(t, "97 98", got)
}
