package suffixtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElem_IsSentinel(t *testing.T) {
	e := elemOf('x')
	assert.False(t, e.IsSentinel())
	assert.Equal(t, 'x', e.Symbol())

	s := sentinelElem[rune](3)
	assert.True(t, s.IsSentinel())
}

func TestElem_Less(t *testing.T) {
	a := elemOf('a')
	b := elemOf('b')
	s0 := sentinelElem[rune](0)
	s1 := sentinelElem[rune](1)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, a.Less(s0))
	assert.False(t, s0.Less(a))
	assert.True(t, s0.Less(s1))
}

func TestElem_String(t *testing.T) {
	assert.Equal(t, "120", elemOf('x').String())
	assert.Equal(t, "$", sentinelElem[rune](0).String())
	assert.Equal(t, "$2", sentinelElem[rune](2).String())
}

func TestElem_Equality(t *testing.T) {
	// Distinct sequences' sentinels must never compare equal to each
	// other or to any plain symbol (spec §3 invariant 6).
	assert.NotEqual(t, sentinelElem[rune](0), sentinelElem[rune](1))
	assert.NotEqual(t, sentinelElem[rune](0), elemOf(rune(0)))
}
