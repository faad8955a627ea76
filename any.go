package suffixtree

import (
	"fmt"
	"strings"
)

// Any is a string in its underlying representation, which is what lets
// it satisfy cmp.Ordered and so be used as the symbol type of a
// [Tree][ID, Any] — Tree requires an ordered symbol, and no single
// built-in Go type spans bool, int, strings, sets and tuples the way
// spec §8 scenario 5's heterogeneous sequences do. NewAny manufactures
// a total order over arbitrary comparable Go values by encoding each
// one as "<type>\x00<representation>": the NUL byte can't appear in a
// Go type name, so string comparison sorts first by type (grouping all
// bools, then all ints, and so on) and within a type by the value's
// %#v rendering. Two values of different concrete types are therefore
// never equal even if their renderings happen to coincide.
type Any string

// NewAny wraps v for storage in a Tree[ID, Any].
func NewAny(v any) Any {
	return Any(fmt.Sprintf("%T\x00%#v", v, v))
}

// String renders the value's representation, without the internal
// type-tag prefix.
func (a Any) String() string {
	_, repr, found := strings.Cut(string(a), "\x00")
	if !found {
		return string(a)
	}
	return repr
}
