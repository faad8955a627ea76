package suffixtree

import "cmp"

// sequence is one stored, labeled input: the client's symbols plus its
// appended sentinel (spec §3 "Tree.sequences"). newSequence appends the
// single trailing sentinel once, before any builder sees the sequence;
// sequences are never mutated after that.
type sequence[ID comparable, S cmp.Ordered] struct {
	id     ID
	elems  []Elem[S]
	serial int
}

func newSequence[ID comparable, S cmp.Ordered](id ID, symbols []S, serial int) *sequence[ID, S] {
	elems := make([]Elem[S], len(symbols)+1)
	for i, s := range symbols {
		elems[i] = elemOf(s)
	}
	elems[len(symbols)] = sentinelElem[S](serial)
	return &sequence[ID, S]{id: id, elems: elems, serial: serial}
}

// at returns the element at offset i, including the offset one past
// the client's data (the sentinel).
func (s *sequence[ID, S]) at(i int) Elem[S] {
	return s.elems[i]
}

// len returns the sequence length including the appended sentinel.
func (s *sequence[ID, S]) len() int { return len(s.elems) }

// full returns the whole-sequence path, sentinel included.
func (s *sequence[ID, S]) full() Path[ID, S] {
	return newPath[ID, S](s, 0, len(s.elems))
}

// suffix returns the path of the suffix starting at offset i.
func (s *sequence[ID, S]) suffix(i int) Path[ID, S] {
	return newPath[ID, S](s, i, len(s.elems))
}

// newLiteralSequence wraps a caller-supplied needle for query
// operations (Find, FindID, FindAll). Unlike a stored sequence it
// carries no appended sentinel: a query needle is never itself
// inserted into the tree, only matched against it.
func newLiteralSequence[ID comparable, S cmp.Ordered](symbols []S) *sequence[ID, S] {
	elems := make([]Elem[S], len(symbols))
	for i, s := range symbols {
		elems[i] = elemOf(s)
	}
	return &sequence[ID, S]{elems: elems}
}
