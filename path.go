package suffixtree

import "cmp"

// end is the exclusive bound of a [Path]. A concrete end is a fixed
// integer; a live end tracks a growing phase counter owned by a
// builder (Ukkonen's "Trick 3") so that every open leaf edge advances
// for free when the counter is incremented.
type end interface {
	value() int
}

type fixedEnd int

func (e fixedEnd) value() int { return int(e) }

// liveEnd is shared by every open leaf created while one sequence is
// built on-line. Freezing a sequence snapshots it into a
// fixedEnd on every leaf that still references it.
type liveEnd struct {
	phase int
}

func (e *liveEnd) value() int { return e.phase }

// Path is an immutable, half-open view `[start, end)` over one stored
// sequence's augmented alphabet (client symbols plus the sequence's
// sentinel). It never copies elements: it carries a reference to the
// owning sequence plus two indices.
type Path[ID comparable, S cmp.Ordered] struct {
	seq   *sequence[ID, S]
	start int
	e     end
}

func newPath[ID comparable, S cmp.Ordered](seq *sequence[ID, S], start, stop int) Path[ID, S] {
	return Path[ID, S]{seq: seq, start: start, e: fixedEnd(stop)}
}

func newOpenPath[ID comparable, S cmp.Ordered](seq *sequence[ID, S], start int, e *liveEnd) Path[ID, S] {
	return Path[ID, S]{seq: seq, start: start, e: e}
}

// SequenceID returns the identifier of the sequence this path was cut
// from.
func (p Path[ID, S]) SequenceID() ID { return p.seq.id }

// Start returns the zero-based offset of the path within its owning
// sequence, sentinel included in the indexing space.
func (p Path[ID, S]) Start() int { return p.start }

// End returns the exclusive offset of the path within its owning
// sequence.
func (p Path[ID, S]) End() int { return p.e.value() }

// Len returns the number of elements the path spans.
func (p Path[ID, S]) Len() int { return p.End() - p.start }

// At returns the element at offset i within the path.
func (p Path[ID, S]) At(i int) Elem[S] {
	return p.seq.at(p.start + i)
}

// Slice returns the sub-path `[a, b)` of p, using p-relative offsets.
// When b reaches p's current length, the sub-path keeps p's own end
// (rather than snapshotting it into a fixed bound): this is what lets
// [node.splitEdge] cut an open Ukkonen leaf edge in two without
// freezing the surviving, still-growing half (spec §4.1 "Open-ended
// leaf edges").
func (p Path[ID, S]) Slice(a, b int) Path[ID, S] {
	if b == p.Len() {
		return Path[ID, S]{seq: p.seq, start: p.start + a, e: p.e}
	}
	return newPath[ID, S](p.seq, p.start+a, p.start+b)
}

// Elems materializes the path's content as a plain slice. Used by
// callers that need the substring itself (query results, dot output);
// never used internally on a hot path.
func (p Path[ID, S]) Elems() []Elem[S] {
	out := make([]Elem[S], p.Len())
	for i := range out {
		out[i] = p.At(i)
	}
	return out
}

// Equal reports whether two paths spell the same elements, regardless
// of which sequence or offsets they were cut from.
func (p Path[ID, S]) Equal(other Path[ID, S]) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i := 0; i < p.Len(); i++ {
		if p.At(i) != other.At(i) {
			return false
		}
	}
	return true
}

// Less compares two paths lexicographically, element by element. Used
// to break ties in common_substrings and for canonical traversal in
// equivalence tests (spec §9 open question).
func (p Path[ID, S]) Less(other Path[ID, S]) bool {
	n := p.Len()
	if other.Len() < n {
		n = other.Len()
	}
	for i := 0; i < n; i++ {
		a, b := p.At(i), other.At(i)
		if a != b {
			return a.Less(b)
		}
	}
	return p.Len() < other.Len()
}

// String renders the path's elements space-separated, the format used
// by dot-file edge labels.
func (p Path[ID, S]) String() string {
	s := ""
	for i := 0; i < p.Len(); i++ {
		if i > 0 {
			s += " "
		}
		s += p.At(i).String()
	}
	return s
}
