package suffixtree

import "cmp"

// Builder is the construction strategy (spec §4, "strategy"): given a
// tree already holding zero or more sequences, insert every suffix of
// one newly added, sentinel-terminated sequence. Builders share no
// state with one another; a [Tree] commits to one Builder at creation
// time (spec §4.3 "switching builders mid-lifetime is not supported").
type Builder[ID comparable, S cmp.Ordered] interface {
	build(t *Tree[ID, S], seq *sequence[ID, S])
}

// BuilderKind selects a [Builder] at [New] time.
type BuilderKind int

const (
	// BuilderMcCreight is the default: linear-time, off-line, suffix
	// links maintained explicitly (spec §4.5).
	BuilderMcCreight BuilderKind = iota
	// BuilderUkkonen is linear-time and on-line (spec §4.6).
	BuilderUkkonen
	// BuilderNaive is the quadratic oracle builder (spec §4.4),
	// present purely for correctness testing.
	BuilderNaive
)

func newBuilder[ID comparable, S cmp.Ordered](kind BuilderKind) Builder[ID, S] {
	switch kind {
	case BuilderUkkonen:
		return &ukkonenBuilder[ID, S]{}
	case BuilderNaive:
		return &naiveBuilder[ID, S]{}
	default:
		return &mcCreightBuilder[ID, S]{}
	}
}
