package suffixtree

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/polvolabs/gensuffixtree/internal/iterutil"
)

// Tree is the public façade over a generalized suffix tree: a single
// structure whose root-to-leaf paths spell every suffix of every
// sequence added to it (spec §4.3). The construction strategy is
// fixed at creation time via [WithBuilder]; it cannot be changed
// afterwards.
type Tree[ID comparable, S cmp.Ordered] struct {
	cfg     config
	root    *node[ID, S]
	aux     *node[ID, S] // virtual; only ever a suffix-link target, never traversed as a tree node
	builder Builder[ID, S]

	sequences  map[ID]*sequence[ID, S]
	order      []ID
	nextSerial int

	lca       *lcaIndex[ID, S]
	leafByPos map[ID]map[int]*node[ID, S]
}

// New creates an empty Tree configured by opts. The default
// construction strategy is [BuilderMcCreight].
func New[ID comparable, S cmp.Ordered](opts ...Option) *Tree[ID, S] {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	root := newInternal[ID, S](nil, Path[ID, S]{}, 0)
	aux := newInternal[ID, S](nil, Path[ID, S]{}, -1)
	if cfg.builder != BuilderNaive {
		// Root's suffix link points to aux so that linear-time builders
		// never have to special-case the shortest suffixes (spec §3
		// "Tree.aux"). Naive maintains no suffix links at all and may
		// omit aux entirely (spec §9 open question).
		root.suffixLink = aux
	}

	return &Tree[ID, S]{
		cfg:       *cfg,
		root:      root,
		aux:       aux,
		builder:   newBuilder[ID, S](cfg.builder),
		sequences: make(map[ID]*sequence[ID, S]),
	}
}

// FromMapping builds a Tree from every entry of m in one call. Because
// m's keys are already unique by construction, [ErrDuplicateID] can
// never occur; an empty-sequence value still surfaces
// [ErrEmptySequence].
func FromMapping[ID comparable, S cmp.Ordered](m map[ID][]S, opts ...Option) (*Tree[ID, S], error) {
	t := New[ID, S](opts...)
	for id, symbols := range m {
		if err := t.Add(id, symbols); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add inserts every suffix of symbols, labeled id, into the tree.
func (t *Tree[ID, S]) Add(id ID, symbols []S) error {
	if _, exists := t.sequences[id]; exists {
		return fmt.Errorf("%w: %v", ErrDuplicateID, id)
	}
	if len(symbols) == 0 {
		return fmt.Errorf("%w: %v", ErrEmptySequence, id)
	}

	start := time.Now()
	seq := newSequence[ID, S](id, symbols, t.nextSerial)
	t.nextSerial++
	t.sequences[id] = seq
	t.order = append(t.order, id)

	t.builder.build(t, seq)
	t.lca = nil
	t.leafByPos = nil

	if t.cfg.debugInvariants {
		CheckInvariants[ID, S](t)
	}

	if t.cfg.logger != nil {
		t.cfg.logger.LogAttrs(context.Background(), slog.LevelInfo, "sequence added",
			slog.String(LogBuilderKey, builderName(t.cfg.builder)),
			slog.Any(LogSequenceIDKey, id),
			slog.Int(LogNodesKey, t.nodeCount()),
			slog.Duration(LogDurationKey, time.Since(start)),
		)
	}

	return nil
}

// Find reports whether needle occurs as a substring of any stored
// sequence (spec §4.3 find).
func (t *Tree[ID, S]) Find(needle []S) bool {
	p := newPath[ID, S](newLiteralSequence[ID, S](needle), 0, len(needle))
	return t.root.descend(p).full(p)
}

// FindID reports whether needle occurs within the sequence labeled
// id specifically. Returns [ErrUnknownID] if id was never added.
func (t *Tree[ID, S]) FindID(id ID, needle []S) (bool, error) {
	if _, ok := t.sequences[id]; !ok {
		return false, fmt.Errorf("%w: %v", ErrUnknownID, id)
	}

	p := newPath[ID, S](newLiteralSequence[ID, S](needle), 0, len(needle))
	m := t.root.descend(p)
	if !m.full(p) {
		return false, nil
	}

	found := false
	m.target().leavesBelow(func(n *node[ID, S]) {
		if n.seqID == id {
			found = true
		}
	})
	return found, nil
}

// FindAll yields, once each, every (sequence_id, full_suffix_path)
// pair whose suffix begins with needle (spec §4.3 find_all). The
// result is finite; its order is unspecified.
func (t *Tree[ID, S]) FindAll(needle []S) iter.Seq2[ID, Path[ID, S]] {
	p := newPath[ID, S](newLiteralSequence[ID, S](needle), 0, len(needle))
	m := t.root.descend(p)
	if !m.full(p) {
		return func(yield func(ID, Path[ID, S]) bool) {}
	}
	return findAllPairs[ID, S](m.target(), t.sequences)
}

// FindAllIDs is [Tree.FindAll] projected onto just the matching
// sequence ids, discarding the matched paths. Duplicates are kept: a
// sequence occurring twice in the result has the needle as a
// substring starting at two different offsets.
func (t *Tree[ID, S]) FindAllIDs(needle []S) iter.Seq[ID] {
	return iterutil.Left(t.FindAll(needle))
}

// FindAllPaths is [Tree.FindAll] projected onto just the matched
// paths, discarding which sequence each one belongs to.
func (t *Tree[ID, S]) FindAllPaths(needle []S) iter.Seq[Path[ID, S]] {
	return iterutil.Right(t.FindAll(needle))
}

// CountMatches reports how many occurrences of needle exist across
// every stored sequence. It counts the pairs [Tree.FindAll] yields,
// which are still built internally.
func (t *Tree[ID, S]) CountMatches(needle []S) int {
	return iterutil.Len2(t.FindAll(needle))
}

// CommonSubstring is one entry of [Tree.CommonSubstrings]'s result:
// the longest substring occurring in at least K distinct sequences.
type CommonSubstring[ID comparable, S cmp.Ordered] struct {
	K      int
	Length int
	Path   Path[ID, S]
}

// CommonSubstrings yields, for every k from minK (default 2) up to
// the number of stored sequences, the longest substring occurring in
// at least k of them, one entry per k (spec §4.3 common_substrings).
// Ties on string depth go to the lexicographically greatest substring:
// nodes are visited in first-symbol-ascending order and a later node
// of equal depth replaces an earlier one.
func (t *Tree[ID, S]) CommonSubstrings(minK ...int) iter.Seq[CommonSubstring[ID, S]] {
	k0 := 2
	if len(minK) > 0 {
		k0 = minK[0]
	}
	kMax := len(t.sequences)
	a := analyze(t)

	var results []CommonSubstring[ID, S]
	for k := k0; k <= kMax; k++ {
		var best *node[ID, S]
		t.root.preOrder(func(n *node[ID, S]) {
			if n.leaf || n.isRoot() || a.c[n] < k {
				return
			}
			if best == nil || n.depth >= best.depth {
				best = n
			}
		})
		if best != nil {
			results = append(results, CommonSubstring[ID, S]{K: k, Length: best.depth, Path: representativePath(t, best)})
		}
	}
	return iterutil.SeqOf(results...)
}

// MaximalRepeat is one entry of [Tree.MaximalRepeats]'s result: a
// substring occurring at least twice, not uniformly extensible to the
// left (spec §4.3 maximal_repeats).
type MaximalRepeat[ID comparable, S cmp.Ordered] struct {
	C    int
	Path Path[ID, S]
}

// MaximalRepeats yields one entry per left-diverse internal node.
func (t *Tree[ID, S]) MaximalRepeats() iter.Seq[MaximalRepeat[ID, S]] {
	a := analyze(t)
	var results []MaximalRepeat[ID, S]
	t.root.preOrder(func(n *node[ID, S]) {
		if n.leaf || n.isRoot() || !a.leftDiverse[n] {
			return
		}
		results = append(results, MaximalRepeat[ID, S]{C: a.c[n], Path: representativePath(t, n)})
	})
	return iterutil.SeqOf(results...)
}

// LCA returns the representative path of the lowest common ancestor of
// the leaves for (idA, startA) and (idB, startB) — the longest common
// extension of those two suffixes (spec §4.7; exposed per
// SPEC_FULL.md §D since §6's table omits a client-facing LCA
// signature despite LCA being a first-class core component).
func (t *Tree[ID, S]) LCA(idA ID, startA int, idB ID, startB int) (Path[ID, S], error) {
	la, err := t.leafAt(idA, startA)
	if err != nil {
		return Path[ID, S]{}, err
	}
	lb, err := t.leafAt(idB, startB)
	if err != nil {
		return Path[ID, S]{}, err
	}
	anc := t.lca.lca(la, lb)
	return representativePath(t, anc), nil
}

// Len returns the number of sequences stored in the tree.
func (t *Tree[ID, S]) Len() int { return len(t.sequences) }

// SequenceIDs returns every stored sequence id, in the order it was
// added.
func (t *Tree[ID, S]) SequenceIDs() []ID {
	out := make([]ID, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Tree[ID, S]) nodeCount() int {
	n := 0
	t.root.preOrder(func(*node[ID, S]) { n++ })
	return n
}

// leafAt resolves (id, start) to the leaf representing that suffix,
// preparing the LCA/leaf index lazily on first use and whenever Add
// has invalidated it (spec §4.7 "Preparation is performed once,
// lazily").
func (t *Tree[ID, S]) leafAt(id ID, start int) (*node[ID, S], error) {
	if t.lca == nil {
		t.prepare()
	}
	m, ok := t.leafByPos[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownID, id)
	}
	n, ok := m[start]
	if !ok {
		return nil, fmt.Errorf("%w: (%v,%d)", ErrInvalidOffset, id, start)
	}
	return n, nil
}

func (t *Tree[ID, S]) prepare() {
	t.lca = buildLCAIndex[ID, S](t.root)
	t.leafByPos = make(map[ID]map[int]*node[ID, S])
	t.root.leavesBelow(func(n *node[ID, S]) {
		m := t.leafByPos[n.seqID]
		if m == nil {
			m = make(map[int]*node[ID, S])
			t.leafByPos[n.seqID] = m
		}
		m[n.suffixStart] = n
	})
}

// representativePath returns one real occurrence of the string n
// represents, cut from whichever stored sequence happens to own the
// first leaf found below n (spec §4.3: "one representative path").
func representativePath[ID comparable, S cmp.Ordered](t *Tree[ID, S], n *node[ID, S]) Path[ID, S] {
	if n.leaf {
		return t.sequences[n.seqID].suffix(n.suffixStart)
	}
	var leaf *node[ID, S]
	n.leavesBelow(func(l *node[ID, S]) {
		if leaf == nil {
			leaf = l
		}
	})
	return t.sequences[leaf.seqID].suffix(leaf.suffixStart).Slice(0, n.depth)
}
