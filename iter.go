package suffixtree

import (
	"cmp"
	"iter"
	"slices"

	"github.com/polvolabs/gensuffixtree/internal/iterutil"
)

// seq2Of adapts a materialized slice of pairs into an [iter.Seq2],
// following the same yield-and-check-cancellation shape
// internal/iterutil's own constructors (SeqOf, Map) use. The spec's
// iterator semantics (§9) only require that draining not be forced
// before further tree operations; nothing here actually defers
// computation, since the underlying tree walk already has to finish
// before results can be handed out; what's preserved is that callers
// may break out of a range loop early without materializing the rest.
func seq2Of[K, V any](pairs []struct {
	K K
	V V
}) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.K, p.V) {
				return
			}
		}
	}
}

// findAllPairs walks the leaves under matchNode and returns, for each,
// the full suffix path it represents (spec §4.3 find_all).
func findAllPairs[ID comparable, S cmp.Ordered](matchNode *node[ID, S], seqs map[ID]*sequence[ID, S]) iter.Seq2[ID, Path[ID, S]] {
	var leaves []*node[ID, S]
	matchNode.leavesBelow(func(n *node[ID, S]) {
		leaves = append(leaves, n)
	})

	pairs := iterutil.Map(iterutil.SeqOf(leaves...), func(n *node[ID, S]) struct {
		K ID
		V Path[ID, S]
	} {
		return struct {
			K ID
			V Path[ID, S]
		}{K: n.seqID, V: seqs[n.seqID].suffix(n.suffixStart)}
	})

	return seq2Of(slices.Collect(pairs))
}
