package suffixtree

import (
	"cmp"
	"fmt"
	"io"
)

// WriteDot renders t as a GraphViz dot graph: every node gets a unique
// id, edges are labeled with their path rendered as whitespace-joined
// symbol representations, and leaves are additionally annotated with
// the (sequence id, suffix start) pair they represent (spec §6,
// explicitly optional, not part of the core query surface).
func WriteDot[ID comparable, S cmp.Ordered](w io.Writer, t *Tree[ID, S]) error {
	bw := &errWriter{w: w}
	fmt.Fprintln(bw, "digraph suffixtree {")
	fmt.Fprintln(bw, `  node [shape=circle];`)

	name := 0
	t.root.preOrder(func(n *node[ID, S]) {
		n.name = name
		name++
		if n.leaf {
			fmt.Fprintf(bw, "  n%d [shape=box, label=%q];\n", n.name, fmt.Sprintf("(%v,%d)", n.seqID, n.suffixStart))
		} else if n.isRoot() {
			fmt.Fprintf(bw, "  n%d [label=\"root\"];\n", n.name)
		} else {
			fmt.Fprintf(bw, "  n%d [label=\"\"];\n", n.name)
		}
	})

	t.root.preOrder(func(n *node[ID, S]) {
		if n.isRoot() {
			return
		}
		fmt.Fprintf(bw, "  n%d -> n%d [label=%q];\n", n.parent.name, n.name, n.incoming.String())
	})

	fmt.Fprintln(bw, "}")
	return bw.err
}

// errWriter swallows per-call error handling so WriteDot's body can
// stay flat fmt.Fprint calls; the first error encountered is returned
// from WriteDot once the whole graph has been attempted.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
