package suffixtree

import "errors"

var (
	// ErrDuplicateID is returned by Add when the given id is already
	// present in the tree (spec §7).
	ErrDuplicateID = errors.New("suffixtree: duplicate sequence id")
	// ErrUnknownID is returned by FindID when the given id has never
	// been added.
	ErrUnknownID = errors.New("suffixtree: unknown sequence id")
	// ErrEmptySequence is returned by Add when the supplied sequence
	// has zero length (spec §9 open question, resolved as an error).
	ErrEmptySequence = errors.New("suffixtree: empty sequence")
	// ErrInvalidOffset is returned by LCA when a given suffix start
	// offset does not identify a leaf of the named sequence.
	ErrInvalidOffset = errors.New("suffixtree: invalid suffix offset")
)

// InvariantError reports which structural invariant a debug-mode
// check found broken, with a detail message. It is only ever raised
// via panic by [CheckInvariants], never returned; CheckInvariants runs
// after every Add only when [WithDebugInvariants] is set, and
// otherwise only when called directly.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return "suffixtree: invariant violated (" + e.Invariant + "): " + e.Detail
}
