package suffixtree

import (
	"log/slog"

	"github.com/polvolabs/gensuffixtree/internal/slogpretty"
)

// Keys for the attributes Tree.Add logs when a logger is configured
// (see [WithLogger], [WithPrettyLogging]).
const (
	// LogBuilderKey names the construction strategy used for the call.
	LogBuilderKey = "builder"
	// LogSequenceIDKey names the id of the sequence being added,
	// logged with slog.Any, so the handler decides how it renders.
	LogSequenceIDKey = "sequence_id"
	// LogNodesKey is the tree's total node count after the call.
	LogNodesKey = "nodes"
	// LogDurationKey is how long the call took.
	LogDurationKey = "duration"
)

func prettyHandler() slog.Handler {
	return slogpretty.DefaultHandler
}

func builderName(kind BuilderKind) string {
	switch kind {
	case BuilderUkkonen:
		return "ukkonen"
	case BuilderNaive:
		return "naive"
	default:
		return "mccreight"
	}
}
