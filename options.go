package suffixtree

import "log/slog"

// Option configures a [Tree] at construction time (spec §6
// "Tree.new(builder?)", generalized into a single functional-option
// surface since Tree has one configuration shape, unlike a router's
// global/per-route split).
type Option interface {
	apply(*config)
}

type config struct {
	builder         BuilderKind
	logger          *slog.Logger
	debugInvariants bool
}

type optionFunc func(*config)

func (o optionFunc) apply(c *config) { o(c) }

func defaultConfig() *config {
	return &config{builder: BuilderMcCreight}
}

// WithBuilder selects the construction strategy. The default is
// [BuilderMcCreight]. Switching builders mid-lifetime is not
// supported: the choice is fixed for the Tree's whole lifetime (spec
// §4.3).
func WithBuilder(kind BuilderKind) Option {
	return optionFunc(func(c *config) {
		c.builder = kind
	})
}

// WithLogger attaches a [slog.Logger] that Add logs construction
// events to. Absent a logger, operations are silent.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithPrettyLogging installs the package's console-friendly
// [slog.Handler] instead of a caller-supplied logger. Intended for
// local development and CLI use, not production log aggregation.
func WithPrettyLogging() Option {
	return optionFunc(func(c *config) {
		c.logger = slog.New(prettyHandler())
	})
}

// WithDebugInvariants enables [CheckInvariants] after every Add,
// panicking with an [InvariantError] the first time a structural
// invariant (spec §3) is found broken. Never enable this outside
// tests and debugging sessions; the checker walks the whole tree.
func WithDebugInvariants() Option {
	return optionFunc(func(c *config) {
		c.debugInvariants = true
	})
}
