package suffixtree

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, BuilderMcCreight, cfg.builder)
	assert.Nil(t, cfg.logger)
	assert.False(t, cfg.debugInvariants)
}

func TestOptions_WithBuilder(t *testing.T) {
	cfg := defaultConfig()
	WithBuilder(BuilderUkkonen).apply(cfg)
	assert.Equal(t, BuilderUkkonen, cfg.builder)
}

func TestOptions_WithLogger(t *testing.T) {
	cfg := defaultConfig()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithLogger(logger).apply(cfg)
	assert.Same(t, logger, cfg.logger)

	// A nil logger is ignored rather than clearing a previously set one.
	WithLogger(nil).apply(cfg)
	assert.Same(t, logger, cfg.logger)
}

func TestOptions_WithPrettyLogging(t *testing.T) {
	cfg := defaultConfig()
	WithPrettyLogging().apply(cfg)
	assert.NotNil(t, cfg.logger)
}

func TestOptions_WithDebugInvariants(t *testing.T) {
	cfg := defaultConfig()
	WithDebugInvariants().apply(cfg)
	assert.True(t, cfg.debugInvariants)
}

func TestNew_AppliesOptions(t *testing.T) {
	tree := New[string, byte](WithBuilder(BuilderNaive))
	assert.Equal(t, BuilderNaive, tree.cfg.builder)
	// A Naive tree never wires suffix links from root.
	assert.Nil(t, tree.root.suffixLink)

	tree2 := New[string, byte](WithBuilder(BuilderMcCreight))
	assert.NotNil(t, tree2.root.suffixLink)
}
