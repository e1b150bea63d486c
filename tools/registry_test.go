package tools

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTool is a minimal Tool for registry and dispatcher tests.
type stubTool struct {
	name   string
	schema *jsonschema.Schema
	output map[string]any
	err    error
	calls  int
}

func (s *stubTool) Name() string                    { return s.name }
func (s *stubTool) Title() string                   { return s.name }
func (s *stubTool) Description() string             { return "stub tool " + s.name }
func (s *stubTool) InputSchema() *jsonschema.Schema { return s.schema }

func (s *stubTool) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.output, nil
}

func TestRegistry_GetTools(t *testing.T) {
	a := &stubTool{name: "alpha"}
	b := &stubTool{name: "beta"}
	c := &stubTool{name: "gamma"}

	registry, err := NewRegistry(c, a, b)
	require.NoError(t, err)

	got := registry.GetTools()
	require.Len(t, got, 3)

	// Listing preserves registration order, not lexical order.
	assert.Equal(t, "gamma", got[0].Name())
	assert.Equal(t, "alpha", got[1].Name())
	assert.Equal(t, "beta", got[2].Name())
}

func TestRegistry_GetTool(t *testing.T) {
	a := &stubTool{name: "alpha"}

	registry, err := NewRegistry(a)
	require.NoError(t, err)

	got, err := registry.GetTool("alpha")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = registry.GetTool("missing")
	require.Error(t, err)
	assert.Equal(t, KindUnknownTool, KindOf(err))
}

func TestRegistry_DuplicateNames(t *testing.T) {
	_, err := NewRegistry(&stubTool{name: "alpha"}, &stubTool{name: "alpha"})
	assert.Error(t, err)
}
