package tools

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greetSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":  {Type: "string", Description: "Who to greet."},
			"count": {Type: "integer", Description: "How many times."},
			"loud":  {Type: "boolean", Description: "Shout the greeting."},
		},
		Required: []string{"name"},
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	tests := []struct {
		name          string
		call          Call
		wantStatus    Status
		wantKind      Kind
		wantFields    []string
		wantToolCalls int
	}{
		{
			name:          "valid call succeeds",
			call:          Call{Name: "greet", Input: map[string]any{"name": "world"}},
			wantStatus:    StatusSuccess,
			wantToolCalls: 1,
		},
		{
			name:          "whole float accepted for integer parameter",
			call:          Call{Name: "greet", Input: map[string]any{"name": "world", "count": 3.0}},
			wantStatus:    StatusSuccess,
			wantToolCalls: 1,
		},
		{
			name:       "unknown tool",
			call:       Call{Name: "nope", Input: map[string]any{}},
			wantStatus: StatusError,
			wantKind:   KindUnknownTool,
		},
		{
			name:       "missing required argument",
			call:       Call{Name: "greet", Input: map[string]any{"count": 2.0}},
			wantStatus: StatusError,
			wantKind:   KindInvalidArguments,
			wantFields: []string{"name"},
		},
		{
			name:       "wrong argument types reported sorted",
			call:       Call{Name: "greet", Input: map[string]any{"name": 7.0, "loud": "yes", "count": 1.5}},
			wantStatus: StatusError,
			wantKind:   KindInvalidArguments,
			wantFields: []string{"count", "loud", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := &stubTool{
				name:   "greet",
				schema: greetSchema(),
				output: map[string]any{"greeting": "hello"},
			}
			registry, err := NewRegistry(tool)
			require.NoError(t, err)

			d := NewDispatcher(registry, nil)
			res := d.Dispatch(context.Background(), tt.call)

			assert.Equal(t, tt.wantStatus, res.Status)
			if tt.wantStatus == StatusSuccess {
				require.Nil(t, res.Error)
				assert.Equal(t, map[string]any{"greeting": "hello"}, res.Payload)
			} else {
				require.NotNil(t, res.Error)
				assert.Nil(t, res.Payload)
				assert.Equal(t, tt.wantKind, res.Error.Kind)
				assert.Equal(t, tt.wantFields, res.Error.Fields)
			}

			// A call rejected before validation passes must never reach the tool.
			assert.Equal(t, tt.wantToolCalls, tool.calls)
		})
	}
}

func TestDispatcher_ToolErrorPassthrough(t *testing.T) {
	tool := &stubTool{
		name:   "greet",
		schema: greetSchema(),
		err:    E(KindNotFound, "no such greeting"),
	}
	registry, err := NewRegistry(tool)
	require.NoError(t, err)

	d := NewDispatcher(registry, nil)
	res := d.Dispatch(context.Background(), Call{Name: "greet", Input: map[string]any{"name": "world"}})

	assert.Equal(t, StatusError, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, KindNotFound, res.Error.Kind)
	assert.Equal(t, "no such greeting", res.Error.Message)
}

// recordingLogger captures call logs for assertions.
type recordingLogger struct {
	entries []CallLog
}

func (l *recordingLogger) LogCall(call CallLog) error {
	l.entries = append(l.entries, call)
	return nil
}

func TestDispatcher_AuditLog(t *testing.T) {
	tool := &stubTool{
		name:   "greet",
		schema: greetSchema(),
		output: map[string]any{"greeting": "hello"},
	}
	registry, err := NewRegistry(tool)
	require.NoError(t, err)

	logger := &recordingLogger{}
	d := NewDispatcher(registry, logger)

	d.Dispatch(context.Background(), Call{Name: "greet", Input: map[string]any{"name": "world"}})
	d.Dispatch(context.Background(), Call{Name: "nope", Input: map[string]any{}})

	require.Len(t, logger.entries, 2)

	assert.Equal(t, "greet", logger.entries[0].Tool)
	assert.Equal(t, StatusSuccess, logger.entries[0].Status)
	assert.Empty(t, logger.entries[0].Error)

	assert.Equal(t, "nope", logger.entries[1].Tool)
	assert.Equal(t, StatusError, logger.entries[1].Status)
	assert.NotEmpty(t, logger.entries[1].Error)
}
