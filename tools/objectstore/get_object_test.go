package objectstore

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

func seededStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, store.CreateBucket(context.Background(), "reports", ""))
	require.NoError(t, store.PutObject(context.Background(), "reports", "2026/q2.txt", []byte("quarterly numbers"), "text/plain"))
	return store
}

func TestGetObject_Run(t *testing.T) {
	tests := []struct {
		name            string
		input           map[string]any
		expectedPayload map[string]any
		expectedKind    tools.Kind
	}{
		{
			name:  "text object returned as utf-8",
			input: map[string]any{"bucket": "reports", "key": "2026/q2.txt"},
			expectedPayload: map[string]any{
				"bucket":       "reports",
				"key":          "2026/q2.txt",
				"content":      "quarterly numbers",
				"encoding":     "utf-8",
				"content_type": "text/plain",
				"size":         17.0,
			},
		},
		{
			name:         "missing object",
			input:        map[string]any{"bucket": "reports", "key": "nope.txt"},
			expectedKind: tools.KindNotFound,
		},
		{
			name:         "missing bucket",
			input:        map[string]any{"bucket": "nowhere", "key": "2026/q2.txt"},
			expectedKind: tools.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewGetObject(seededStore(t))

			result, err := tool.Run(context.Background(), tt.input)
			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, tools.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPayload, result)
		})
	}

	t.Run("binary object returned as base64", func(t *testing.T) {
		store := seededStore(t)
		binary := []byte{0xff, 0xfe, 0x00, 0x42}
		require.NoError(t, store.PutObject(context.Background(), "reports", "logo.bin", binary, "application/octet-stream"))

		tool := NewGetObject(store)
		result, err := tool.Run(context.Background(), map[string]any{"bucket": "reports", "key": "logo.bin"})
		require.NoError(t, err)

		assert.Equal(t, "base64", result["encoding"])
		assert.Equal(t, base64.StdEncoding.EncodeToString(binary), result["content"])
	})
}

func TestPutObject_Run(t *testing.T) {
	t.Run("round trip through the store", func(t *testing.T) {
		store := seededStore(t)
		tool := NewPutObject(store)

		result, err := tool.Run(context.Background(), map[string]any{
			"bucket":       "reports",
			"key":          "notes.md",
			"body":         "# notes",
			"content_type": "text/markdown",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"bucket": "reports", "key": "notes.md", "size": 7.0}, result)

		obj, err := store.GetObject(context.Background(), "reports", "notes.md")
		require.NoError(t, err)
		assert.Equal(t, []byte("# notes"), obj.Body)
		assert.Equal(t, "text/markdown", obj.ContentType)
	})

	t.Run("base64 body decoded before storing", func(t *testing.T) {
		store := seededStore(t)
		tool := NewPutObject(store)

		binary := []byte{0x00, 0x01, 0xff}
		_, err := tool.Run(context.Background(), map[string]any{
			"bucket":   "reports",
			"key":      "blob",
			"body":     base64.StdEncoding.EncodeToString(binary),
			"encoding": "base64",
		})
		require.NoError(t, err)

		obj, err := store.GetObject(context.Background(), "reports", "blob")
		require.NoError(t, err)
		assert.Equal(t, binary, obj.Body)
	})

	t.Run("invalid base64 body rejected", func(t *testing.T) {
		tool := NewPutObject(seededStore(t))

		_, err := tool.Run(context.Background(), map[string]any{
			"bucket":   "reports",
			"key":      "blob",
			"body":     "not base64!!",
			"encoding": "base64",
		})
		require.Error(t, err)
		assert.Equal(t, tools.KindInvalidArguments, tools.KindOf(err))
	})
}

func TestDispatch_GetObjectMissing(t *testing.T) {
	registry, err := NewRegistry(seededStore(t))
	require.NoError(t, err)
	dispatcher := tools.NewDispatcher(registry, tools.NoOpCallLogger{})

	res := dispatcher.Dispatch(context.Background(), tools.Call{
		Name:  "get_object",
		Input: map[string]any{"bucket": "reports", "key": "nope.txt"},
	})
	require.Equal(t, tools.StatusError, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, tools.KindNotFound, res.Error.Kind)
}
