package objectstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

func TestListObjects_Run(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.CreateBucket(ctx, "assets", ""))
	for _, key := range []string{"img/b.png", "img/a.png", "docs/readme.md"} {
		require.NoError(t, store.PutObject(ctx, "assets", key, []byte("x"), ""))
	}

	tool := NewListObjects(store)

	t.Run("all keys sorted", func(t *testing.T) {
		result, err := tool.Run(ctx, map[string]any{"bucket": "assets"})
		require.NoError(t, err)

		assert.Equal(t, 3.0, result["count"])
		objects := result["objects"].([]any)
		keys := make([]string, 0, len(objects))
		for _, o := range objects {
			keys = append(keys, o.(map[string]any)["key"].(string))
		}
		assert.Equal(t, []string{"docs/readme.md", "img/a.png", "img/b.png"}, keys)
	})

	t.Run("prefix filter", func(t *testing.T) {
		result, err := tool.Run(ctx, map[string]any{"bucket": "assets", "prefix": "img/"})
		require.NoError(t, err)
		assert.Equal(t, 2.0, result["count"])
	})

	t.Run("max_keys truncates", func(t *testing.T) {
		result, err := tool.Run(ctx, map[string]any{"bucket": "assets", "max_keys": 1.0})
		require.NoError(t, err)
		assert.Equal(t, 1.0, result["count"])
	})

	t.Run("unknown bucket", func(t *testing.T) {
		_, err := tool.Run(ctx, map[string]any{"bucket": "nowhere"})
		require.Error(t, err)
		assert.Equal(t, tools.KindNotFound, tools.KindOf(err))
	})
}

func TestDeleteObject_Run(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.CreateBucket(ctx, "assets", ""))
	require.NoError(t, store.PutObject(ctx, "assets", "tmp.txt", []byte("x"), ""))

	tool := NewDeleteObject(store)

	result, err := tool.Run(ctx, map[string]any{"bucket": "assets", "key": "tmp.txt"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bucket": "assets", "key": "tmp.txt", "deleted": true}, result)

	_, err = store.GetObject(ctx, "assets", "tmp.txt")
	assert.Equal(t, tools.KindNotFound, tools.KindOf(err))
}

func TestBucketTools(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	create := NewCreateBucket(store)
	list := NewListBuckets(store)

	result, err := list.Run(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result["count"])

	_, err = create.Run(ctx, map[string]any{"bucket": "zeta"})
	require.NoError(t, err)
	_, err = create.Run(ctx, map[string]any{"bucket": "alpha", "region": "eu-west-1"})
	require.NoError(t, err)

	result, err = list.Run(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 2.0, result["count"])

	buckets := result["buckets"].([]any)
	assert.Equal(t, "alpha", buckets[0].(map[string]any)["name"])
	assert.Equal(t, "zeta", buckets[1].(map[string]any)["name"])

	// Creating an existing bucket is rejected.
	_, err = create.Run(ctx, map[string]any{"bucket": "alpha"})
	require.Error(t, err)
}

func TestRegistry_ToolSet(t *testing.T) {
	registry, err := NewRegistry(NewMemoryStore())
	require.NoError(t, err)

	names := make([]string, 0)
	for _, tool := range registry.GetTools() {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{
		"get_object",
		"put_object",
		"list_objects",
		"delete_object",
		"list_buckets",
		"create_bucket",
	}, names)
}
