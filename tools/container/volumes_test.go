package container

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

func TestVolumeTools(t *testing.T) {
	ctx := context.Background()
	e := NewFakeEngine()

	create := NewCreateVolume(e)
	list := NewListVolumes(e)
	remove := NewRemoveVolume(e)

	_, err := create.Run(ctx, map[string]any{"name": "pgdata"})
	require.NoError(t, err)
	result, err := create.Run(ctx, map[string]any{"name": "cache"})
	require.NoError(t, err)

	volume := result["volume"].(map[string]any)
	assert.Equal(t, "cache", volume["name"])
	assert.Equal(t, "local", volume["driver"])

	t.Run("listing is stable", func(t *testing.T) {
		first, err := list.Run(ctx, map[string]any{})
		require.NoError(t, err)
		second, err := list.Run(ctx, map[string]any{})
		require.NoError(t, err)

		// Two identical listings marshal to the same bytes.
		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)

		assert.Equal(t, 2.0, first["count"])
		volumes := first["volumes"].([]any)
		assert.Equal(t, "cache", volumes[0].(map[string]any)["name"])
		assert.Equal(t, "pgdata", volumes[1].(map[string]any)["name"])
	})

	t.Run("remove", func(t *testing.T) {
		_, err := remove.Run(ctx, map[string]any{"name": "cache"})
		require.NoError(t, err)

		result, err := list.Run(ctx, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, 1.0, result["count"])

		_, err = remove.Run(ctx, map[string]any{"name": "cache"})
		require.Error(t, err)
		assert.Equal(t, tools.KindResourceNotFound, tools.KindOf(err))
	})
}

func TestNetworkTools(t *testing.T) {
	ctx := context.Background()
	e := NewFakeEngine()

	result, err := NewCreateNetwork(e).Run(ctx, map[string]any{"name": "backend", "driver": "bridge"})
	require.NoError(t, err)
	id := result["id"].(string)
	assert.Equal(t, "backend", result["name"])

	listed, err := NewListNetworks(e).Run(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, listed["count"])

	_, err = NewRemoveNetwork(e).Run(ctx, map[string]any{"network": id})
	require.NoError(t, err)
	assert.Empty(t, e.Networks)
}

func TestImageTools(t *testing.T) {
	ctx := context.Background()
	e := NewFakeEngine()

	_, err := NewPullImage(e).Run(ctx, map[string]any{"image": "nginx:1.27"})
	require.NoError(t, err)

	result, err := NewListImages(e).Run(ctx, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, result["count"])

	t.Run("push requires the image locally", func(t *testing.T) {
		_, err := NewPushImage(e).Run(ctx, map[string]any{"image": "nginx:1.27"})
		require.NoError(t, err)

		_, err = NewPushImage(e).Run(ctx, map[string]any{"image": "ghost:latest"})
		require.Error(t, err)
		assert.Equal(t, tools.KindResourceNotFound, tools.KindOf(err))
	})

	t.Run("build adds a tagged image", func(t *testing.T) {
		result, err := NewBuildImage(e).Run(ctx, map[string]any{
			"context_dir": ".",
			"dockerfile":  "Dockerfile",
			"tag":         "app:dev",
		})
		require.NoError(t, err)
		assert.Equal(t, true, result["built"])

		_, err = NewPushImage(e).Run(ctx, map[string]any{"image": "app:dev"})
		require.NoError(t, err)
	})

	t.Run("remove by tag", func(t *testing.T) {
		_, err := NewRemoveImage(e).Run(ctx, map[string]any{"image": "nginx:1.27"})
		require.NoError(t, err)

		_, err = NewRemoveImage(e).Run(ctx, map[string]any{"image": "nginx:1.27"})
		require.Error(t, err)
		assert.Equal(t, tools.KindResourceNotFound, tools.KindOf(err))
	})
}

func TestRegistry_ToolSet(t *testing.T) {
	registry, err := NewRegistry(NewFakeEngine(), "")
	require.NoError(t, err)
	assert.Len(t, registry.GetTools(), 18)
}
