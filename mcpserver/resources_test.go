package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"compose.yaml", "application/yaml"},
		{"stack.yml", "application/yaml"},
		{"config.json", "application/json"},
		{"README.md", "text/markdown"},
		{"Dockerfile", "text/plain"},
		{"nested/app.YAML", "application/yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, mimeFor(tt.path))
		})
	}
}

func TestTemplateCache(t *testing.T) {
	cache := &templateCache{files: make(map[string]string)}

	_, ok := cache.get("compose.yaml")
	assert.False(t, ok)

	cache.set("compose.yaml", "services: {}")
	content, ok := cache.get("compose.yaml")
	assert.True(t, ok)
	assert.Equal(t, "services: {}", content)

	cache.set("compose.yaml", "services:\n  web: {}")
	content, _ = cache.get("compose.yaml")
	assert.Equal(t, "services:\n  web: {}", content)

	cache.delete("compose.yaml")
	_, ok = cache.get("compose.yaml")
	assert.False(t, ok)
}
