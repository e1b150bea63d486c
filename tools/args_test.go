package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgHelpers(t *testing.T) {
	input := map[string]any{
		"name":    "web",
		"all":     true,
		"count":   3.0,
		"vector":  []any{0.1, 0.2},
		"labels":  []any{"a", "b"},
		"env":     map[string]any{"KEY": "value", "skip": 7.0},
		"garbage": 42.0,
	}

	assert.Equal(t, "web", StringArg(input, "name"))
	assert.Equal(t, "", StringArg(input, "missing"))
	assert.Equal(t, "", StringArg(input, "garbage"))

	assert.True(t, BoolArg(input, "all"))
	assert.False(t, BoolArg(input, "missing"))

	assert.Equal(t, 3, IntArg(input, "count", 9))
	assert.Equal(t, 9, IntArg(input, "missing", 9))

	assert.Equal(t, []float32{0.1, 0.2}, FloatSliceArg(input, "vector"))
	assert.Nil(t, FloatSliceArg(input, "labels"))

	assert.Equal(t, []string{"a", "b"}, StringSliceArg(input, "labels"))
	assert.Nil(t, StringSliceArg(input, "vector"))

	assert.Equal(t, map[string]string{"KEY": "value"}, StringMapArg(input, "env"))
	assert.Nil(t, StringMapArg(input, "missing"))
}

func TestPayload(t *testing.T) {
	got := Payload(struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}{Name: "web", Count: 2})

	assert.Equal(t, map[string]any{"name": "web", "count": 2.0}, got)
}
