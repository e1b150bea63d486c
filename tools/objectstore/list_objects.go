package objectstore

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type ListObjects struct{ store ObjectStore }

func NewListObjects(store ObjectStore) *ListObjects { return &ListObjects{store: store} }

func (t *ListObjects) Name() string  { return "list_objects" }
func (t *ListObjects) Title() string { return "List Objects" }
func (t *ListObjects) Description() string {
	return "Lists objects in a bucket, optionally filtered by key prefix."
}

func (t *ListObjects) InputSchema() *jsonschema.Schema {
	minKeys := 1.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"bucket":   {Type: "string"},
			"prefix":   {Type: "string"},
			"max_keys": {Type: "integer", Minimum: &minKeys},
		},
		Required: []string{"bucket"},
	}
}

func (t *ListObjects) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := tools.StringArg(input, "bucket")

	infos, err := t.store.ListObjects(ctx, bucket, tools.StringArg(input, "prefix"), int32(tools.IntArg(input, "max_keys", 0)))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Bucket  string       `json:"bucket"`
		Objects []ObjectInfo `json:"objects"`
		Count   int          `json:"count"`
	}{Bucket: bucket, Objects: infos, Count: len(infos)}), nil
}
