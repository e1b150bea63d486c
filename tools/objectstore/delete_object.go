package objectstore

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type DeleteObject struct{ store ObjectStore }

func NewDeleteObject(store ObjectStore) *DeleteObject { return &DeleteObject{store: store} }

func (t *DeleteObject) Name() string  { return "delete_object" }
func (t *DeleteObject) Title() string { return "Delete Object" }
func (t *DeleteObject) Description() string {
	return "Deletes an object from a bucket."
}

func (t *DeleteObject) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"bucket": {Type: "string"},
			"key":    {Type: "string"},
		},
		Required: []string{"bucket", "key"},
	}
}

func (t *DeleteObject) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := tools.StringArg(input, "bucket")
	key := tools.StringArg(input, "key")

	if err := t.store.DeleteObject(ctx, bucket, key); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Bucket  string `json:"bucket"`
		Key     string `json:"key"`
		Deleted bool   `json:"deleted"`
	}{Bucket: bucket, Key: key, Deleted: true}), nil
}
