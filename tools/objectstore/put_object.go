package objectstore

import (
	"context"
	"encoding/base64"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type PutObject struct{ store ObjectStore }

func NewPutObject(store ObjectStore) *PutObject { return &PutObject{store: store} }

func (t *PutObject) Name() string  { return "put_object" }
func (t *PutObject) Title() string { return "Put Object" }
func (t *PutObject) Description() string {
	return "Writes an object to a bucket. Set encoding to base64 to upload binary content."
}

func (t *PutObject) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"bucket":       {Type: "string"},
			"key":          {Type: "string"},
			"body":         {Type: "string"},
			"content_type": {Type: "string"},
			"encoding":     {Type: "string", Enum: []any{"utf-8", "base64"}},
		},
		Required: []string{"bucket", "key", "body"},
	}
}

func (t *PutObject) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := tools.StringArg(input, "bucket")
	key := tools.StringArg(input, "key")

	body := []byte(tools.StringArg(input, "body"))
	if tools.StringArg(input, "encoding") == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(tools.StringArg(input, "body"))
		if err != nil {
			return nil, tools.InvalidArguments("body")
		}
		body = decoded
	}

	if err := t.store.PutObject(ctx, bucket, key, body, tools.StringArg(input, "content_type")); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Bucket string `json:"bucket"`
		Key    string `json:"key"`
		Size   int    `json:"size"`
	}{Bucket: bucket, Key: key, Size: len(body)}), nil
}
