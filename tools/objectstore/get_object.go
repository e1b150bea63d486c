package objectstore

import (
	"context"
	"encoding/base64"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type GetObject struct{ store ObjectStore }

func NewGetObject(store ObjectStore) *GetObject { return &GetObject{store: store} }

func (t *GetObject) Name() string  { return "get_object" }
func (t *GetObject) Title() string { return "Get Object" }
func (t *GetObject) Description() string {
	return "Retrieves an object from a bucket. Binary bodies are returned base64-encoded."
}

func (t *GetObject) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"bucket": {Type: "string"},
			"key":    {Type: "string"},
		},
		Required: []string{"bucket", "key"},
	}
}

func (t *GetObject) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := tools.StringArg(input, "bucket")
	key := tools.StringArg(input, "key")

	obj, err := t.store.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, err
	}

	out := struct {
		Bucket      string `json:"bucket"`
		Key         string `json:"key"`
		Content     string `json:"content"`
		Encoding    string `json:"encoding"`
		ContentType string `json:"content_type,omitempty"`
		Size        int64  `json:"size"`
	}{
		Bucket:      bucket,
		Key:         key,
		ContentType: obj.ContentType,
		Size:        obj.Size,
	}

	if utf8.Valid(obj.Body) {
		out.Content = string(obj.Body)
		out.Encoding = "utf-8"
	} else {
		out.Content = base64.StdEncoding.EncodeToString(obj.Body)
		out.Encoding = "base64"
	}

	return tools.Payload(out), nil
}
