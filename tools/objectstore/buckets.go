package objectstore

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type ListBuckets struct{ store ObjectStore }

func NewListBuckets(store ObjectStore) *ListBuckets { return &ListBuckets{store: store} }

func (t *ListBuckets) Name() string  { return "list_buckets" }
func (t *ListBuckets) Title() string { return "List Buckets" }
func (t *ListBuckets) Description() string {
	return "Lists all buckets owned by the configured account."
}

func (t *ListBuckets) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

func (t *ListBuckets) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	infos, err := t.store.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Buckets []BucketInfo `json:"buckets"`
		Count   int          `json:"count"`
	}{Buckets: infos, Count: len(infos)}), nil
}

type CreateBucket struct{ store ObjectStore }

func NewCreateBucket(store ObjectStore) *CreateBucket { return &CreateBucket{store: store} }

func (t *CreateBucket) Name() string  { return "create_bucket" }
func (t *CreateBucket) Title() string { return "Create Bucket" }
func (t *CreateBucket) Description() string {
	return "Creates a new bucket, optionally in a specific region."
}

func (t *CreateBucket) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"bucket": {Type: "string"},
			"region": {Type: "string"},
		},
		Required: []string{"bucket"},
	}
}

func (t *CreateBucket) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	bucket := tools.StringArg(input, "bucket")

	if err := t.store.CreateBucket(ctx, bucket, tools.StringArg(input, "region")); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Bucket  string `json:"bucket"`
		Created bool   `json:"created"`
	}{Bucket: bucket, Created: true}), nil
}
