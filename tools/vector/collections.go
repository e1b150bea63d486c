package vector

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type CreateCollection struct{ store VectorStore }

func NewCreateCollection(store VectorStore) *CreateCollection {
	return &CreateCollection{store: store}
}

func (t *CreateCollection) Name() string  { return "create_collection" }
func (t *CreateCollection) Title() string { return "Create Collection" }
func (t *CreateCollection) Description() string {
	return "Creates a vector collection with the given vector size and distance metric."
}

func (t *CreateCollection) InputSchema() *jsonschema.Schema {
	minSize := 1.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":        {Type: "string"},
			"vector_size": {Type: "integer", Minimum: &minSize},
			"distance":    {Type: "string", Enum: []any{"cosine", "euclid", "dot", "manhattan"}},
		},
		Required: []string{"name", "vector_size"},
	}
}

func (t *CreateCollection) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name := tools.StringArg(input, "name")

	err := t.store.CreateCollection(ctx, name, uint64(tools.IntArg(input, "vector_size", 0)), tools.StringArg(input, "distance"))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Name    string `json:"name"`
		Created bool   `json:"created"`
	}{Name: name, Created: true}), nil
}

type ListCollections struct{ store VectorStore }

func NewListCollections(store VectorStore) *ListCollections {
	return &ListCollections{store: store}
}

func (t *ListCollections) Name() string  { return "list_collections" }
func (t *ListCollections) Title() string { return "List Collections" }
func (t *ListCollections) Description() string {
	return "Lists all vector collections."
}

func (t *ListCollections) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

func (t *ListCollections) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	names, err := t.store.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}

	return tools.Payload(struct {
		Collections []string `json:"collections"`
		Count       int      `json:"count"`
	}{Collections: names, Count: len(names)}), nil
}

type DeleteCollection struct{ store VectorStore }

func NewDeleteCollection(store VectorStore) *DeleteCollection {
	return &DeleteCollection{store: store}
}

func (t *DeleteCollection) Name() string  { return "delete_collection" }
func (t *DeleteCollection) Title() string { return "Delete Collection" }
func (t *DeleteCollection) Description() string {
	return "Deletes a vector collection and all of its points."
}

func (t *DeleteCollection) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
		},
		Required: []string{"name"},
	}
}

func (t *DeleteCollection) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name := tools.StringArg(input, "name")

	if err := t.store.DeleteCollection(ctx, name); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Name    string `json:"name"`
		Deleted bool   `json:"deleted"`
	}{Name: name, Deleted: true}), nil
}
