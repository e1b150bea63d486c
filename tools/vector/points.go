package vector

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type UpsertPoints struct{ store VectorStore }

func NewUpsertPoints(store VectorStore) *UpsertPoints { return &UpsertPoints{store: store} }

func (t *UpsertPoints) Name() string  { return "upsert_points" }
func (t *UpsertPoints) Title() string { return "Upsert Points" }
func (t *UpsertPoints) Description() string {
	return "Inserts or updates points in a collection. Each point carries an id, a vector, and an optional payload."
}

func (t *UpsertPoints) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"collection": {Type: "string"},
			"points": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"id":      {Type: "string"},
						"vector":  {Type: "array", Items: &jsonschema.Schema{Type: "number"}},
						"payload": {Type: "object"},
					},
					Required: []string{"id", "vector"},
				},
			},
		},
		Required: []string{"collection", "points"},
	}
}

func (t *UpsertPoints) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	collection := tools.StringArg(input, "collection")

	points, err := parsePoints(input["points"])
	if err != nil {
		return nil, err
	}

	if err := t.store.Upsert(ctx, collection, points); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Collection string `json:"collection"`
		Upserted   int    `json:"upserted"`
	}{Collection: collection, Upserted: len(points)}), nil
}

// parsePoints decodes the raw points argument through JSON so nested shapes
// are checked in one place.
func parsePoints(raw any) ([]Point, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, tools.InvalidArguments("points")
	}
	var points []Point
	if err := json.Unmarshal(b, &points); err != nil {
		return nil, tools.InvalidArguments("points")
	}
	for i, p := range points {
		if p.ID == "" || len(p.Vector) == 0 {
			return nil, &tools.Error{
				Kind:    tools.KindInvalidArguments,
				Message: fmt.Sprintf("point %d is missing an id or vector", i),
				Fields:  []string{"points"},
			}
		}
	}
	return points, nil
}

type GetPoints struct{ store VectorStore }

func NewGetPoints(store VectorStore) *GetPoints { return &GetPoints{store: store} }

func (t *GetPoints) Name() string  { return "get_points" }
func (t *GetPoints) Title() string { return "Get Points" }
func (t *GetPoints) Description() string {
	return "Retrieves points from a collection by ID."
}

func (t *GetPoints) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"collection": {Type: "string"},
			"ids":        {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Required: []string{"collection", "ids"},
	}
}

func (t *GetPoints) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	collection := tools.StringArg(input, "collection")

	points, err := t.store.Get(ctx, collection, tools.StringSliceArg(input, "ids"))
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []Point{}
	}

	return tools.Payload(struct {
		Collection string  `json:"collection"`
		Points     []Point `json:"points"`
		Count      int     `json:"count"`
	}{Collection: collection, Points: points, Count: len(points)}), nil
}

type QueryPoints struct{ store VectorStore }

func NewQueryPoints(store VectorStore) *QueryPoints { return &QueryPoints{store: store} }

func (t *QueryPoints) Name() string  { return "query_points" }
func (t *QueryPoints) Title() string { return "Query Points" }
func (t *QueryPoints) Description() string {
	return "Finds the nearest points to a query vector."
}

func (t *QueryPoints) InputSchema() *jsonschema.Schema {
	minLimit := 1.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"collection": {Type: "string"},
			"vector":     {Type: "array", Items: &jsonschema.Schema{Type: "number"}},
			"limit":      {Type: "integer", Minimum: &minLimit},
		},
		Required: []string{"collection", "vector"},
	}
}

func (t *QueryPoints) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	collection := tools.StringArg(input, "collection")

	vector := tools.FloatSliceArg(input, "vector")
	if len(vector) == 0 {
		return nil, tools.InvalidArguments("vector")
	}

	hits, err := t.store.Query(ctx, collection, vector, uint64(tools.IntArg(input, "limit", 10)))
	if err != nil {
		return nil, err
	}
	if hits == nil {
		hits = []ScoredPoint{}
	}

	return tools.Payload(struct {
		Collection string        `json:"collection"`
		Hits       []ScoredPoint `json:"hits"`
		Count      int           `json:"count"`
	}{Collection: collection, Hits: hits, Count: len(hits)}), nil
}
