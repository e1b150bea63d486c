package container

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type CreateNetwork struct{ engine Engine }

func NewCreateNetwork(engine Engine) *CreateNetwork { return &CreateNetwork{engine: engine} }

func (t *CreateNetwork) Name() string  { return "create_network" }
func (t *CreateNetwork) Title() string { return "Create Network" }
func (t *CreateNetwork) Description() string {
	return "Creates a network, bridge driver by default."
}

func (t *CreateNetwork) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":   {Type: "string"},
			"driver": {Type: "string"},
		},
		Required: []string{"name"},
	}
}

func (t *CreateNetwork) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name := tools.StringArg(input, "name")

	id, err := t.engine.CreateNetwork(ctx, name, tools.StringArg(input, "driver"))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Created bool   `json:"created"`
	}{ID: id, Name: name, Created: true}), nil
}

type ListNetworks struct{ engine Engine }

func NewListNetworks(engine Engine) *ListNetworks { return &ListNetworks{engine: engine} }

func (t *ListNetworks) Name() string  { return "list_networks" }
func (t *ListNetworks) Title() string { return "List Networks" }
func (t *ListNetworks) Description() string {
	return "Lists networks on the engine."
}

func (t *ListNetworks) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

func (t *ListNetworks) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	list, err := t.engine.ListNetworks(ctx)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Networks []NetworkSummary `json:"networks"`
		Count    int              `json:"count"`
	}{Networks: list, Count: len(list)}), nil
}

type RemoveNetwork struct{ engine Engine }

func NewRemoveNetwork(engine Engine) *RemoveNetwork { return &RemoveNetwork{engine: engine} }

func (t *RemoveNetwork) Name() string  { return "remove_network" }
func (t *RemoveNetwork) Title() string { return "Remove Network" }
func (t *RemoveNetwork) Description() string {
	return "Removes a network by ID or name."
}

func (t *RemoveNetwork) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"network": {Type: "string"},
		},
		Required: []string{"network"},
	}
}

func (t *RemoveNetwork) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id := tools.StringArg(input, "network")
	if err := t.engine.RemoveNetwork(ctx, id); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Network string `json:"network"`
		Removed bool   `json:"removed"`
	}{Network: id, Removed: true}), nil
}
