package container

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type CreateVolume struct{ engine Engine }

func NewCreateVolume(engine Engine) *CreateVolume { return &CreateVolume{engine: engine} }

func (t *CreateVolume) Name() string  { return "create_volume" }
func (t *CreateVolume) Title() string { return "Create Volume" }
func (t *CreateVolume) Description() string {
	return "Creates a named volume."
}

func (t *CreateVolume) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
		},
		Required: []string{"name"},
	}
}

func (t *CreateVolume) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	vol, err := t.engine.CreateVolume(ctx, tools.StringArg(input, "name"))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Volume  VolumeSummary `json:"volume"`
		Created bool          `json:"created"`
	}{Volume: vol, Created: true}), nil
}

type ListVolumes struct{ engine Engine }

func NewListVolumes(engine Engine) *ListVolumes { return &ListVolumes{engine: engine} }

func (t *ListVolumes) Name() string  { return "list_volumes" }
func (t *ListVolumes) Title() string { return "List Volumes" }
func (t *ListVolumes) Description() string {
	return "Lists volumes on the engine."
}

func (t *ListVolumes) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

func (t *ListVolumes) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	list, err := t.engine.ListVolumes(ctx)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Volumes []VolumeSummary `json:"volumes"`
		Count   int             `json:"count"`
	}{Volumes: list, Count: len(list)}), nil
}

type RemoveVolume struct{ engine Engine }

func NewRemoveVolume(engine Engine) *RemoveVolume { return &RemoveVolume{engine: engine} }

func (t *RemoveVolume) Name() string  { return "remove_volume" }
func (t *RemoveVolume) Title() string { return "Remove Volume" }
func (t *RemoveVolume) Description() string {
	return "Removes a volume by name."
}

func (t *RemoveVolume) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":  {Type: "string"},
			"force": {Type: "boolean"},
		},
		Required: []string{"name"},
	}
}

func (t *RemoveVolume) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	name := tools.StringArg(input, "name")
	if err := t.engine.RemoveVolume(ctx, name, tools.BoolArg(input, "force")); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Name    string `json:"name"`
		Removed bool   `json:"removed"`
	}{Name: name, Removed: true}), nil
}
