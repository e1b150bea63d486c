package container

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type ListContainers struct{ engine Engine }

func NewListContainers(engine Engine) *ListContainers { return &ListContainers{engine: engine} }

func (t *ListContainers) Name() string  { return "list_containers" }
func (t *ListContainers) Title() string { return "List Containers" }
func (t *ListContainers) Description() string {
	return "Lists containers. Running containers only unless all is true."
}

func (t *ListContainers) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"all": {Type: "boolean"},
		},
	}
}

func (t *ListContainers) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	list, err := t.engine.ListContainers(ctx, tools.BoolArg(input, "all"))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Containers []ContainerSummary `json:"containers"`
		Count      int                `json:"count"`
	}{Containers: list, Count: len(list)}), nil
}

// containerSpecSchema is shared by create_container and run_container.
func containerSpecSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"image": {Type: "string"},
			"name":  {Type: "string"},
			"environment": {
				Type:                 "object",
				AdditionalProperties: &jsonschema.Schema{Type: "string"},
			},
			"ports": {
				Type:                 "object",
				Description:          "Container port to host port",
				AdditionalProperties: &jsonschema.Schema{Type: "string"},
			},
			"volumes": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"command": {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
		Required: []string{"image"},
	}
}

func specFromInput(input map[string]any) ContainerSpec {
	return ContainerSpec{
		Image:   tools.StringArg(input, "image"),
		Name:    tools.StringArg(input, "name"),
		Env:     tools.StringMapArg(input, "environment"),
		Ports:   tools.StringMapArg(input, "ports"),
		Volumes: tools.StringSliceArg(input, "volumes"),
		Command: tools.StringSliceArg(input, "command"),
	}
}

type CreateContainer struct{ engine Engine }

func NewCreateContainer(engine Engine) *CreateContainer { return &CreateContainer{engine: engine} }

func (t *CreateContainer) Name() string  { return "create_container" }
func (t *CreateContainer) Title() string { return "Create Container" }
func (t *CreateContainer) Description() string {
	return "Creates a standalone container without starting it."
}

func (t *CreateContainer) InputSchema() *jsonschema.Schema { return containerSpecSchema() }

func (t *CreateContainer) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := t.engine.CreateContainer(ctx, specFromInput(input))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		ID      string `json:"id"`
		Created bool   `json:"created"`
	}{ID: id, Created: true}), nil
}

type RunContainer struct{ engine Engine }

func NewRunContainer(engine Engine) *RunContainer { return &RunContainer{engine: engine} }

func (t *RunContainer) Name() string  { return "run_container" }
func (t *RunContainer) Title() string { return "Run Container" }
func (t *RunContainer) Description() string {
	return "Creates a container and starts it."
}

func (t *RunContainer) InputSchema() *jsonschema.Schema { return containerSpecSchema() }

func (t *RunContainer) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id, err := t.engine.RunContainer(ctx, specFromInput(input))
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		ID      string `json:"id"`
		Started bool   `json:"started"`
	}{ID: id, Started: true}), nil
}

type StartContainer struct{ engine Engine }

func NewStartContainer(engine Engine) *StartContainer { return &StartContainer{engine: engine} }

func (t *StartContainer) Name() string  { return "start_container" }
func (t *StartContainer) Title() string { return "Start Container" }
func (t *StartContainer) Description() string {
	return "Starts a stopped container by ID or name."
}

func (t *StartContainer) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"container": {Type: "string"},
		},
		Required: []string{"container"},
	}
}

func (t *StartContainer) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id := tools.StringArg(input, "container")
	if err := t.engine.StartContainer(ctx, id); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Container string `json:"container"`
		Started   bool   `json:"started"`
	}{Container: id, Started: true}), nil
}

type StopContainer struct{ engine Engine }

func NewStopContainer(engine Engine) *StopContainer { return &StopContainer{engine: engine} }

func (t *StopContainer) Name() string  { return "stop_container" }
func (t *StopContainer) Title() string { return "Stop Container" }
func (t *StopContainer) Description() string {
	return "Stops a running container by ID or name."
}

func (t *StopContainer) InputSchema() *jsonschema.Schema {
	minTimeout := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"container": {Type: "string"},
			"timeout":   {Type: "integer", Minimum: &minTimeout, Description: "Seconds to wait before killing"},
		},
		Required: []string{"container"},
	}
}

func (t *StopContainer) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id := tools.StringArg(input, "container")
	if err := t.engine.StopContainer(ctx, id, tools.IntArg(input, "timeout", 0)); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Container string `json:"container"`
		Stopped   bool   `json:"stopped"`
	}{Container: id, Stopped: true}), nil
}

type RemoveContainer struct{ engine Engine }

func NewRemoveContainer(engine Engine) *RemoveContainer { return &RemoveContainer{engine: engine} }

func (t *RemoveContainer) Name() string  { return "remove_container" }
func (t *RemoveContainer) Title() string { return "Remove Container" }
func (t *RemoveContainer) Description() string {
	return "Removes a container by ID or name."
}

func (t *RemoveContainer) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"container": {Type: "string"},
			"force":     {Type: "boolean"},
		},
		Required: []string{"container"},
	}
}

func (t *RemoveContainer) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id := tools.StringArg(input, "container")
	if err := t.engine.RemoveContainer(ctx, id, tools.BoolArg(input, "force")); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Container string `json:"container"`
		Removed   bool   `json:"removed"`
	}{Container: id, Removed: true}), nil
}

type GetLogs struct {
	engine      Engine
	defaultTail string
}

func NewGetLogs(engine Engine, defaultTail string) *GetLogs {
	if defaultTail == "" {
		defaultTail = "100"
	}
	return &GetLogs{engine: engine, defaultTail: defaultTail}
}

func (t *GetLogs) Name() string  { return "get_logs" }
func (t *GetLogs) Title() string { return "Get Container Logs" }
func (t *GetLogs) Description() string {
	return "Retrieves the latest logs for a container."
}

func (t *GetLogs) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"container": {Type: "string"},
			"tail":      {Type: "string", Description: "Number of lines from the end, or all"},
		},
		Required: []string{"container"},
	}
}

func (t *GetLogs) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	id := tools.StringArg(input, "container")

	tail := tools.StringArg(input, "tail")
	if tail == "" {
		tail = t.defaultTail
	}

	logs, err := t.engine.ContainerLogs(ctx, id, tail)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Container string `json:"container"`
		Logs      string `json:"logs"`
	}{Container: id, Logs: logs}), nil
}
