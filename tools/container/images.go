package container

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type PullImage struct{ engine Engine }

func NewPullImage(engine Engine) *PullImage { return &PullImage{engine: engine} }

func (t *PullImage) Name() string  { return "pull_image" }
func (t *PullImage) Title() string { return "Pull Image" }
func (t *PullImage) Description() string {
	return "Pulls an image from a registry."
}

func (t *PullImage) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"image": {Type: "string", Description: "Image reference, e.g. nginx:latest"},
		},
		Required: []string{"image"},
	}
}

func (t *PullImage) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	ref := tools.StringArg(input, "image")
	if err := t.engine.PullImage(ctx, ref); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Image  string `json:"image"`
		Pulled bool   `json:"pulled"`
	}{Image: ref, Pulled: true}), nil
}

type PushImage struct{ engine Engine }

func NewPushImage(engine Engine) *PushImage { return &PushImage{engine: engine} }

func (t *PushImage) Name() string  { return "push_image" }
func (t *PushImage) Title() string { return "Push Image" }
func (t *PushImage) Description() string {
	return "Pushes an image to its registry."
}

func (t *PushImage) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"image": {Type: "string"},
		},
		Required: []string{"image"},
	}
}

func (t *PushImage) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	ref := tools.StringArg(input, "image")
	if err := t.engine.PushImage(ctx, ref); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Image  string `json:"image"`
		Pushed bool   `json:"pushed"`
	}{Image: ref, Pushed: true}), nil
}

type BuildImage struct{ engine Engine }

func NewBuildImage(engine Engine) *BuildImage { return &BuildImage{engine: engine} }

func (t *BuildImage) Name() string  { return "build_image" }
func (t *BuildImage) Title() string { return "Build Image" }
func (t *BuildImage) Description() string {
	return "Builds an image from a local build context directory."
}

func (t *BuildImage) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"context_dir": {Type: "string"},
			"dockerfile":  {Type: "string", Description: "Path within the context, defaults to Dockerfile"},
			"tag":         {Type: "string"},
		},
		Required: []string{"context_dir", "tag"},
	}
}

func (t *BuildImage) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	tag := tools.StringArg(input, "tag")

	err := t.engine.BuildImage(ctx, tools.StringArg(input, "context_dir"), tools.StringArg(input, "dockerfile"), tag)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Tag   string `json:"tag"`
		Built bool   `json:"built"`
	}{Tag: tag, Built: true}), nil
}

type ListImages struct{ engine Engine }

func NewListImages(engine Engine) *ListImages { return &ListImages{engine: engine} }

func (t *ListImages) Name() string  { return "list_images" }
func (t *ListImages) Title() string { return "List Images" }
func (t *ListImages) Description() string {
	return "Lists images present on the engine."
}

func (t *ListImages) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}

func (t *ListImages) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	list, err := t.engine.ListImages(ctx)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Images []ImageSummary `json:"images"`
		Count  int            `json:"count"`
	}{Images: list, Count: len(list)}), nil
}

type RemoveImage struct{ engine Engine }

func NewRemoveImage(engine Engine) *RemoveImage { return &RemoveImage{engine: engine} }

func (t *RemoveImage) Name() string  { return "remove_image" }
func (t *RemoveImage) Title() string { return "Remove Image" }
func (t *RemoveImage) Description() string {
	return "Removes an image by ID or reference."
}

func (t *RemoveImage) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"image": {Type: "string"},
			"force": {Type: "boolean"},
		},
		Required: []string{"image"},
	}
}

func (t *RemoveImage) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	ref := tools.StringArg(input, "image")
	if err := t.engine.RemoveImage(ctx, ref, tools.BoolArg(input, "force")); err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		Image   string `json:"image"`
		Removed bool   `json:"removed"`
	}{Image: ref, Removed: true}), nil
}
