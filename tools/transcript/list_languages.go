package transcript

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type ListLanguages struct{ source CaptionSource }

func NewListLanguages(source CaptionSource) *ListLanguages {
	return &ListLanguages{source: source}
}

func (t *ListLanguages) Name() string  { return "list_languages" }
func (t *ListLanguages) Title() string { return "List Caption Languages" }
func (t *ListLanguages) Description() string {
	return "Lists the caption tracks available for a YouTube video."
}

func (t *ListLanguages) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"video": {Type: "string", Description: "Video ID or any YouTube URL"},
		},
		Required: []string{"video"},
	}
}

func (t *ListLanguages) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	videoID := ExtractVideoID(tools.StringArg(input, "video"))

	trs, err := t.source.ListTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		VideoID string  `json:"video_id"`
		Tracks  []Track `json:"tracks"`
		Count   int     `json:"count"`
	}{VideoID: videoID, Tracks: trs, Count: len(trs)}), nil
}
