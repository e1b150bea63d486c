package transcript

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type GetTranscript struct {
	source          CaptionSource
	defaultLanguage string
}

func NewGetTranscript(source CaptionSource, defaultLanguage string) *GetTranscript {
	return &GetTranscript{source: source, defaultLanguage: defaultLanguage}
}

func (t *GetTranscript) Name() string  { return "get_transcript" }
func (t *GetTranscript) Title() string { return "Get Transcript" }
func (t *GetTranscript) Description() string {
	return "Retrieves the caption transcript of a YouTube video by ID or URL."
}

func (t *GetTranscript) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"video":    {Type: "string", Description: "Video ID or any YouTube URL"},
			"language": {Type: "string", Description: "Caption language code, e.g. en"},
		},
		Required: []string{"video"},
	}
}

func (t *GetTranscript) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	videoID := ExtractVideoID(tools.StringArg(input, "video"))

	language := tools.StringArg(input, "language")
	explicit := language != ""
	if !explicit {
		language = t.defaultLanguage
	}

	tr, err := t.source.Fetch(ctx, videoID, language)
	if err != nil && !explicit && tools.KindOf(err) == tools.KindNotFound {
		// The default language is a preference; a video captioned only in
		// other languages still has a transcript, so take the first track.
		tr, err = t.source.Fetch(ctx, videoID, "")
	}
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		VideoID      string    `json:"video_id"`
		Language     string    `json:"language"`
		Text         string    `json:"text"`
		Segments     []Segment `json:"segments"`
		SegmentCount int       `json:"segment_count"`
	}{
		VideoID:      tr.VideoID,
		Language:     tr.Language,
		Text:         tr.Text(),
		Segments:     tr.Segments,
		SegmentCount: len(tr.Segments),
	}), nil
}
