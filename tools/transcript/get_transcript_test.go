package transcript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

// fakeSource is an in-memory CaptionSource keyed by video ID and language.
type fakeSource struct {
	tracks      map[string][]Track
	transcripts map[string]Transcript
}

func (f *fakeSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	trs, ok := f.tracks[videoID]
	if !ok || len(trs) == 0 {
		return nil, tools.E(tools.KindNotFound, "no captions available for video %s", videoID)
	}
	return trs, nil
}

func (f *fakeSource) Fetch(ctx context.Context, videoID, language string) (Transcript, error) {
	trs, err := f.ListTracks(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}
	if language == "" {
		language = trs[0].LanguageCode
	}
	tr, ok := f.transcripts[videoID+"/"+language]
	if !ok {
		return Transcript{}, tools.E(tools.KindNotFound, "no %q captions for video %s", language, videoID)
	}
	return tr, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		tracks: map[string][]Track{
			"vid1": {
				{Language: "English", LanguageCode: "en"},
				{Language: "Spanish", LanguageCode: "es", AutoGenerated: true},
			},
			"vid2": {
				{Language: "Spanish", LanguageCode: "es"},
			},
		},
		transcripts: map[string]Transcript{
			"vid1/en": {
				VideoID:  "vid1",
				Language: "en",
				Segments: []Segment{
					{Start: 0, Duration: 2, Text: "first line"},
					{Start: 2, Duration: 2, Text: "second line"},
				},
			},
			"vid2/es": {
				VideoID:  "vid2",
				Language: "es",
				Segments: []Segment{
					{Start: 0, Duration: 3, Text: "hola"},
				},
			},
		},
	}
}

func TestGetTranscript_Run(t *testing.T) {
	tool := NewGetTranscript(newFakeSource(), "en")

	t.Run("by video ID with default language", func(t *testing.T) {
		result, err := tool.Run(context.Background(), map[string]any{"video": "vid1"})
		require.NoError(t, err)

		assert.Equal(t, "vid1", result["video_id"])
		assert.Equal(t, "en", result["language"])
		assert.Equal(t, "first line second line", result["text"])
		assert.Equal(t, 2.0, result["segment_count"])
	})

	t.Run("by watch URL", func(t *testing.T) {
		result, err := tool.Run(context.Background(), map[string]any{
			"video": "https://www.youtube.com/watch?v=vid1",
		})
		require.NoError(t, err)
		assert.Equal(t, "vid1", result["video_id"])
	})

	t.Run("default language missing falls back to first track", func(t *testing.T) {
		result, err := tool.Run(context.Background(), map[string]any{"video": "vid2"})
		require.NoError(t, err)

		assert.Equal(t, "es", result["language"])
		assert.Equal(t, "hola", result["text"])
	})

	t.Run("explicit language missing stays not found", func(t *testing.T) {
		_, err := tool.Run(context.Background(), map[string]any{"video": "vid2", "language": "en"})
		require.Error(t, err)
		assert.Equal(t, tools.KindNotFound, tools.KindOf(err))
	})

	t.Run("language without a track", func(t *testing.T) {
		_, err := tool.Run(context.Background(), map[string]any{"video": "vid1", "language": "de"})
		require.Error(t, err)
		assert.Equal(t, tools.KindNotFound, tools.KindOf(err))
	})

	t.Run("unknown video", func(t *testing.T) {
		_, err := tool.Run(context.Background(), map[string]any{"video": "missing"})
		require.Error(t, err)
		assert.Equal(t, tools.KindNotFound, tools.KindOf(err))
	})
}

func TestListLanguages_Run(t *testing.T) {
	tool := NewListLanguages(newFakeSource())

	result, err := tool.Run(context.Background(), map[string]any{"video": "vid1"})
	require.NoError(t, err)

	assert.Equal(t, 2.0, result["count"])
	trs := result["tracks"].([]any)
	require.Len(t, trs, 2)
	assert.Equal(t, "en", trs[0].(map[string]any)["language_code"])
	assert.Equal(t, true, trs[1].(map[string]any)["auto_generated"])
}
