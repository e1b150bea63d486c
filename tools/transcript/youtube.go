// Package transcript exposes YouTube caption retrieval tools over a minimal
// HTTP client for the watch-page caption track index and the timedtext feed.
package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mcpbridge/tools"
)

const defaultBaseURL = "https://www.youtube.com"

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Track is one available caption track for a video.
type Track struct {
	Language      string `json:"language"`
	LanguageCode  string `json:"language_code"`
	AutoGenerated bool   `json:"auto_generated"`

	baseURL string
}

// Segment is one timed caption line.
type Segment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Transcript is the full caption text of a video in one language.
type Transcript struct {
	VideoID  string    `json:"video_id"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments"`
}

// Text joins all segments into one block.
func (t Transcript) Text() string {
	parts := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

// CaptionSource is the external client handle behind the transcript tools.
type CaptionSource interface {
	ListTracks(ctx context.Context, videoID string) ([]Track, error)
	Fetch(ctx context.Context, videoID, language string) (Transcript, error)
}

// YouTubeClient is a minimal HTTP client for YouTube captions.
type YouTubeClient struct {
	baseURL    string
	httpClient doer
}

// NewYouTubeClient returns a new client. If httpClient is nil, a default with
// a 15s timeout is used.
func NewYouTubeClient(baseURL string, httpClient doer) *YouTubeClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &YouTubeClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// ListTracks returns the caption tracks advertised on the video's watch page.
func (c *YouTubeClient) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/watch?v=%s", c.baseURL, url.QueryEscape(videoID)))
	if err != nil {
		return nil, err
	}
	return parseCaptionTracks(body, videoID)
}

// Fetch retrieves the transcript for one language. An empty language picks the
// first available track.
func (c *YouTubeClient) Fetch(ctx context.Context, videoID, language string) (Transcript, error) {
	trs, err := c.ListTracks(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}

	track := trs[0]
	if language != "" {
		found := false
		for _, tr := range trs {
			if tr.LanguageCode == language {
				track = tr
				found = true
				break
			}
		}
		if !found {
			return Transcript{}, tools.E(tools.KindNotFound, "no %q captions for video %s", language, videoID)
		}
	}

	feed, err := c.get(ctx, track.baseURL)
	if err != nil {
		return Transcript{}, err
	}

	segments, err := parseTimedText(feed)
	if err != nil {
		return Transcript{}, fmt.Errorf("failed to parse caption feed for video %s: %w", videoID, err)
	}

	return Transcript{VideoID: videoID, Language: track.LanguageCode, Segments: segments}, nil
}

func (c *YouTubeClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("caption request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("caption request status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

type captionTrack struct {
	BaseURL string `json:"baseUrl"`
	Name    struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

// parseCaptionTracks extracts the captionTracks array embedded in the watch
// page's player response JSON.
func parseCaptionTracks(page []byte, videoID string) ([]Track, error) {
	const marker = `"captionTracks":`
	idx := strings.Index(string(page), marker)
	if idx < 0 {
		return nil, tools.E(tools.KindNotFound, "no captions available for video %s", videoID)
	}

	dec := json.NewDecoder(strings.NewReader(string(page[idx+len(marker):])))
	var raw []captionTrack
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse caption track index for video %s: %w", videoID, err)
	}
	if len(raw) == 0 {
		return nil, tools.E(tools.KindNotFound, "no captions available for video %s", videoID)
	}

	trs := make([]Track, 0, len(raw))
	for _, ct := range raw {
		trs = append(trs, Track{
			Language:      ct.Name.SimpleText,
			LanguageCode:  ct.LanguageCode,
			AutoGenerated: ct.Kind == "asr",
			baseURL:       ct.BaseURL,
		})
	}
	return trs, nil
}

type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Value string  `xml:",chardata"`
	} `xml:"text"`
}

func parseTimedText(feed []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(feed, &tt); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(tt.Texts))
	for _, txt := range tt.Texts {
		// The feed double-escapes entities; the XML decoder only unwinds one layer.
		text := strings.TrimSpace(html.UnescapeString(txt.Value))
		if text == "" {
			continue
		}
		segments = append(segments, Segment{Start: txt.Start, Duration: txt.Dur, Text: text})
	}
	return segments, nil
}

// ExtractVideoID accepts a bare video ID or any of the common YouTube URL
// shapes and returns the ID.
func ExtractVideoID(raw string) string {
	if !strings.Contains(raw, "/") && !strings.Contains(raw, "?") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if id := u.Query().Get("v"); id != "" {
		return id
	}

	// youtu.be/<id>, /embed/<id>, /shorts/<id>
	path := strings.Trim(u.Path, "/")
	parts := strings.Split(path, "/")
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return raw
}
