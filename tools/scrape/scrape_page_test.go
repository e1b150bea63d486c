package scrape

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

// fakeFetcher serves canned pages keyed by URL.
type fakeFetcher struct {
	pages map[string]Page
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) (Page, error) {
	page, ok := f.pages[url]
	if !ok {
		return Page{}, tools.E(tools.KindFetchError, "failed to fetch %s: connection refused", url)
	}
	return page, nil
}

// fakeCompleter records the prompt and returns a fixed extraction.
type fakeCompleter struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestScrapePage_Run(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]Page{
		"https://example.com/pricing": {
			URL:     "https://example.com/pricing",
			Status:  200,
			Content: "<html>Pro plan: $49/month</html>",
		},
		"https://example.com/long": {
			URL:       "https://example.com/long",
			Status:    200,
			Content:   "cut off here",
			Truncated: true,
		},
	}}

	t.Run("extraction flows instructions and content to the model", func(t *testing.T) {
		completer := &fakeCompleter{response: "The Pro plan costs $49/month."}
		tool := NewScrapePage(fetcher, completer)

		result, err := tool.Run(context.Background(), map[string]any{
			"url":          "https://example.com/pricing",
			"instructions": "Extract the price of the Pro plan.",
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"url":        "https://example.com/pricing",
			"extraction": "The Pro plan costs $49/month.",
			"truncated":  false,
		}, result)

		assert.Contains(t, completer.lastUser, "Extract the price of the Pro plan.")
		assert.Contains(t, completer.lastUser, "Pro plan: $49/month")
		assert.NotEmpty(t, completer.lastSystem)
	})

	t.Run("missing instructions fall back to a summary prompt", func(t *testing.T) {
		completer := &fakeCompleter{response: "A pricing page."}
		tool := NewScrapePage(fetcher, completer)

		_, err := tool.Run(context.Background(), map[string]any{"url": "https://example.com/pricing"})
		require.NoError(t, err)
		assert.Contains(t, completer.lastUser, defaultInstructions)
	})

	t.Run("truncation is surfaced", func(t *testing.T) {
		tool := NewScrapePage(fetcher, &fakeCompleter{response: "partial"})

		result, err := tool.Run(context.Background(), map[string]any{"url": "https://example.com/long"})
		require.NoError(t, err)
		assert.Equal(t, true, result["truncated"])
	})

	t.Run("fetch failure", func(t *testing.T) {
		completer := &fakeCompleter{response: "unused"}
		tool := NewScrapePage(fetcher, completer)

		_, err := tool.Run(context.Background(), map[string]any{"url": "https://example.com/down"})
		require.Error(t, err)
		assert.Equal(t, tools.KindFetchError, tools.KindOf(err))
		assert.Empty(t, completer.lastUser, "fetch failure must not reach the model")
	})

	t.Run("model failure", func(t *testing.T) {
		tool := NewScrapePage(fetcher, &fakeCompleter{err: tools.E(tools.KindModelError, "rate limited")})

		_, err := tool.Run(context.Background(), map[string]any{"url": "https://example.com/pricing"})
		require.Error(t, err)
		assert.Equal(t, tools.KindModelError, tools.KindOf(err))
	})
}

func TestFetchURL_Run(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]Page{
		"https://example.com/": {
			URL:         "https://example.com/",
			Status:      200,
			ContentType: "text/html",
			Content:     strings.Repeat("a", 10),
		},
	}}
	tool := NewFetchURL(fetcher)

	result, err := tool.Run(context.Background(), map[string]any{"url": "https://example.com/"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/", result["url"])
	assert.Equal(t, 200.0, result["status"])
	assert.Equal(t, "text/html", result["content_type"])
	assert.Equal(t, strings.Repeat("a", 10), result["content"])
	assert.Equal(t, false, result["truncated"])
}
