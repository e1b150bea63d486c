// Package scrape exposes web-page retrieval and LLM extraction tools.
package scrape

import (
	"context"
	"io"
	"net/http"
	"time"

	"mcpbridge/tools"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Page is the fetched view of a URL.
type Page struct {
	URL         string `json:"url"`
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Content     string `json:"content"`
	Truncated   bool   `json:"truncated"`
}

// PageFetcher is the external client handle used to retrieve page content.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (Page, error)
}

// HTTPFetcher fetches pages over plain HTTP, capping the bytes read.
type HTTPFetcher struct {
	httpClient doer
	maxBytes   int
}

// NewHTTPFetcher returns a fetcher. A nil httpClient gets a default with a 30s
// timeout; maxBytes <= 0 defaults to 256 KiB.
func NewHTTPFetcher(httpClient doer, maxBytes int) *HTTPFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if maxBytes <= 0 {
		maxBytes = 256 << 10
	}
	return &HTTPFetcher{httpClient: httpClient, maxBytes: maxBytes}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, tools.E(tools.KindFetchError, "invalid url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", "mcpbridge-scraper/0.1")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Page{}, tools.E(tools.KindFetchError, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Page{}, tools.E(tools.KindFetchError, "fetch %s returned status %d", url, resp.StatusCode)
	}

	// Read one byte past the cap to detect truncation.
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.maxBytes)+1))
	if err != nil {
		return Page{}, tools.E(tools.KindFetchError, "failed to read body of %s: %v", url, err)
	}

	page := Page{
		URL:         url,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if len(body) > f.maxBytes {
		page.Content = string(body[:f.maxBytes])
		page.Truncated = true
	} else {
		page.Content = string(body)
	}
	return page, nil
}
