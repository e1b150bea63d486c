package scrape

import "mcpbridge/tools"

// NewRegistry creates the tool registry for the scraper server over one
// fetcher and one completion backend.
func NewRegistry(fetcher PageFetcher, completer Completer) (*tools.Registry, error) {
	return tools.NewRegistry(
		NewFetchURL(fetcher),
		NewScrapePage(fetcher, completer),
	)
}
