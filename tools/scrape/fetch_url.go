package scrape

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

type FetchURL struct{ fetcher PageFetcher }

func NewFetchURL(fetcher PageFetcher) *FetchURL { return &FetchURL{fetcher: fetcher} }

func (t *FetchURL) Name() string  { return "fetch_url" }
func (t *FetchURL) Title() string { return "Fetch URL" }
func (t *FetchURL) Description() string {
	return "Fetches a web page and returns its raw content."
}

func (t *FetchURL) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"url": {Type: "string"},
		},
		Required: []string{"url"},
	}
}

func (t *FetchURL) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	page, err := t.fetcher.Fetch(ctx, tools.StringArg(input, "url"))
	if err != nil {
		return nil, err
	}
	return tools.Payload(page), nil
}
