package scrape

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"mcpbridge/tools"
)

const defaultInstructions = "Summarize the page: main topic, key points, and any notable links or data."

type ScrapePage struct {
	fetcher   PageFetcher
	completer Completer
}

func NewScrapePage(fetcher PageFetcher, completer Completer) *ScrapePage {
	return &ScrapePage{fetcher: fetcher, completer: completer}
}

func (t *ScrapePage) Name() string  { return "scrape_page" }
func (t *ScrapePage) Title() string { return "Scrape Page" }
func (t *ScrapePage) Description() string {
	return "Fetches a web page and runs an LLM extraction over its content per the given instructions."
}

func (t *ScrapePage) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"url":          {Type: "string"},
			"instructions": {Type: "string", Description: "What to extract from the page"},
		},
		Required: []string{"url"},
	}
}

func (t *ScrapePage) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	page, err := t.fetcher.Fetch(ctx, tools.StringArg(input, "url"))
	if err != nil {
		return nil, err
	}

	instructions := tools.StringArg(input, "instructions")
	if instructions == "" {
		instructions = defaultInstructions
	}

	user := fmt.Sprintf("Instructions: %s\n\nPage URL: %s\nPage content:\n%s", instructions, page.URL, page.Content)
	extraction, err := t.completer.Complete(ctx, extractionSystemPrompt, user)
	if err != nil {
		return nil, err
	}

	return tools.Payload(struct {
		URL        string `json:"url"`
		Extraction string `json:"extraction"`
		Truncated  bool   `json:"truncated"`
	}{URL: page.URL, Extraction: extraction, Truncated: page.Truncated}), nil
}
