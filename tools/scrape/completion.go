package scrape

import "context"

// Completer issues one chat-completion call against an LLM backend.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CompleterOptions are shared across backends.
type CompleterOptions struct {
	Model       string
	MaxTokens   int32
	Temperature float32
}

const extractionSystemPrompt = `You are a web content extraction assistant. You receive the raw content of a web page and instructions describing what to extract. Respond with the extracted information only, as concise structured text. If the page does not contain the requested information, say so.`
