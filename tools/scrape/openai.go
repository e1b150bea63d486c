package scrape

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"mcpbridge/tools"
)

const (
	defaultOpenAIModel = openai.GPT4oMini

	// Low temperature keeps extraction output deterministic.
	defaultMaxTokens   = 1024
	defaultTemperature = 0.2
)

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAICompleter implements Completer over the OpenAI chat completions API.
type OpenAICompleter struct {
	client chatCompleter
	opts   CompleterOptions
}

func NewOpenAICompleter(client chatCompleter, opts CompleterOptions) *OpenAICompleter {
	if opts.Model == "" {
		opts.Model = defaultOpenAIModel
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	return &OpenAICompleter{client: client, opts: opts}
}

func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.opts.Model,
		MaxTokens:   int(c.opts.MaxTokens),
		Temperature: c.opts.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", tools.E(tools.KindModelError, "openai completion failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", tools.E(tools.KindModelError, "openai completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
