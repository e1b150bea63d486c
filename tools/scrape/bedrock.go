package scrape

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"mcpbridge/tools"
)

// defaultBedrockModelID is an inference profile ID, not the foundation
// model's ID. See https://docs.aws.amazon.com/bedrock/latest/userguide/inference-profiles.html.
const defaultBedrockModelID = "us.anthropic.claude-3-7-sonnet-20250219-v1:0"

type bedrockRuntimeClient interface {
	Converse(context.Context, *bedrockruntime.ConverseInput, ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// BedrockCompleter implements Completer over the Bedrock Converse API.
type BedrockCompleter struct {
	brc  bedrockRuntimeClient
	opts CompleterOptions
}

func NewBedrockCompleter(brc bedrockRuntimeClient, opts CompleterOptions) *BedrockCompleter {
	if opts.Model == "" {
		opts.Model = defaultBedrockModelID
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = defaultMaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	return &BedrockCompleter{brc: brc, opts: opts}
}

func (c *BedrockCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	in := &bedrockruntime.ConverseInput{
		ModelId: &c.opts.Model,
		System:  []types.SystemContentBlock{&types.SystemContentBlockMemberText{Value: system}},
		Messages: []types.Message{
			{
				Role:    types.ConversationRoleUser,
				Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: user}},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(c.opts.MaxTokens),
			Temperature: aws.Float32(c.opts.Temperature),
		},
	}

	out, err := c.brc.Converse(ctx, in)
	if err != nil {
		return "", tools.E(tools.KindModelError, "bedrock converse failed: %v", err)
	}

	switch out.StopReason {
	case types.StopReasonMaxTokens:
		return "", tools.E(tools.KindModelError, "model hit MaxTokens limit; consider increasing MaxTokens")
	case types.StopReasonContentFiltered, types.StopReasonGuardrailIntervened:
		return "", tools.E(tools.KindModelError, "model response blocked by Bedrock safety filters")
	}

	text := textFromOutput(out)
	if text == "" {
		return "", tools.E(tools.KindModelError, "bedrock converse returned no text content")
	}
	return text, nil
}

// textFromOutput joins the assistant's text blocks.
func textFromOutput(out *bedrockruntime.ConverseOutput) string {
	if out == nil || out.Output == nil {
		return ""
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok || len(msg.Value.Content) == 0 {
		return ""
	}

	texts := make([]string, 0, len(msg.Value.Content))
	for _, cb := range msg.Value.Content {
		if t, ok := cb.(*types.ContentBlockMemberText); ok && t.Value != "" {
			texts = append(texts, t.Value)
		}
	}
	return strings.Join(texts, "\n")
}
