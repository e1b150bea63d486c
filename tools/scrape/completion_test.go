package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpbridge/tools"
)

type stubChatCompleter struct {
	resp openai.ChatCompletionResponse
	err  error
	req  openai.ChatCompletionRequest
}

func (s *stubChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.req = req
	return s.resp, s.err
}

func TestOpenAICompleter_Complete(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		stub := &stubChatCompleter{
			resp: openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "extracted"}},
				},
			},
		}
		c := NewOpenAICompleter(stub, CompleterOptions{Model: "gpt-4o-mini"})

		got, err := c.Complete(context.Background(), "sys", "usr")
		require.NoError(t, err)
		assert.Equal(t, "extracted", got)

		assert.Equal(t, "gpt-4o-mini", stub.req.Model)
		require.Len(t, stub.req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, stub.req.Messages[0].Role)
		assert.Equal(t, "sys", stub.req.Messages[0].Content)
		assert.Equal(t, openai.ChatMessageRoleUser, stub.req.Messages[1].Role)
	})

	t.Run("API error", func(t *testing.T) {
		c := NewOpenAICompleter(&stubChatCompleter{err: errors.New("429 too many requests")}, CompleterOptions{})

		_, err := c.Complete(context.Background(), "sys", "usr")
		require.Error(t, err)
		assert.Equal(t, tools.KindModelError, tools.KindOf(err))
	})

	t.Run("no choices", func(t *testing.T) {
		c := NewOpenAICompleter(&stubChatCompleter{}, CompleterOptions{})

		_, err := c.Complete(context.Background(), "sys", "usr")
		require.Error(t, err)
		assert.Equal(t, tools.KindModelError, tools.KindOf(err))
	})
}

type stubBedrockClient struct {
	out *bedrockruntime.ConverseOutput
	err error
}

func (s *stubBedrockClient) Converse(ctx context.Context, in *bedrockruntime.ConverseInput, opts ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	return s.out, s.err
}

func converseText(stop brtypes.StopReason, texts ...string) *bedrockruntime.ConverseOutput {
	blocks := make([]brtypes.ContentBlock, 0, len(texts))
	for _, txt := range texts {
		blocks = append(blocks, &brtypes.ContentBlockMemberText{Value: txt})
	}
	return &bedrockruntime.ConverseOutput{
		StopReason: stop,
		Output: &brtypes.ConverseOutputMemberMessage{
			Value: brtypes.Message{
				Role:    brtypes.ConversationRoleAssistant,
				Content: blocks,
			},
		},
	}
}

func TestBedrockCompleter_Complete(t *testing.T) {
	tests := []struct {
		name     string
		out      *bedrockruntime.ConverseOutput
		err      error
		want     string
		wantKind tools.Kind
	}{
		{
			name: "text blocks joined",
			out:  converseText(brtypes.StopReasonEndTurn, "first", "second"),
			want: "first\nsecond",
		},
		{
			name:     "converse error",
			err:      errors.New("throttled"),
			wantKind: tools.KindModelError,
		},
		{
			name:     "max tokens stop",
			out:      converseText(brtypes.StopReasonMaxTokens, "partial"),
			wantKind: tools.KindModelError,
		},
		{
			name:     "guardrail intervened",
			out:      converseText(brtypes.StopReasonGuardrailIntervened),
			wantKind: tools.KindModelError,
		},
		{
			name:     "empty output",
			out:      &bedrockruntime.ConverseOutput{StopReason: brtypes.StopReasonEndTurn},
			wantKind: tools.KindModelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBedrockCompleter(&stubBedrockClient{out: tt.out, err: tt.err}, CompleterOptions{})

			got, err := c.Complete(context.Background(), "sys", "usr")
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, tools.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
