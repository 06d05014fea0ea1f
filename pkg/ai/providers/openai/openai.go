// Package openai implements llm.Provider on top of the official OpenAI SDK.
package openai

import (
	"context"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/logx"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Provider talks to the OpenAI chat completions API
type Provider struct {
	client openai.Client
}

// NewOpenAIProvider creates a provider authenticated with the given API key
func NewOpenAIProvider(apiKey string) *Provider {
	return &Provider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Chat sends the transcript to OpenAI and returns the first choice.
// Transport failures, non-success statuses and empty responses surface as
// upstream errors; refusals returned as ordinary message content pass through.
func (p *Provider) Chat(ctx context.Context, messages []llm.Message, options *llm.Options) (*llm.Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(options.Model),
		Messages: toOpenAIMessages(messages),
	}
	if options.Temperature > 0 {
		params.Temperature = openai.Float(options.Temperature)
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.Int(options.MaxTokens)
	}

	logx.WithFields(logx.Fields{
		"model":         options.Model,
		"message_count": len(messages),
	}).Debug("Calling OpenAI chat completions")

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logx.WithError(err).Error("OpenAI chat completion failed")
		return nil, llm.ErrUpstreamFailure(err)
	}

	if len(completion.Choices) == 0 {
		logx.Warn("OpenAI chat completion returned no choices")
		return nil, llm.ErrEmptyCompletion()
	}

	return &llm.Response{
		Message: llm.NewAssistantMessage(completion.Choices[0].Message.Content),
		Usage: llm.Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

func toOpenAIMessages(messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case llm.RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			out = append(out, openai.UserMessage(msg.Content))
		}
	}
	return out
}
