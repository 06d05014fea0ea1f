// Package llm abstracts chat completion providers behind a small client.
package llm

import "context"

// Message roles on the chat completion wire format
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry in a conversation transcript
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewSystemMessage creates a system instruction message
func NewSystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Options are generation parameters for a single chat call
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int64
}

// Option configures a chat call
type Option func(*Options)

// WithModel sets the model identifier
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithTemperature sets the sampling temperature
func WithTemperature(temperature float64) Option {
	return func(o *Options) {
		o.Temperature = temperature
	}
}

// WithMaxTokens caps the generated output length
func WithMaxTokens(maxTokens int64) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

// Usage reports token consumption for a chat call
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Response is the result of a chat completion call
type Response struct {
	Message Message `json:"message"`
	Usage   Usage   `json:"usage"`
}

// Provider is implemented by concrete chat completion backends
type Provider interface {
	Chat(ctx context.Context, messages []Message, options *Options) (*Response, error)
}

// Client wraps a Provider and applies per-call options
type Client struct {
	provider Provider
}

// NewClient creates a client backed by the given provider
func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}

// Chat sends the transcript to the provider and returns the generated message
func (c *Client) Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return c.provider.Chat(ctx, messages, options)
}
