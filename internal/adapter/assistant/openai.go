// Package assistant connects the chat feature to an OpenAI-compatible
// text-generation API.
package assistant

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jokobim12/tefanote/internal/infrastructure/metrics"
)

// Client implements usecase.ChatCompleter against any endpoint speaking
// the OpenAI chat-completions protocol. baseURL selects the provider;
// the default configuration targets Gemini's compatibility endpoint.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a new Client. baseURL may be empty for the upstream
// OpenAI endpoint.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Complete sends one system prompt and one user message and returns the
// first reply choice.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		metrics.AssistantChats.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		metrics.AssistantChats.WithLabelValues(metrics.OutcomeError).Inc()
		return "", fmt.Errorf("chat completion: empty response")
	}
	metrics.AssistantChats.WithLabelValues(metrics.OutcomeOK).Inc()
	return resp.Choices[0].Message.Content, nil
}
