package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client       *openai.Client
	model        string
	systemPrompt string
	name         string
}

var _ Sampler = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey string, model string, baseURL string, systemPrompt string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
		name:         "openai",
	}
}

func (c *OpenAIClient) Name() string {
	return c.name
}

// Sample asks for opts.Count choices in a single chat completion. The chat
// API has no top-k or early-stopping knobs; those options are ignored.
func (c *OpenAIClient) Sample(ctx context.Context, prompt string, opts SampleOptions) ([]string, error) {
	var messages []openai.ChatCompletionMessage
	if c.systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: c.systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		N:           opts.Count,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
		Temperature: opts.Temperature,
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: chat completion failed: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: no response choices", c.name)
	}

	out := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		out = append(out, choice.Message.Content)
	}
	return out, nil
}
