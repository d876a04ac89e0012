package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

type ClaudeClient struct {
	client       *anthropic.Client
	model        string
	systemPrompt string
}

var _ Sampler = (*ClaudeClient)(nil)

func NewClaudeClient(apiKey string, model string, baseURL string, systemPrompt string) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(apiKey, opts...)

	return &ClaudeClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (c *ClaudeClient) Name() string {
	return "claude"
}

// Sample returns a single message per call; the Messages API has no
// multiple-choice parameter.
func (c *ClaudeClient) Sample(ctx context.Context, prompt string, opts SampleOptions) ([]string, error) {
	req := anthropic.MessagesRequest{
		Model:  anthropic.Model(c.model),
		System: c.systemPrompt,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
		MaxTokens: opts.MaxTokens,
	}
	if opts.TopK > 0 {
		topK := opts.TopK
		req.TopK = &topK
	}
	if opts.TopP > 0 {
		topP := opts.TopP
		req.TopP = &topP
	}

	resp, err := c.client.CreateMessages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("claude: create message failed: %w", err)
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return []string{*resp.Content[0].Text}, nil
	}
	return nil, fmt.Errorf("claude: no response content")
}
