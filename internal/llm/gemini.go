package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini rejects candidate counts above this value.
const maxGeminiCandidates = 8

type GeminiClient struct {
	client       *genai.Client
	model        string
	systemPrompt string
}

var _ Sampler = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey string, model string, systemPrompt string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}, nil
}

func (c *GeminiClient) Name() string {
	return "gemini"
}

func (c *GeminiClient) Sample(ctx context.Context, prompt string, opts SampleOptions) ([]string, error) {
	model := c.client.GenerativeModel(c.model)
	configureModel(model, opts, c.systemPrompt)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content failed: %w", err)
	}

	var out []string
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		out = append(out, sb.String())
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("gemini: no response candidates or content")
	}
	return out, nil
}

// configureModel maps sampling options onto the model's generation config.
func configureModel(model *genai.GenerativeModel, opts SampleOptions, systemPrompt string) {
	model.SetCandidateCount(int32(min(max(opts.Count, 1), maxGeminiCandidates)))
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if opts.TopK > 0 {
		model.SetTopK(int32(opts.TopK))
	}
	if opts.TopP > 0 {
		model.SetTopP(opts.TopP)
	}
	if opts.Temperature > 0 {
		model.SetTemperature(opts.Temperature)
	}
	if systemPrompt != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	}
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
