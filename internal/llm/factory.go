package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agenthands/paraphrase/internal/config"
)

// NewSampler builds the model client named by cfg.Provider. It is called once
// at startup; the returned Sampler is shared by every request.
func NewSampler(ctx context.Context, cfg config.LLMConfig, gen config.GenerationConfig) (Sampler, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.SystemPrompt), nil

	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an api key")
		}
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.SystemPrompt)

	case "claude":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("claude provider requires an api key")
		}
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.SystemPrompt), nil

	case "ollama":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		slog.Info("initializing ollama via openai-compatible api", "baseURL", baseURL, "model", cfg.Model)

		// Ollama ignores the key but the client requires one.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}

		c := NewOpenAIClient(apiKey, cfg.Model, baseURL, cfg.SystemPrompt)
		c.name = "ollama"
		return c, nil

	case "echo", "":
		return NewEchoClient(gen.Prefix, gen.Suffix), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", provider)
	}
}
