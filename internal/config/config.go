package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const DefaultPath = "config/config.toml"

type ServerConfig struct {
	Port                   int     `toml:"port"`
	RateLimit              float64 `toml:"rate_limit"`
	RateLimitBurst         int     `toml:"rate_limit_burst"`
	ReadTimeoutSeconds     int     `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int     `toml:"write_timeout_seconds"`
	IdleTimeoutSeconds     int     `toml:"idle_timeout_seconds"`
	ShutdownTimeoutSeconds int     `toml:"shutdown_timeout_seconds"`
}

type LLMConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	SystemPrompt   string `toml:"system_prompt"`
	MaxConcurrency int    `toml:"max_concurrency"`
}

// GenerationConfig holds the input framing and sampling parameters used for
// every paraphrase request.
type GenerationConfig struct {
	Prefix        string  `toml:"prefix"`
	Suffix        string  `toml:"suffix"`
	TopK          int     `toml:"top_k"`
	TopP          float32 `toml:"top_p"`
	Temperature   float32 `toml:"temperature"`
	DefaultMaxLen int     `toml:"default_max_len"`
	MaxOutputs    int     `toml:"max_outputs"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type Config struct {
	Server     ServerConfig     `toml:"server"`
	LLM        LLMConfig        `toml:"llm"`
	Generation GenerationConfig `toml:"generation"`
	Log        LogConfig        `toml:"log"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                   8080,
			RateLimit:              20,
			RateLimitBurst:         40,
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    120,
			IdleTimeoutSeconds:     120,
			ShutdownTimeoutSeconds: 30,
		},
		LLM: LLMConfig{
			Provider:       "echo",
			SystemPrompt:   "You rewrite sentences. Reply with exactly one paraphrase of the given sentence and nothing else.",
			MaxConcurrency: 1,
		},
		Generation: GenerationConfig{
			Prefix:        "paraphrase: ",
			Suffix:        " </s>",
			TopK:          120,
			TopP:          0.95,
			Temperature:   1.0,
			DefaultMaxLen: 256,
			MaxOutputs:    50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables when set.
func (c *Config) ApplyEnv() {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if s := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			c.Server.ShutdownTimeoutSeconds = secs
		}
	}
	if envProvider := os.Getenv("LLM_PROVIDER"); envProvider != "" {
		c.LLM.Provider = envProvider
	}
	if envModel := os.Getenv("LLM_MODEL"); envModel != "" {
		c.LLM.Model = envModel
	}
	if envAPIKey := os.Getenv("LLM_API_KEY"); envAPIKey != "" {
		c.LLM.APIKey = envAPIKey
	}
	if envBaseURL := os.Getenv("LLM_BASE_URL"); envBaseURL != "" {
		c.LLM.BaseURL = envBaseURL
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate rejects values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimit > 0 && c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("server.rate_limit_burst must be positive when rate_limit is set, got %d", c.Server.RateLimitBurst)
	}
	if c.LLM.MaxConcurrency <= 0 {
		return fmt.Errorf("llm.max_concurrency must be positive, got %d", c.LLM.MaxConcurrency)
	}
	if c.Generation.DefaultMaxLen <= 0 {
		return fmt.Errorf("generation.default_max_len must be positive, got %d", c.Generation.DefaultMaxLen)
	}
	if c.Generation.TopP < 0 || c.Generation.TopP > 1 {
		return fmt.Errorf("generation.top_p must be within [0, 1], got %v", c.Generation.TopP)
	}
	if c.Generation.TopK < 0 {
		return fmt.Errorf("generation.top_k must not be negative, got %d", c.Generation.TopK)
	}
	if c.Generation.MaxOutputs < 0 {
		return fmt.Errorf("generation.max_outputs must not be negative, got %d", c.Generation.MaxOutputs)
	}
	return nil
}
