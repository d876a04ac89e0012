//go:build integration

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/paraphrase/internal/config"
	"github.com/agenthands/paraphrase/internal/core"
	"github.com/agenthands/paraphrase/internal/core/params"
	"github.com/agenthands/paraphrase/internal/llm"
	"github.com/agenthands/paraphrase/internal/server"
)

func liveConfig(t *testing.T) *config.Config {
	t.Helper()

	// Load environment if present
	_ = godotenv.Load("../../.env")

	cfg, err := config.Load("../../" + config.DefaultPath)
	require.NoError(t, err)
	cfg.ApplyEnv()

	if cfg.LLM.Provider == "" || cfg.LLM.Provider == "echo" {
		t.Skip("Skipping integration test: LLM_PROVIDER not set to a real model provider")
	}
	if cfg.LLM.Provider != "ollama" && cfg.LLM.APIKey == "" {
		t.Skip("Skipping integration test: LLM_API_KEY not set")
	}
	return cfg
}

func TestParaphraseAgainstLiveModel(t *testing.T) {
	cfg := liveConfig(t)
	ctx := context.Background()

	sampler, err := llm.NewSampler(ctx, cfg.LLM, cfg.Generation)
	require.NoError(t, err)

	p := core.NewParaphraser(sampler, cfg)

	sentence := "The weather today is remarkably pleasant."
	out, err := p.Paraphrase(ctx, params.Raw{Sentence: sentence, NOutput: "3", MaxLen: "64"})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(out), 3)
	seen := map[string]bool{}
	for _, s := range out {
		t.Logf("paraphrase: %s", s)
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate paraphrase %q", s)
		assert.NotEqual(t, strings.ToLower(sentence), strings.ToLower(s))
		seen[s] = true
	}
}

func TestStyleEndpointAgainstLiveModel(t *testing.T) {
	cfg := liveConfig(t)
	gin.SetMode(gin.TestMode)

	sampler, err := llm.NewSampler(context.Background(), cfg.LLM, cfg.Generation)
	require.NoError(t, err)

	srv := httptest.NewServer(server.NewServer(core.NewParaphraser(sampler, cfg), cfg).SetupRouter())
	defer srv.Close()

	q := url.Values{"sentence": {"Cats like to sleep in the sun."}, "n_output": {"2"}}
	resp, err := http.Get(srv.URL + "/style?" + q.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
