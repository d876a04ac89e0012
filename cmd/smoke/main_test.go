package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/paraphrase/internal/config"
	"github.com/agenthands/paraphrase/internal/core"
	"github.com/agenthands/paraphrase/internal/llm"
	"github.com/agenthands/paraphrase/internal/server"
)

func TestRunSmoke(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	mock := &llm.MockSampler{Response: []string{"The sky looks blue.", "Blue is the sky.", "The sky is blue."}}
	srv := httptest.NewServer(server.NewServer(core.NewParaphraser(mock, cfg), cfg).SetupRouter())
	defer srv.Close()

	baseURL = srv.URL
	sentence = "The sky is blue."
	nOutput = 3

	require.NoError(t, runSmoke(srv.Client()))
}

func TestRunSmoke_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	baseURL = srv.URL
	err := runSmoke(&http.Client{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
}
