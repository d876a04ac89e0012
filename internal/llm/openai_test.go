package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Sample(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "The sky appears blue."}, "finish_reason": "stop"},
				{"index": 1, "message": {"role": "assistant", "content": "Blue is the sky."}, "finish_reason": "stop"}
			]
		}`)
	}))
	defer srv.Close()

	c := NewOpenAIClient("test-key", "gpt-4o-mini", srv.URL, "one paraphrase only")
	out, err := c.Sample(context.Background(), "paraphrase: The sky is blue. </s>", SampleOptions{
		Count:       2,
		MaxTokens:   64,
		TopK:        120,
		TopP:        0.95,
		Temperature: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"The sky appears blue.", "Blue is the sky."}, out)
	assert.Equal(t, "openai", c.Name())

	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.EqualValues(t, 2, got["n"])
	assert.EqualValues(t, 64, got["max_tokens"])
	assert.InDelta(t, 0.95, got["top_p"], 1e-6)

	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "paraphrase: The sky is blue. </s>", messages[1].(map[string]any)["content"])
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "x", "object": "chat.completion", "choices": []}`)
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", "m", srv.URL, "")
	_, err := c.Sample(context.Background(), "p", SampleOptions{Count: 1, MaxTokens: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response choices")
}

func TestOpenAIClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "model crashed", "type": "server_error"}}`)
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", "m", srv.URL, "")
	_, err := c.Sample(context.Background(), "p", SampleOptions{Count: 1, MaxTokens: 8})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat completion failed")
}
