package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAIClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4.1-nano",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient(&config.OpenAIConfig{APIKey: "k"}).Configured())
	assert.False(t, NewClient(&config.OpenAIConfig{}).Configured())
}

func TestComplete(t *testing.T) {
	client := newTestAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model       string            `json:"model"`
			Messages    []map[string]string `json:"messages"`
			Temperature float64           `json:"temperature"`
			MaxTokens   int               `json:"max_tokens"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4.1-nano", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0]["role"])
		assert.Equal(t, "be brief", req.Messages[0]["content"])
		assert.Equal(t, "user", req.Messages[1]["role"])
		assert.InDelta(t, 0.3, req.Temperature, 0.001)
		assert.Equal(t, 150, req.MaxTokens)

		w.Write([]byte(`{"choices":[{"message":{"content":"hello"}}]}`))
	})

	content, err := client.Complete(context.Background(), "be brief", "hi", 0.3, 150)
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestCompleteErrorStatus(t *testing.T) {
	client := newTestAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7, 800)
	assert.ErrorContains(t, err, "status 429")
}

func TestCompleteEmptyChoices(t *testing.T) {
	client := newTestAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7, 800)
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestCompleteEmptyContent(t *testing.T) {
	client := newTestAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7, 800)
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestCompleteErrorStatusIsNotEmptyReply(t *testing.T) {
	client := newTestAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Complete(context.Background(), "s", "u", 0.7, 800)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyReply)
}
