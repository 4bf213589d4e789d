package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-screener/internal/config"
)

func newTestOpenAI(t *testing.T, handler http.HandlerFunc) TextGenerator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	generator, err := NewOpenAIService(config.LLMConfig{
		BaseURL: srv.URL + "/",
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
	})
	require.NoError(t, err)
	return generator
}

func TestOpenAIService_GenerateText(t *testing.T) {
	var body []byte
	generator := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"DevOps Engineer"}}]}`))
	})

	reply, err := generator.GenerateText(context.Background(), GenerationRequest{
		System:      "system prompt",
		User:        "user prompt",
		MaxTokens:   50,
		Temperature: 0.1,
	})

	require.NoError(t, err)
	assert.Equal(t, "DevOps Engineer", reply)

	assert.Equal(t, "gpt-4o-mini", gjson.GetBytes(body, "model").String())
	assert.Equal(t, int64(50), gjson.GetBytes(body, "max_tokens").Int())
	assert.InDelta(t, 0.1, gjson.GetBytes(body, "temperature").Float(), 1e-6)
	assert.Equal(t, "system", gjson.GetBytes(body, "messages.0.role").String())
	assert.Equal(t, "system prompt", gjson.GetBytes(body, "messages.0.content").String())
	assert.Equal(t, "user", gjson.GetBytes(body, "messages.1.role").String())
	assert.Equal(t, "user prompt", gjson.GetBytes(body, "messages.1.content").String())
}

func TestOpenAIService_ErrorStatus(t *testing.T) {
	calls := 0
	generator := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	_, err := generator.GenerateText(context.Background(), GenerationRequest{System: "s", User: "u"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM API error: 429")
	assert.Equal(t, 1, calls, "no retry on failure")
}

func TestOpenAIService_MissingContent(t *testing.T) {
	generator := newTestOpenAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := generator.GenerateText(context.Background(), GenerationRequest{System: "s", User: "u"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no message content")
}

func TestNewOpenAIService_RequiresKeyAndModel(t *testing.T) {
	_, err := NewOpenAIService(config.LLMConfig{Model: "gpt-4o-mini"})
	assert.Error(t, err)

	_, err = NewOpenAIService(config.LLMConfig{APIKey: "key"})
	assert.Error(t, err)
}

func TestNewTextGenerator_UnknownProvider(t *testing.T) {
	_, err := NewTextGenerator(&config.Config{LLM: config.LLMConfig{Provider: "acme"}}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}
