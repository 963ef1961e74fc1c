package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	for _, p := range []string{ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderCerebras} {
		_, err := NewClient(p, "")
		assert.Error(t, err, p)

		c, err := NewClient(p, "key")
		assert.NoError(t, err, p)
		assert.NotNil(t, c, p)
	}

	c, err := NewClient(ProviderMock, "")
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, c)

	_, err = NewClient("parrot", "key")
	assert.Error(t, err)
}

func TestGeminiClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "paint", req.Contents[0].Parts[0].Text)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Score: 0.9 \n"}]}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(ProviderGemini, "secret", WithBaseURL(srv.URL), WithModel("gemini-test"))
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "paint")
	require.NoError(t, err)
	assert.Equal(t, "Score: 0.9", out)
}

func TestGeminiClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := NewClient(ProviderGemini, "secret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "paint")
	assert.ErrorContains(t, err, "429")
}

func TestAnthropicClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, anthropicModel, req.Model)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"a poem"}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(ProviderAnthropic, "secret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "write")
	require.NoError(t, err)
	assert.Equal(t, "a poem", out)
}

func TestAnthropicClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[],"error":{"type":"overloaded_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	c, err := NewClient(ProviderAnthropic, "secret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "write")
	assert.EqualError(t, err, "anthropic: overloaded")
}

func TestGeminiClient_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c, err := NewClient(ProviderGemini, "secret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "paint")
	assert.EqualError(t, err, "gemini: no content")
}

func TestPostJSON_TruncatesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("x", 2*maxErrorBody)))
	}))
	defer srv.Close()

	header := http.Header{}
	header.Set("X-Extra", "yes")
	var out struct{}
	err := postJSON(context.Background(), srv.Client(), "test", srv.URL, header, map[string]string{"a": "b"}, &out)
	require.Error(t, err)
	assert.Equal(t, "test: status 502: "+strings.Repeat("x", maxErrorBody), err.Error())
}

func TestOpenAIClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, cerebrasModel, req.Model)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"glitch"}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(ProviderCerebras, "secret", WithBaseURL(srv.URL))
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "noise")
	require.NoError(t, err)
	assert.Equal(t, "glitch", out)
}

func TestMockClient(t *testing.T) {
	m := NewMockClient()
	ctx := context.Background()

	out, err := m.Complete(ctx, "one")
	require.NoError(t, err)
	assert.Equal(t, defaultMockResponse, out)

	m.CompleteError = errors.New("down")
	_, err = m.Complete(ctx, "two")
	assert.Error(t, err)

	m.CompleteFunc = func(prompt string) (string, error) { return "echo " + prompt, nil }
	out, err = m.Complete(ctx, "three")
	require.NoError(t, err)
	assert.Equal(t, "echo three", out)

	assert.Equal(t, []string{"one", "two", "three"}, m.Calls())

	m.Reset()
	assert.Empty(t, m.Calls())
	out, _ = m.Complete(ctx, "four")
	assert.Equal(t, defaultMockResponse, out)
}
