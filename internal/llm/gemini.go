package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiModel   = "gemini-2.0-flash"
)

// GeminiClient talks to the generateContent endpoint directly.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	hc      *http.Client
}

func newGeminiClient(apiKey string, o options) *GeminiClient {
	baseURL := o.baseURL
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	return &GeminiClient{apiKey: apiKey, model: o.or(geminiModel), baseURL: baseURL, hc: o.httpClient}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", strings.TrimSuffix(c.baseURL, "/"), c.model, c.apiKey)
	in := geminiRequest{Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}}

	var out geminiResponse
	if err := postJSON(ctx, c.hc, ProviderGemini, url, nil, in, &out); err != nil {
		return "", err
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini: %s", out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: no content")
	}
	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
