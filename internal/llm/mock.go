package llm

import (
	"context"
	"sync"
)

const defaultMockResponse = "Mock response"

// MockClient is a configurable text generator for testing.
// Set the response fields to control what Complete returns.
type MockClient struct {
	mu sync.Mutex

	// CompleteFunc, when set, takes precedence over the static fields.
	CompleteFunc     func(prompt string) (string, error)
	CompleteResponse string
	CompleteError    error

	// Call tracking for assertions
	CompleteCalls []string
}

func NewMockClient() *MockClient {
	return &MockClient{CompleteResponse: defaultMockResponse}
}

func (c *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.CompleteCalls = append(c.CompleteCalls, prompt)
	if c.CompleteFunc != nil {
		return c.CompleteFunc(prompt)
	}
	if c.CompleteError != nil {
		return "", c.CompleteError
	}
	return c.CompleteResponse, nil
}

// Calls returns a copy of the prompts seen so far.
func (c *MockClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.CompleteCalls...)
}

// Reset clears all recorded calls and resets responses to defaults.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CompleteFunc = nil
	c.CompleteResponse = defaultMockResponse
	c.CompleteError = nil
	c.CompleteCalls = nil
}
