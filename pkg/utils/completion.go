package utils

import (
	"context"

	"founderkit/internal/models/request_models"
)

// CompletionClientInterface sends a conversation to a chat model and returns
// the assistant reply. Failures wrap ErrCompletionFailed or
// ErrCompletionNotConfigured.
type CompletionClientInterface interface {
	Complete(ctx context.Context, system string, messages []request_models.ChatMessage) (string, error)
	Provider() string
}

type CompletionOptions struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

type disabledCompletionClient struct {
	provider string
}

// NewDisabledCompletionClient stands in for a provider whose API key is
// missing, so the rest of the app still starts.
func NewDisabledCompletionClient(provider string) CompletionClientInterface {
	return &disabledCompletionClient{provider: provider}
}

func (d *disabledCompletionClient) Complete(ctx context.Context, system string, messages []request_models.ChatMessage) (string, error) {
	return "", ErrCompletionNotConfigured
}

func (d *disabledCompletionClient) Provider() string {
	return d.provider
}
