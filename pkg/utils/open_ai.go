package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"founderkit/internal/models/request_models"
)

type OpenAICompletionClient struct {
	client *openai.Client
	opts   CompletionOptions
}

func NewOpenAICompletionClient(apiKey string, opts CompletionOptions) *OpenAICompletionClient {
	return NewOpenAICompletionClientWithConfig(openai.DefaultConfig(apiKey), opts)
}

// NewOpenAICompletionClientWithConfig allows pointing the client at another
// base URL, such as a proxy or a test server.
func NewOpenAICompletionClientWithConfig(config openai.ClientConfig, opts CompletionOptions) *OpenAICompletionClient {
	if opts.Model == "" {
		opts.Model = openai.GPT4oMini
	}
	return &OpenAICompletionClient{
		client: openai.NewClientWithConfig(config),
		opts:   opts,
	}
}

func (c *OpenAICompletionClient) Provider() string {
	return "openai"
}

func (c *OpenAICompletionClient) Complete(ctx context.Context, system string, messages []request_models.ChatMessage) (string, error) {
	chat := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	if system != "" {
		chat = append(chat, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == request_models.ChatRoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		chat = append(chat, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.opts.Model,
		Messages:    chat,
		MaxTokens:   c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("%w: openai rejected the api key", ErrCompletionNotConfigured)
		}
		return "", fmt.Errorf("%w: openai: %v", ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: openai returned no content", ErrCompletionFailed)
	}
	return resp.Choices[0].Message.Content, nil
}
