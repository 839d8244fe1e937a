package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"founderkit/internal/models/request_models"
)

// GeminiCompletionClient implements CompletionClientInterface using Google's Gemini models
type GeminiCompletionClient struct {
	client *genai.Client
	opts   CompletionOptions
}

func NewGeminiCompletionClient(ctx context.Context, apiKey string, opts CompletionOptions) (*GeminiCompletionClient, error) {
	if opts.Model == "" {
		opts.Model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{
		client: client,
		opts:   opts,
	}, nil
}

func (c *GeminiCompletionClient) Provider() string {
	return "gemini"
}

func (c *GeminiCompletionClient) Close() error {
	return c.client.Close()
}

func (c *GeminiCompletionClient) Complete(ctx context.Context, system string, messages []request_models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("%w: no messages to send", ErrCompletionFailed)
	}

	model := c.client.GenerativeModel(c.opts.Model)
	if system != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}
	model.SetTemperature(c.opts.Temperature)
	if c.opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(c.opts.MaxTokens))
	}

	chat := model.StartChat()
	chat.History = geminiHistory(messages[:len(messages)-1])

	resp, err := chat.SendMessage(ctx, genai.Text(messages[len(messages)-1].Content))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrCompletionFailed, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini returned no candidates", ErrCompletionFailed)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: gemini returned no text", ErrCompletionFailed)
	}
	return b.String(), nil
}

// geminiHistory maps chat roles onto Gemini's "user" and "model".
func geminiHistory(messages []request_models.ChatMessage) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := "user"
		if m.Role == request_models.ChatRoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return history
}
