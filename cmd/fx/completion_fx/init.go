// cmd/fx/completion_fx/init.go
package completion_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"founderkit/internal/services"
	"founderkit/pkg/config"
	"founderkit/pkg/metrics"
	"founderkit/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvideChatService)

// ProvideCompletionClient creates a completion client based on configuration.
// A missing API key yields a client that reports the service as not
// configured instead of failing startup.
func ProvideCompletionClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (utils.CompletionClientInterface, error) {
	opts := utils.CompletionOptions{
		MaxTokens:   cfg.CompletionMaxTokens,
		Temperature: cfg.CompletionTemperature,
	}

	if cfg.CompletionAPIKey() == "" {
		log.Warn("Completion API key missing, AI chat disabled", zap.String("provider", cfg.CompletionProvider))
		return utils.NewDisabledCompletionClient(cfg.CompletionProvider), nil
	}

	switch cfg.CompletionProvider {
	case "openai":
		opts.Model = cfg.OpenAIModel
		log.Info("Initializing openai completion client", zap.String("model", opts.Model))
		return utils.NewOpenAICompletionClient(cfg.OpenAIAPIKey, opts), nil
	case "gemini":
		opts.Model = cfg.GeminiModel
		log.Info("Initializing gemini completion client", zap.String("model", opts.Model))
		client, err := utils.NewGeminiCompletionClient(context.Background(), cfg.GeminiAPIKey, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'openai' or 'gemini'", cfg.CompletionProvider)
	}
}

// ProvideChatService creates the chat service with all dependencies
func ProvideChatService(
	client utils.CompletionClientInterface,
	artifactService services.ArtifactServiceInterface,
	m *metrics.Metrics,
	log *zap.Logger,
) services.ChatServiceInterface {
	return services.NewChatService(client, artifactService, m, log.Named("chat"))
}
