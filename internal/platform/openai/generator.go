package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/phrazzld/curricuforge/internal/config"
	"github.com/phrazzld/curricuforge/internal/generation"
)

// Generator implements generation.Generator on top of an Eino chat model.
type Generator struct {
	logger   *slog.Logger
	settings generation.Settings
	chat     model.BaseChatModel
}

// NewGenerator creates a Generator backed by the OpenAI chat completions API.
// A nil httpClient selects the adapter default.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	httpClient *http.Client,
) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}

	settings := generation.DefaultSettings(cfg.ModelName)
	settings.Temperature = cfg.Temperature
	if cfg.MaxOutputTokens > 0 {
		settings.MaxOutputTokens = cfg.MaxOutputTokens
	}

	maxTokens := settings.MaxOutputTokens
	temperature := settings.Temperature
	chat, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       settings.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		HTTPClient:  httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create openai chat model: %v", generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, settings, chat)
}

func newGenerator(logger *slog.Logger, settings generation.Settings, chat model.BaseChatModel) (*Generator, error) {
	if settings.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if chat == nil {
		return nil, fmt.Errorf("%w: chat model cannot be nil", generation.ErrInvalidConfig)
	}

	return &Generator{logger: logger, settings: settings, chat: chat}, nil
}

// Generate implements generation.Generator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	messages := []*schema.Message{
		schema.SystemMessage(g.settings.SystemInstruction),
		schema.UserMessage(prompt),
	}

	g.logger.DebugContext(ctx, "Making chat completion call",
		"model", g.settings.Model,
		"prompt_length", len(prompt))

	out, err := g.chat.Generate(ctx, messages,
		model.WithTemperature(g.settings.Temperature),
		model.WithMaxTokens(g.settings.MaxOutputTokens),
	)
	if err != nil {
		return "", fmt.Errorf("chat completion call failed: %w", err)
	}
	if out == nil {
		return "", fmt.Errorf("%w: nil message", generation.ErrInvalidResponse)
	}

	if out.ResponseMeta != nil && out.ResponseMeta.FinishReason == "content_filter" {
		return "", fmt.Errorf("%w: completion stopped by content filter", generation.ErrContentBlocked)
	}

	return out.Content, nil
}

// Close implements generation.Generator.
func (g *Generator) Close() error {
	return nil
}
