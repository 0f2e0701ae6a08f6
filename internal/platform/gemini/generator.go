package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/curricuforge/internal/config"
	"github.com/phrazzld/curricuforge/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by Generator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Generator implements the generation.Generator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// settings holds the model name and fixed sampling parameters
	settings generation.Settings

	// models performs the API calls
	models contentGenerator
}

// NewGenerator creates a Generator from the LLM configuration.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and sampling settings
//   - httpClient: optional HTTP client; nil selects the SDK default
//
// Returns:
//   - A properly initialized Generator or an error if initialization fails
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
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, settingsFromConfig(cfg), client.Models)
}

func newGenerator(logger *slog.Logger, settings generation.Settings, models contentGenerator) (*Generator, error) {
	if settings.Model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return &Generator{
		logger:   logger,
		settings: settings,
		models:   models,
	}, nil
}

func settingsFromConfig(cfg config.LLMConfig) generation.Settings {
	s := generation.DefaultSettings(cfg.ModelName)
	s.Temperature = cfg.Temperature
	if cfg.MaxOutputTokens > 0 {
		s.MaxOutputTokens = cfg.MaxOutputTokens
	}
	return s
}

// Generate implements generation.Generator.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.settings.Model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.settings.Model, contents, g.requestConfig())
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	return extractText(resp)
}

// Close implements generation.Generator. The genai client holds no
// resources that need releasing.
func (g *Generator) Close() error {
	return nil
}

func (g *Generator) requestConfig() *genai.GenerateContentConfig {
	temperature := g.settings.Temperature
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: g.settings.SystemInstruction}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: int32(g.settings.MaxOutputTokens),
	}
}

// extractText returns the concatenated text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	return b.String(), nil
}
