package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/curricuforge/internal/config"
	"github.com/phrazzld/curricuforge/internal/generation"
	"github.com/phrazzld/curricuforge/internal/platform/gemini"
	"github.com/phrazzld/curricuforge/internal/platform/openai"
	"github.com/phrazzld/curricuforge/internal/prompt"
	"github.com/phrazzld/curricuforge/internal/service"
	"github.com/phrazzld/curricuforge/internal/view"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Generation pipeline
	client    *generation.Client
	curricula *service.CurriculumService

	pages *view.Renderer
}

// newApplication creates a new application instance, building the LLM
// backend selected by cfg.LLM.Provider.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := newGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName)

	app, err := newApplicationWithGenerator(cfg, logger, generator)
	if err != nil {
		_ = generator.Close()
		return nil, err
	}
	return app, nil
}

// newApplicationWithGenerator wires the pipeline around an existing backend.
func newApplicationWithGenerator(cfg *config.Config, logger *slog.Logger, generator generation.Generator) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	builder, err := newPromptBuilder(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt builder: %w", err)
	}

	app.client, err = generation.NewClient(
		generator,
		logger.With("component", "generation_client"),
		cfg.LLM.Timeout(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	app.curricula, err = service.NewCurriculumService(
		builder,
		app.client,
		logger.With("component", "curriculum_service"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create curriculum service: %w", err)
	}

	app.pages, err = view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// newGenerator builds the backend named by cfg.Provider.
func newGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewGenerator(ctx, logger, cfg, nil)
	case config.ProviderOpenAI:
		return openai.NewGenerator(ctx, logger, cfg, nil)
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

func newPromptBuilder(cfg config.LLMConfig) (*prompt.Builder, error) {
	if cfg.PromptTemplatePath != "" {
		return prompt.NewBuilderFromFile(cfg.PromptTemplatePath)
	}
	return prompt.NewBuilder()
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.client != nil {
		if err := app.client.Close(); err != nil {
			app.logger.Error("Error closing LLM generator", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
