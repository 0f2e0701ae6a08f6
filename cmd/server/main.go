// Package main implements the entry point for the CurricuForge server, which
// turns a short course description into a generated curriculum.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/curricuforge/internal/config"
	"github.com/phrazzld/curricuforge/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the curriculum pipeline
// and serves HTTP until SIGINT or SIGTERM.
func main() {
	// A missing .env file is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, l, err := initializeApp()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("Invalid configuration (check %v): %v", cfgErr.Fields, err)
		}
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l := logger.Setup(cfg.Server)

	l.Info("Server configuration loaded",
		"addr", cfg.Server.Addr(),
		"log_level", cfg.Server.LogLevel,
		"llm_provider", cfg.LLM.Provider,
		"llm_model", cfg.LLM.ModelName)
	l.Debug("LLM configuration",
		"api_key_present", cfg.LLM.APIKey != "",
		"base_url_override", cfg.LLM.BaseURL != "",
		"custom_prompt_template", cfg.LLM.PromptTemplatePath != "",
		"timeout_seconds", cfg.LLM.TimeoutSeconds)

	return cfg, l, nil
}
