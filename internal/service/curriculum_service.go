package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/curricuforge/internal/domain"
	"github.com/phrazzld/curricuforge/internal/platform/metrics"
)

// PromptBuilder renders a validated request into a prompt.
type PromptBuilder interface {
	Build(req domain.CurriculumRequest) (string, error)
}

// GenerationClient turns a prompt into a curriculum result.
type GenerationClient interface {
	Generate(ctx context.Context, prompt string) domain.CurriculumResult
}

// Outcome is what the pipeline reports for one submission.
type Outcome struct {
	// Request is the validated request; nil when validation failed.
	Request *domain.CurriculumRequest
	Result  domain.CurriculumResult
}

// CurriculumService runs the validate → build → generate pipeline.
type CurriculumService struct {
	builder PromptBuilder
	client  GenerationClient
	logger  *slog.Logger
}

// NewCurriculumService creates a CurriculumService.
func NewCurriculumService(builder PromptBuilder, client GenerationClient, logger *slog.Logger) (*CurriculumService, error) {
	if builder == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}
	if client == nil {
		return nil, errors.New("generation client cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &CurriculumService{
		builder: builder,
		client:  client,
		logger:  logger,
	}, nil
}

// Generate runs the pipeline for form. A validation failure is returned as a
// failed result without contacting the generation backend.
func (s *CurriculumService) Generate(ctx context.Context, form domain.RawCurriculumForm) Outcome {
	req, err := domain.NewCurriculumRequest(form)
	if err != nil {
		s.logger.DebugContext(ctx, "curriculum request rejected", "error", err)
		metrics.CurriculaTotal.WithLabelValues(metrics.OutcomeValidationFailed).Inc()
		return Outcome{Result: domain.Failed(err)}
	}

	prompt, err := s.builder.Build(req)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build prompt", "error", err)
		metrics.CurriculaTotal.WithLabelValues(metrics.OutcomePromptFailed).Inc()
		return Outcome{Request: &req, Result: domain.Failed(fmt.Errorf("%w: %w", ErrPromptBuild, err))}
	}

	s.logger.InfoContext(ctx, "generating curriculum",
		"subject", req.Subject,
		"level", req.Level.String(),
		"duration", req.Duration,
		"has_goal", req.HasGoal())

	start := time.Now()
	result := s.client.Generate(ctx, prompt)

	outcome := metrics.OutcomeSucceeded
	if !result.OK() {
		outcome = metrics.OutcomeGenerationFailed
	}
	metrics.CurriculaTotal.WithLabelValues(outcome).Inc()
	metrics.GenerationDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return Outcome{Request: &req, Result: result}
}
