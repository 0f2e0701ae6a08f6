package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/curricuforge/internal/domain"
	"github.com/phrazzld/curricuforge/internal/redact"
)

// DefaultTimeout bounds a generation call when none is configured.
const DefaultTimeout = 60 * time.Second

// Client sends prompts to a Generator and converts every outcome into a
// domain.CurriculumResult. It makes exactly one attempt per call.
type Client struct {
	generator Generator
	logger    *slog.Logger
	timeout   time.Duration
}

// NewClient creates a Client. A non-positive timeout selects DefaultTimeout.
func NewClient(generator Generator, logger *slog.Logger, timeout time.Duration) (*Client, error) {
	if generator == nil {
		return nil, fmt.Errorf("%w: generator cannot be nil", ErrInvalidConfig)
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		generator: generator,
		logger:    logger,
		timeout:   timeout,
	}, nil
}

// Generate runs prompt through the backend. Failures, including a panic in
// the backend, come back as a failed result wrapping *GenerationError.
func (c *Client) Generate(ctx context.Context, prompt string) (result domain.CurriculumResult) {
	if strings.TrimSpace(prompt) == "" {
		return c.fail(ctx, ErrEmptyPrompt, 0)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = c.fail(ctx, fmt.Errorf("%w: backend panic: %v", ErrGenerationFailed, r), time.Since(start))
		}
	}()

	c.logger.InfoContext(ctx, "dispatching generation request",
		"prompt_length", len(prompt),
		"timeout", c.timeout.String())

	text, err := c.generator.Generate(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		return c.fail(ctx, classify(ctx, err), elapsed)
	}

	if strings.TrimSpace(text) == "" {
		return c.fail(ctx, ErrEmptyResponse, elapsed)
	}

	c.logger.InfoContext(ctx, "generation request succeeded",
		"response_length", len(text),
		"duration_ms", elapsed.Milliseconds())

	return domain.Succeeded(text)
}

// Close releases the backend.
func (c *Client) Close() error {
	return c.generator.Close()
}

func (c *Client) fail(ctx context.Context, err error, elapsed time.Duration) domain.CurriculumResult {
	c.logger.ErrorContext(ctx, "generation request failed",
		"error", redact.Error(err),
		"duration_ms", elapsed.Milliseconds())

	return domain.Failed(&GenerationError{Err: err})
}

// classify maps a backend error onto the package sentinels, keeping the
// original error in the chain.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, ErrGenerationFailed),
		errors.Is(err, ErrInvalidResponse),
		errors.Is(err, ErrContentBlocked),
		errors.Is(err, ErrEmptyResponse):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
}
