package generation

import (
	"errors"
)

// Common errors returned by the generation package and its backends.
var (
	// ErrGenerationFailed is returned when generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate curriculum")

	// ErrInvalidResponse is returned when the LLM response is missing or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrEmptyResponse is returned when the LLM answers with no usable text
	ErrEmptyResponse = errors.New("language model returned an empty completion")

	// ErrTimeout is returned when the LLM does not answer within the configured timeout
	ErrTimeout = errors.New("language model request timed out")

	// ErrEmptyPrompt is returned when an empty prompt is submitted
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// GenerationError is the single failure type surfaced by Client. Err holds
// the classified cause and wraps one of the sentinel errors above.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "curriculum generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }
