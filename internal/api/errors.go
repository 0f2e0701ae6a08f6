package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/curricuforge/internal/domain"
	"github.com/phrazzld/curricuforge/internal/generation"
	"github.com/phrazzld/curricuforge/internal/service"
)

// MissingFieldsMessage is shown when subject or duration is left blank.
const MissingFieldsMessage = "Please provide both Subject and Duration fields."

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var genErr *generation.GenerationError

	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Upstream errors
	case errors.As(err, &genErr):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Upstream error text never reaches the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var missing *domain.MissingFieldError
	var invalid *domain.InvalidFieldError

	switch {
	// Validation errors
	case errors.As(err, &missing):
		return MissingFieldsMessage

	case errors.As(err, &invalid):
		if invalid.Field == "level" {
			return fmt.Sprintf("Level must be one of %s.", levelList())
		}
		return fmt.Sprintf("Invalid %s", invalid.Field)

	// Generation errors
	case errors.Is(err, generation.ErrTimeout):
		return "The curriculum service took too long to respond. Please try again."

	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by the language model's safety filters. Try rephrasing the subject or goal."

	case errors.Is(err, generation.ErrEmptyResponse),
		errors.Is(err, generation.ErrInvalidResponse):
		return "The language model returned no usable curriculum. Please try again."

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrEmptyPrompt):
		return "An error occurred while generating the curriculum. Please try again later."

	case errors.Is(err, service.ErrPromptBuild):
		return "Failed to prepare the curriculum request"

	default:
		return "An unexpected error occurred"
	}
}

func levelList() string {
	levels := domain.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return strings.Join(names, ", ")
}
