package generation

import (
	"context"
)

// SystemInstruction establishes the assistant persona for every request.
const SystemInstruction = "You are an expert curriculum designer and educational consultant. " +
	"Create detailed, well-structured curricula that are practical and actionable."

// Sampling defaults used when configuration does not override them.
const (
	DefaultTemperature     float32 = 0.7
	DefaultMaxOutputTokens         = 2000
)

// Generator is implemented by each text-generation backend.
type Generator interface {
	// Generate sends prompt as the sole user message, alongside
	// SystemInstruction, and returns the primary generated text.
	// Implementations must honour ctx cancellation.
	Generate(ctx context.Context, prompt string) (string, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Settings are the fixed sampling parameters shared by all backends.
type Settings struct {
	Model             string
	SystemInstruction string
	Temperature       float32
	MaxOutputTokens   int
}

// DefaultSettings returns Settings for model using the package defaults.
func DefaultSettings(model string) Settings {
	return Settings{
		Model:             model,
		SystemInstruction: SystemInstruction,
		Temperature:       DefaultTemperature,
		MaxOutputTokens:   DefaultMaxOutputTokens,
	}
}
