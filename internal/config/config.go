package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Supported generation backends.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ErrInvalidConfig is wrapped by every ConfigurationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError reports a configuration that cannot be used to start the
// server. It is always fatal.
type ConfigurationError struct {
	// Fields lists the offending configuration keys, if known.
	Fields []string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("configuration validation failed: %v", e.Err)
	}
	return fmt.Sprintf("configuration validation failed for %s: %v",
		strings.Join(e.Fields, ", "), e.Err)
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrInvalidConfig, e.Err}
}

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// Addr returns the listen address for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ShutdownTimeout is the grace period given to in-flight requests on shutdown.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// LLMConfig contains the generation backend settings. The API key is
// mandatory and is never given a default.
type LLMConfig struct {
	Provider           string  `mapstructure:"provider"             validate:"required,oneof=gemini openai"`
	APIKey             string  `mapstructure:"api_key"              validate:"required"`
	ModelName          string  `mapstructure:"model_name"           validate:"required"`
	BaseURL            string  `mapstructure:"base_url"             validate:"omitempty,url"`
	Temperature        float32 `mapstructure:"temperature"          validate:"gte=0,lte=2"`
	MaxOutputTokens    int     `mapstructure:"max_output_tokens"    validate:"gt=0"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds"      validate:"gt=0"`
	PromptTemplatePath string  `mapstructure:"prompt_template_path" validate:"omitempty,file"`
}

// Timeout bounds a single outbound generation call.
func (l LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// defaultModelName picks the model used when llm.model_name is not set.
func defaultModelName(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-3.5-turbo"
	default:
		return "gemini-2.0-flash"
	}
}
