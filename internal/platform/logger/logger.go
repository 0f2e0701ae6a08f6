package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/curricuforge/internal/config"
)

// ParseLevel converts a configured level name into a slog.Level
// (case-insensitive). The second return value is false for unknown names, in
// which case slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger on stdout and installs it
// as the default logger, so the slog package functions can be used directly.
func Setup(cfg config.ServerConfig) *slog.Logger {
	logger := New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)
	return logger
}
