package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a configured log level string to a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.New("log-level must be one of debug, info, warn, error, got: " + level)
	}
}

// SetupLogging installs the default slog logger. Output always goes to
// stderr; stdout is reserved for the MCP protocol.
func SetupLogging(level string) (*slog.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger, nil
}

// Log logs the resolved settings in a granular way
func Log(s *Settings, logger *slog.Logger) {
	logger.Info("Config: templates_dir", "value", s.TemplatesDir)
	logger.Info("Config: log_level", "value", s.LogLevel)
	if s.Embedding.Provider != "" {
		logger.Info("Config: embedding.provider", "value", s.Embedding.Provider)
	}
}
