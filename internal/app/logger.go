package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
)

const serviceName = "agrotiquiza"

// NewLogger builds the process logger from LogConfig, writes to stderr and
// installs it as the slog default. Every record carries the service name.
//
// "json" is meant for deployed environments; anything else gives text output
// with source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newLogHandler(os.Stderr, cfg)).With(slog.String("service", serviceName))
	slog.SetDefault(logger)
	return logger
}

func newLogHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	jsonFormat := strings.EqualFold(strings.TrimSpace(cfg.Format), "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}
	if jsonFormat {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
