package server

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger, JSON to stdout.
var Logger *slog.Logger

func init() {
	Logger = newLogger(slog.LevelInfo)
}

// ConfigureLogger rebuilds the global logger at the configured level.
// Unknown level strings fall back to info.
func ConfigureLogger(level string) {
	Logger = newLogger(parseLogLevel(level))
	slog.SetDefault(Logger)
}

func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
