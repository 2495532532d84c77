// Package logger wires log/slog to a tint handler so every component
// (handlers, services, the queue consumer) logs through slog.Default.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger. The level comes from LOG_LEVEL
// (debug, info, warn, error; default info). In production builds the
// time format stays RFC3339 so log shippers can parse it; local runs
// get the short kitchen clock.
func Setup(env string) {
	format := time.RFC3339
	if env == "local" || env == "development" {
		format = time.Kitchen
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelFromEnv(),
			TimeFormat: format,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
