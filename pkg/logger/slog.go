package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Setup создаёт JSON-логгер уровня level; непонятный уровень
// сводится к info.
func Setup(level string) *slog.Logger {
	logLevel := slog.LevelInfo

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		slog.Warn("Invalid log level specified, using default level: info", slog.String("invalid_level", level))
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	log := slog.New(handler)

	log.Info("Logger initialized", slog.String("level", logLevel.String()))

	return log
}
