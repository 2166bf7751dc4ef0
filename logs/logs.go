// Package logs builds the slog loggers used across the server.
package logs

import (
	"log/slog"
	"os"
	"strings"
)

// GetLoggerFromString maps a level name (DEBUG, INFO, WARN, ERROR) to a text
// slog logger on stderr. Unknown names fall back to INFO.
func GetLoggerFromString(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		lvl = slog.LevelDebug
	case "WARN":
		lvl = slog.LevelWarn
	case "ERROR":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
