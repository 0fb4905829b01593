package logger

import (
	"io"
	"log/slog"
	"os"
)

// Load builds the application logger writing to w. Pass nil for the
// default stdout sink.
func Load(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: levelFromEnv()}
	return slog.New(slog.NewTextHandler(w, opts))
}

func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
