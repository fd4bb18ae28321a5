package logger

import (
	"log/slog"
	"os"
)

// Log defaults to slog's default logger until Init swaps in the
// service-tagged JSON handler.
var Log = slog.Default()

func Init(service string) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler).With("service", service)
}
