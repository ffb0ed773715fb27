package logger

import (
	"log/slog"
	"os"
)

// Init sets the process-wide logger. Production gets JSON output, everything
// else a human-readable text handler with debug enabled.
func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}

func Info(msg string, args ...any) {
	slog.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	slog.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	slog.Error(msg, normalize(args)...)
}

func Fatal(msg string, args ...any) {
	slog.Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets call sites pass a bare error or value as the sole argument
// instead of a key/value pair.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{slog.Any("error", err)}
		}
		return []any{slog.Any("detail", args[0])}
	}
	return args
}
