package logger

import (
	"log/slog"
	"os"
)

var base *slog.Logger

// Init installs the process-wide JSON logger. Call once from main before
// anything else logs.
func Init() {
	base = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(base)
	base.Info("logger initialized")
}

func logger() *slog.Logger {
	if base == nil {
		return slog.Default()
	}
	return base
}

func attrs(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, slog.Any(k, v))
	}
	return out
}

func Info(msg string, fields map[string]any) {
	logger().Info(msg, attrs(fields)...)
}

func Warn(msg string, fields map[string]any) {
	logger().Warn(msg, attrs(fields)...)
}

func Error(msg string, fields map[string]any) {
	logger().Error(msg, attrs(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	logger().Error(msg, attrs(fields)...)
	os.Exit(1)
}
