package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleHandler writes JSON records to w. Development builds also emit
// debug records.
func NewConsoleHandler(w io.Writer, env string) slog.Handler {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Setup installs a stdout JSON logger as the slog default. Extra handlers,
// such as a DBHandler, receive every record as well.
func Setup(env string, extra ...slog.Handler) *slog.Logger {
	var handler slog.Handler = NewConsoleHandler(os.Stdout, env)
	if len(extra) > 0 {
		handler = NewMultiHandler(append([]slog.Handler{handler}, extra...)...)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
