// Package logging sets up the process-wide slog logger for the site.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

const traceKey = "stacktrace"

// Setup installs a JSON logger on stdout as the slog default.
// Unknown LOG_LEVEL values log at INFO.
func Setup(level string) {
	slog.SetDefault(New(os.Stdout, ParseLevel(level)))
}

// New builds the site logger writing to w. Records at ERROR carry the
// goroutine's stack under "stacktrace".
func New(w io.Writer, level slog.Level) *slog.Logger {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	return slog.New(traceHandler{next: base})
}

// ParseLevel reads LOG_LEVEL. WARNING is accepted as WARN.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Fatal is for startup failures in cmd/: it logs and exits 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

type traceHandler struct {
	next slog.Handler
}

func (h traceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		r.AddAttrs(slog.String(traceKey, string(buf[:runtime.Stack(buf, false)])))
	}
	return h.next.Handle(ctx, r)
}

func (h traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceHandler{next: h.next.WithAttrs(attrs)}
}

func (h traceHandler) WithGroup(name string) slog.Handler {
	return traceHandler{next: h.next.WithGroup(name)}
}
