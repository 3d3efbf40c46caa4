package logging

import (
	"context"
	"log/slog"
	"os"
)

type slogLogger struct {
	l *slog.Logger
}

// NewSlog wraps an existing slog.Logger.
func NewSlog(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

// Default returns a text logger on stderr at Info level.
func Default() Logger {
	return NewSlog(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// Discard returns a logger that drops everything; used in tests.
func Discard() Logger {
	return NewSlog(slog.New(slog.DiscardHandler))
}

func (s *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}
