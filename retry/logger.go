package retry

import (
	"context"
	"log/slog"
)

// Logger receives the failure records emitted while retrying.
type Logger interface {
	Error(ctx context.Context, msg string, keyvals ...any)
}

type slogLogger struct {
	l *slog.Logger
}

// SlogLogger adapts a slog.Logger. A nil logger falls back to slog.Default at log time.
func SlogLogger(l *slog.Logger) Logger {
	return slogLogger{l: l}
}

func (s slogLogger) Error(ctx context.Context, msg string, keyvals ...any) {
	l := s.l
	if l == nil {
		l = slog.Default()
	}
	l.ErrorContext(ctx, msg, keyvals...)
}
