package mtree

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with mtree-specific context. This provides
// structured logging with consistent field names across Add, Remove, and
// Search.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output. Used as the
// default so logging is zero-cost unless a caller asks for it.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level.
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With("count", count)}
}

// LogInsert logs an Add operation.
func (l *Logger) LogInsert(depth int, split bool) {
	l.Debug("insert completed", "depth", depth, "split", split)
}

// LogRemove logs a Remove operation.
func (l *Logger) LogRemove(found bool, underflow bool) {
	l.Debug("remove completed", "found", found, "underflow", underflow)
}

// LogSearch logs a range or k-nearest query.
func (l *Logger) LogSearch(kind string, resultsFound int) {
	l.Debug("search completed", "kind", kind, "results", resultsFound)
}

// LogSplit logs a node split during insertion.
func (l *Logger) LogSplit(kind nodeKind, childCount int) {
	l.Debug("node split", "kind", kind.String(), "children", childCount)
}

// LogUnderflow logs an underflow recovery (donate or merge) during deletion.
func (l *Logger) LogUnderflow(merged bool) {
	l.Debug("underflow recovered", "merged", merged)
}
