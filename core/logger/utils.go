package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const (
	// EventRunCommand is logged once per dispatched command.
	EventRunCommand = "run_command"

	KindBuiltin  = "builtin"
	KindExternal = "external"
)

// ParseLevel converts a config level name to a slog level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger that writes JSON lines to w.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewSession attaches a fresh session ID to every record.
func NewSession(l *slog.Logger) *slog.Logger {
	return l.With(slog.String("session_id", uuid.NewString()))
}

// RecordCommand logs a dispatched command and the status it produced.
func RecordCommand(l *slog.Logger, argv []string, kind, status string) {
	l.Info(EventRunCommand,
		slog.Any("argv", argv),
		slog.String("kind", kind),
		slog.String("status", status),
	)
}
