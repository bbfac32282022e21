package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Event names a session event; it becomes the record's "msg".
type Event string

const (
	EventSessionStart    Event = "session_start"
	EventSessionEnd      Event = "session_end"
	EventBuiltin         Event = "builtin"
	EventExec            Event = "exec"
	EventCommandNotFound Event = "command_not_found"
	EventReadError       Event = "read_error"
)

const (
	keySessionID = "session_id"
)

// Logger captures interpreter events.
type Logger struct {
	log *slog.Logger
}

// NewJSONLinesLogger creates a Logger that exports events in newline
// delimited JSON object format.
func NewJSONLinesLogger(w io.Writer) *Logger {
	return &Logger{
		log: slog.New(slog.NewJSONHandler(w, nil)),
	}
}

// Discard returns a Logger that drops every event.
func Discard() *Logger {
	return NewJSONLinesLogger(io.Discard)
}

// NewSession creates a logger with a fresh session ID attached.
func (l *Logger) NewSession() *SessionLogger {
	return l.WithSessionID(uuid.NewString())
}

// WithSessionID creates a logger with the given session ID attached.
func (l *Logger) WithSessionID(id string) *SessionLogger {
	return &SessionLogger{
		log:       l.log.With(slog.String(keySessionID, id)),
		sessionID: id,
	}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	log       *slog.Logger
	sessionID string
}

// SessionID returns the ID attached to every event.
func (l *SessionLogger) SessionID() string {
	return l.sessionID
}

// Record writes one event. Write failures are dropped: the event log never
// affects the session.
func (l *SessionLogger) Record(event Event, attrs ...slog.Attr) {
	l.log.LogAttrs(context.Background(), slog.LevelInfo, string(event), attrs...)
}

// RecordError writes an event at error level with the error attached.
func (l *SessionLogger) RecordError(event Event, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("error", err.Error()))
	l.log.LogAttrs(context.Background(), slog.LevelError, string(event), attrs...)
}
