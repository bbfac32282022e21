package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewJSONLinesLogger(buf)

	first := l.WithSessionID("one")
	first.Record(EventSessionStart)
	first.Record(EventBuiltin, slog.String("name", "cd"), slog.String("outcome", "success(0)"))
	first.Record(EventBuiltin, slog.String("name", "cd"), slog.String("outcome", "failure(1)"))
	first.Record(EventExec, slog.String("name", "ls"), slog.Int("exit_code", 0))
	first.Record(EventExec, slog.String("name", "grep"), slog.Int("exit_code", 1))
	first.RecordError(EventCommandNotFound, errors.New("not found"), slog.String("name", "nope"))
	first.Record(EventSessionEnd)

	second := l.WithSessionID("two")
	second.Record(EventSessionStart)
	second.RecordError(EventReadError, errors.New("gone"))
	second.Record(EventSessionEnd)

	report := NewReport()
	require.NoError(t, ReadJSONLinesLog(buf, report.Update))

	assert.Equal(t, 10, report.LogEntries)
	assert.Equal(t, 2, report.Sessions)
	assert.Equal(t, 1, report.ReadErrors)
	assert.Equal(t, map[string]int{"cd": 2}, report.Builtins)
	assert.Equal(t, map[string]int{"ls": 1, "grep": 1}, report.Programs)
	assert.Equal(t, map[string]int{"grep": 1}, report.Failed)
	assert.Equal(t, map[string]int{"nope": 1}, report.NotFound)
}

func TestReadJSONLinesLog_Invalid(t *testing.T) {
	err := ReadJSONLinesLog(strings.NewReader("{not json}\n"), func(*Entry) {})

	assert.Error(t, err)
}
