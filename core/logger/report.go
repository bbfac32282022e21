package logger

import (
	"encoding/json"
	"io"
)

// Entry is a decoded event log record.
type Entry struct {
	Msg       string `json:"msg"`
	Level     string `json:"level"`
	SessionID string `json:"session_id"`
	Name      string `json:"name,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	ExitCode  *int   `json:"exit_code,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *Entry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}

		handler(&entry)
	}
	return nil
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{
		Builtins: make(map[string]int),
		Programs: make(map[string]int),
		Failed:   make(map[string]int),
		NotFound: make(map[string]int),
	}
}

// Report summarizes an event log.
type Report struct {
	LogEntries int `json:"log_entries"`
	Sessions   int `json:"sessions"`
	ReadErrors int `json:"read_errors"`

	// Builtins and Programs count invocations by name.
	Builtins map[string]int `json:"builtins"`
	Programs map[string]int `json:"programs"`
	// Failed counts programs that exited non-zero.
	Failed   map[string]int `json:"failed"`
	NotFound map[string]int `json:"not_found"`
}

// Update folds one entry into the report.
func (r *Report) Update(le *Entry) {
	r.LogEntries++

	switch Event(le.Msg) {
	case EventSessionStart:
		r.Sessions++
	case EventReadError:
		r.ReadErrors++
	case EventBuiltin:
		r.Builtins[le.Name]++
	case EventExec:
		r.Programs[le.Name]++
		if le.ExitCode == nil || *le.ExitCode != 0 {
			r.Failed[le.Name]++
		}
	case EventCommandNotFound:
		r.NotFound[le.Name]++
	}
}
