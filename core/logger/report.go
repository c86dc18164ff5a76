package logger

import (
	"encoding/json"
	"io"
	"sort"
)

// LogEntry is one decoded line of the event log.
type LogEntry struct {
	Level     string   `json:"level"`
	Msg       string   `json:"msg"`
	SessionID string   `json:"session_id"`
	Argv      []string `json:"argv"`
	Kind      string   `json:"kind"`
	Status    string   `json:"status"`
	Error     string   `json:"error"`
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries int        `json:"log_entries"`
	Sessions   int        `json:"sessions"`
	Levels     StrCounter `json:"levels"`

	RunCommand RunCommandReport `json:"run_command_report"`
	Errors     StrCounter       `json:"errors,omitempty"`

	seenSessions map[string]bool
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	r.Levels.Increment(le.Level)

	if le.SessionID != "" {
		if r.seenSessions == nil {
			r.seenSessions = make(map[string]bool)
		}
		if !r.seenSessions[le.SessionID] {
			r.seenSessions[le.SessionID] = true
			r.Sessions++
		}
	}

	switch {
	case le.Msg == EventRunCommand:
		r.RunCommand.update(le)
	case le.Error != "":
		r.Errors.Increment(le.Msg)
	}
}

type RunCommandReport struct {
	Count int `json:"count"`
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// builtin or external
	Kinds StrCounter `json:"kinds"`
}

func (r *RunCommandReport) update(le *LogEntry) {
	r.Count++
	if len(le.Argv) > 0 {
		r.CommandNames.Increment(le.Argv[0])
	}
	r.Kinds.Increment(le.Kind)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for a key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// Keys returns the counted keys in sorted order.
func (s *StrCounter) Keys() []string {
	var out []string
	for k := range s.internal {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}
