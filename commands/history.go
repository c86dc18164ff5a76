package commands

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

// History is the list of lines entered into the shell, oldest first.
type History struct {
	limit int
	lines []string
}

// NewHistory creates a history that keeps at most limit lines. A limit of
// zero keeps everything.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Add appends a line, dropping the oldest entries past the limit.
func (h *History) Add(line string) {
	h.lines = append(h.lines, line)
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = append([]string(nil), h.lines[len(h.lines)-h.limit:]...)
	}
}

// Lines returns a copy of the history.
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Clear deletes all entries.
func (h *History) Clear() {
	h.lines = nil
}

// Load appends the lines stored in the named file. A missing file is not an
// error.
func (h *History) Load(fsys afero.Fs, name string) error {
	data, err := afero.ReadFile(fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("read history: %w", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			h.Add(line)
		}
	}
	return scanner.Err()
}

// Save overwrites the named file with the history, one line per entry.
func (h *History) Save(fsys afero.Fs, name string) error {
	var buf bytes.Buffer
	for _, line := range h.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := afero.WriteFile(fsys, name, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// HistoryCmd is the history shell builtin.
func HistoryCmd(s *Session, args []string) Status {
	opts := getopt.New()
	clearOpt := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.OS.Stderr()
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display the history list with line numbers.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return Continue
	}

	if s.History == nil {
		return Continue
	}

	if *clearOpt {
		s.History.Clear()
		return Continue
	}

	for i, line := range s.History.Lines() {
		fmt.Fprintf(s.OS.Stdout(), "%5d  %s\n", i+1, line)
	}
	return Continue
}
