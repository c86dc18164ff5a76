package commands

import (
	"fmt"

	"github.com/josephlewis42/myshell/core/vos"
)

// Session holds the shell state a builtin can reach.
type Session struct {
	// ShellName prefixes diagnostics written to stderr.
	ShellName string
	OS        vos.VOS
	// History may be nil, in which case nothing is recorded.
	History *History
}

// Errorf writes a diagnostic prefixed with the shell name.
func (s *Session) Errorf(format string, a ...interface{}) {
	fmt.Fprintf(s.OS.Stderr(), "%s: %s\n", s.ShellName, fmt.Sprintf(format, a...))
}

// Builtin is a command that runs inside the shell process.
type Builtin interface {
	Main(s *Session, args []string) Status
}

type BuiltinFunc func(s *Session, args []string) Status

func (f BuiltinFunc) Main(s *Session, args []string) Status {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinEntry is a named builtin.
type BuiltinEntry struct {
	Name string
	// Short holds a one line description of the builtin.
	Short string
	Proc  Builtin
}

// Registry is an ordered table of builtins. Order only matters for listings.
type Registry struct {
	entries []BuiltinEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a builtin. Names must be unique.
func (r *Registry) Add(name, short string, proc Builtin) {
	if _, ok := r.Lookup(name); ok {
		panic(fmt.Sprintf("builtin %q registered twice", name))
	}
	r.entries = append(r.entries, BuiltinEntry{Name: name, Short: short, Proc: proc})
}

// Lookup finds a builtin by exact name.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e.Proc, true
		}
	}
	return nil, false
}

// Names lists builtin names in registration order.
func (r *Registry) Names() []string {
	var out []string
	for _, e := range r.entries {
		out = append(out, e.Name)
	}
	return out
}

// Entries returns a copy of the table.
func (r *Registry) Entries() []BuiltinEntry {
	return append([]BuiltinEntry(nil), r.entries...)
}

// Builtins holds the shell builtins. It's filled once by init and only read
// afterwards.
var Builtins = NewRegistry()

// ListBuiltinCommands returns the shell builtins in listing order.
func ListBuiltinCommands() []BuiltinEntry {
	return Builtins.Entries()
}

func init() {
	Builtins.Add("cd", "Change the shell working directory.", BuiltinFunc(Cd))
	Builtins.Add("help", "Display information about builtin commands.", BuiltinFunc(Help))
	Builtins.Add("exit", "Exit the shell.", BuiltinFunc(Exit))
	Builtins.Add("cat", "Concatenate files to standard output.", BuiltinFunc(Cat))
	Builtins.Add("history", "Display or clear the history list.", BuiltinFunc(HistoryCmd))
}
