package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/myshell/commands"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/vos"
)

// DefaultShellName prefixes diagnostics when no name is configured.
const DefaultShellName = "Shell"

// Options configure a Shell. Zero values pick the defaults.
type Options struct {
	ShellName string
	// Banner is printed once before the first prompt.
	Banner string
	Prompt Prompt

	Tokenizer Tokenizer
	// Reader defaults to a plain reader over the OS streams.
	Reader LineReader
	// Launcher defaults to an ExecLauncher over the OS streams.
	Launcher       Launcher
	CommandTimeout time.Duration

	History *commands.History
	Logger  *slog.Logger
}

// Shell is the read, tokenize, dispatch loop.
type Shell struct {
	VirtualOS vos.VOS

	reader     LineReader
	tokenize   Tokenizer
	dispatcher *Dispatcher
	prompt     Prompt
	banner     string
	shellName  string
	history    *commands.History
	logger     *slog.Logger
}

// New creates a shell over the given OS.
func New(virtualOS vos.VOS, opts Options) *Shell {
	if opts.ShellName == "" {
		opts.ShellName = DefaultShellName
	}
	if opts.Tokenizer == nil {
		opts.Tokenizer = Fields
	}
	if opts.Reader == nil {
		opts.Reader = NewPlainReader(virtualOS.Stdin(), virtualOS.Stdout())
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Launcher == nil {
		opts.Launcher = &ExecLauncher{
			IO:        virtualOS,
			ShellName: opts.ShellName,
			Timeout:   opts.CommandTimeout,
			Logger:    opts.Logger,
		}
	}

	session := &commands.Session{
		ShellName: opts.ShellName,
		OS:        virtualOS,
		History:   opts.History,
	}

	return &Shell{
		VirtualOS:  virtualOS,
		reader:     opts.Reader,
		tokenize:   opts.Tokenizer,
		dispatcher: NewDispatcher(session, opts.Launcher, opts.Logger),
		prompt:     opts.Prompt,
		banner:     opts.Banner,
		shellName:  opts.ShellName,
		history:    opts.History,
		logger:     opts.Logger,
	}
}

// Run prompts and executes lines until a builtin asks to terminate or input
// ends. End of input returns immediately without dispatching anything.
func (s *Shell) Run(ctx context.Context) error {
	if s.banner != "" {
		fmt.Fprint(s.VirtualOS.Stdout(), s.banner)
	}

	s.logger.Info("session started")
	defer s.logger.Info("session ended")

	for {
		s.reader.SetPrompt(s.prompt.Render(s.VirtualOS.Getwd))
		line, err := s.reader.Readline()

		switch {
		case errors.Is(err, io.EOF):
			return nil // Input closed, quit.

		case errors.Is(err, readline.ErrInterrupt):
			continue // Interrupt clears the line.

		case err != nil:
			s.logger.Error("readline failed", "error", err.Error())
			return fmt.Errorf("read line: %w", err)
		}

		if s.RunLine(ctx, line) == commands.Terminate {
			return nil
		}
	}
}

// RunLine tokenizes and dispatches a single line.
func (s *Shell) RunLine(ctx context.Context, line string) commands.Status {
	argv, err := s.tokenize(line)
	if err != nil {
		fmt.Fprintf(s.VirtualOS.Stderr(), "%s: syntax error: %v\n", s.shellName, err)
		return commands.Continue
	}

	if len(argv) > 0 && s.history != nil {
		s.history.Add(line)
	}

	return s.dispatcher.Dispatch(ctx, argv)
}

// Close releases the line reader.
func (s *Shell) Close() error {
	return s.reader.Close()
}
