package shell

import (
	"context"
	"log/slog"

	"github.com/josephlewis42/myshell/commands"
	"github.com/josephlewis42/myshell/core/logger"
)

// Launcher runs programs that aren't builtins.
type Launcher interface {
	Launch(ctx context.Context, argv []string) commands.Status
}

// Dispatcher routes a tokenized line to a builtin or the launcher.
type Dispatcher struct {
	Builtins *commands.Registry
	Session  *commands.Session
	Launcher Launcher

	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the shell builtins.
func NewDispatcher(session *commands.Session, launcher Launcher, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = logger.Discard()
	}
	return &Dispatcher{
		Builtins: commands.Builtins,
		Session:  session,
		Launcher: launcher,
		logger:   log,
	}
}

// Dispatch runs argv and returns whether the shell should keep going. Blank
// lines do nothing.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string) commands.Status {
	if len(argv) == 0 {
		return commands.Continue
	}

	if builtin, ok := d.Builtins.Lookup(argv[0]); ok {
		status := builtin.Main(d.Session, argv)
		logger.RecordCommand(d.logger, argv, logger.KindBuiltin, status.String())
		return status
	}

	status := d.Launcher.Launch(ctx, argv)
	logger.RecordCommand(d.logger, argv, logger.KindExternal, status.String())
	return status
}
