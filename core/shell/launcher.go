package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/josephlewis42/myshell/commands"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/vos"
)

// killWaitDelay bounds how long Wait keeps copying output after a timed out
// child is killed. Grandchildren may still hold its pipes open.
const killWaitDelay = time.Second

// ExecLauncher starts programs found through the PATH and blocks until they
// exit or are killed. Stopped children don't count as finished.
type ExecLauncher struct {
	IO vos.VIO
	// ShellName prefixes diagnostics.
	ShellName string
	// Timeout kills the child after the given duration; zero waits forever.
	Timeout time.Duration

	Logger *slog.Logger
}

var _ Launcher = (*ExecLauncher)(nil)

// Launch runs argv[0] with argv as its arguments. Failures are reported on
// stderr and never stop the shell.
func (l *ExecLauncher) Launch(ctx context.Context, argv []string) commands.Status {
	log := l.Logger
	if log == nil {
		log = logger.Discard()
	}

	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// Only a real file is handed down as stdin; anything else would be copied
	// by a goroutine that outlives the child.
	if stdin, ok := vos.File(l.IO.Stdin()); ok {
		cmd.Stdin = stdin
	}
	cmd.Stdout = l.IO.Stdout()
	cmd.Stderr = l.IO.Stderr()
	if l.Timeout > 0 {
		cmd.WaitDelay = killWaitDelay
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(l.IO.Stderr(), "%s: %v\n", l.ShellName, err)
		log.Warn("launch failed", "argv", argv, "error", err.Error())
		return commands.Continue
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		log.Debug("command exited", "argv", argv, "exit_code", 0)
	case errors.As(err, &exitErr):
		log.Debug("command exited", "argv", argv, "exit_code", exitErr.ExitCode(), "state", exitErr.String())
	default:
		log.Warn("command wait failed", "argv", argv, "error", err.Error())
	}

	return commands.Continue
}
