package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/josephlewis42/myshell/commands"
	"github.com/josephlewis42/myshell/core/config"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/shell"
	"github.com/josephlewis42/myshell/core/vos"
)

// runShell starts a shell on the process's own terminal. A non-empty line runs
// just that line.
func runShell(ctx context.Context, cfg *config.Configuration, line string) error {
	hostOS := vos.NewHostOS(vos.NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr))

	eventLog := logger.Discard()
	if cfg.HasDir() {
		logFd, err := cfg.OpenAppLog()
		if err != nil {
			return fmt.Errorf("open app log: %w", err)
		}
		defer logFd.Close()
		eventLog = logger.New(logFd, cfg.LogLevel)
	}
	eventLog = logger.NewSession(eventLog)

	tokenize, err := shell.TokenizerFor(cfg.Tokenizer)
	if err != nil {
		return err
	}

	history := commands.NewHistory(cfg.HistoryLimit)
	saveHistory := cfg.HasDir() && cfg.HistoryFile != "" && line == ""
	if saveHistory {
		if err := history.Load(cfg.Fs(), cfg.HistoryFile); err != nil {
			eventLog.Warn("couldn't load history", slog.String("error", err.Error()))
		}
	}

	opts := shell.Options{
		ShellName: cfg.ShellName,
		Banner:    cfg.Banner,
		Prompt: shell.Prompt{
			Template: cfg.Prompt,
			User:     cfg.User,
			Host:     cfg.Hostname,
			Color:    shell.ShouldColor(cfg.Color, hostOS.Stdout()),
		},
		Tokenizer:      tokenize,
		CommandTimeout: cfg.CommandTimeout(),
		History:        history,
		Logger:         eventLog,
	}

	if line == "" && cfg.LineEditor == "readline" && shell.IsTerminal(hostOS.Stdin()) {
		reader, err := shell.NewReadlineReader(hostOS, cfg.HistoryLimit, history.Lines())
		if err != nil {
			return fmt.Errorf("start line editor: %w", err)
		}
		opts.Reader = reader
	}

	sh := shell.New(hostOS, opts)
	defer sh.Close()

	if line != "" {
		sh.RunLine(ctx, line)
		return nil
	}

	runErr := sh.Run(ctx)
	if saveHistory {
		if err := history.Save(cfg.Fs(), cfg.HistoryFile); err != nil {
			eventLog.Warn("couldn't save history", slog.String("error", err.Error()))
		}
	}
	return runErr
}
