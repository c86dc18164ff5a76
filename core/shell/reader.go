package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/myshell/core/vos"
)

// LineReader prompts for and reads one line at a time. Readline returns
// io.EOF once input is exhausted.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
	Close() error
}

type plainReader struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPlainReader reads newline terminated lines from in, writing the prompt
// to out before each one.
func NewPlainReader(in io.Reader, out io.Writer) LineReader {
	return &plainReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *plainReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

// Readline drops a partial line that ends at end of input.
func (r *plainReader) Readline() (string, error) {
	if r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

func (*plainReader) Close() error {
	return nil
}

// NewReadlineReader creates a line editor over the terminal streams. Recall
// starts with the given history lines, oldest first.
func NewReadlineReader(vio vos.VIO, historyLimit int, history []string) (LineReader, error) {
	cfg := &readline.Config{
		Stdin:        readline.NewCancelableStdin(vio.Stdin()),
		Stdout:       vio.Stdout(),
		Stderr:       vio.Stderr(),
		HistoryLimit: historyLimit,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	if err := seedHistory(rl, history); err != nil {
		rl.Close()
		return nil, err
	}
	return rl, nil
}

type historySaver interface {
	SaveHistory(content string) error
}

func seedHistory(saver historySaver, lines []string) error {
	for _, line := range lines {
		if err := saver.SaveHistory(line); err != nil {
			return fmt.Errorf("seed history: %w", err)
		}
	}
	return nil
}
