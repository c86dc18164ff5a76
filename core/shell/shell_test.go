package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/myshell/commands"
	"github.com/josephlewis42/myshell/core/logger"
	"github.com/josephlewis42/myshell/core/vos"
	"github.com/josephlewis42/myshell/core/vos/vostest"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPrompt = Prompt{User: "root", Host: "localhost"}

func newTestShell(virtOS vos.VOS, opts Options) (*Shell, *fakeLauncher) {
	launcher := newFakeLauncher(virtOS.Stdout())
	if opts.Launcher == nil {
		opts.Launcher = launcher
	}
	opts.Prompt = testPrompt
	return New(virtOS, opts), launcher
}

func TestShell_Run_transcript(t *testing.T) {
	virtOS := vostest.NewCombined("help\n\ncd /tmp\ncat a.txt\nls -la\nexit\necho never\n")
	require.NoError(t, virtOS.WriteFile("/tmp/a.txt", "hello\n"))
	sh, launcher := newTestShell(virtOS, Options{Banner: "MyShell\n"})

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, [][]string{{"ls", "-la"}}, launcher.launched)

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)
	g.Assert(t, "transcript", virtOS.Out.Bytes())
}

func TestShell_Run_endOfInput(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"partial line": "ls -la",
		"after blank":  "\n",
	}

	for tn, input := range cases {
		input := input
		t.Run(tn, func(t *testing.T) {
			virtOS := vostest.New(input)
			sh, launcher := newTestShell(virtOS, Options{})

			assert.NoError(t, sh.Run(context.Background()))
			assert.Empty(t, launcher.launched)
			assert.Empty(t, virtOS.ErrOutput())
		})
	}
}

func TestShell_Run_noPromptWithoutWd(t *testing.T) {
	virtOS := vostest.New("ls\n")
	sh, launcher := newTestShell(vostest.BrokenWd{VOS: virtOS}, Options{})

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, [][]string{{"ls"}}, launcher.launched)
	assert.Equal(t, "launched: ls\n", virtOS.Output())
}

func TestShell_Run_syntaxError(t *testing.T) {
	virtOS := vostest.New("echo \"open\necho 'a b'\n")
	sh, launcher := newTestShell(virtOS, Options{Tokenizer: Shlex})

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, [][]string{{"echo", "a b"}}, launcher.launched)
	assert.Contains(t, virtOS.ErrOutput(), "Shell: syntax error: ")
}

func TestShell_Run_history(t *testing.T) {
	virtOS := vostest.New("cd /\n\n  \nls\nhistory\n")
	history := commands.NewHistory(0)
	sh, _ := newTestShell(virtOS, Options{History: history})

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, []string{"cd /", "ls", "history"}, history.Lines())
	assert.Contains(t, virtOS.Output(), "    1  cd /\n    2  ls\n    3  history\n")
}

// scriptedReader returns canned results in order, then io.EOF.
type scriptedReader struct {
	results []readResult
	prompts []string
}

type readResult struct {
	line string
	err  error
}

func (s *scriptedReader) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func (s *scriptedReader) Readline() (string, error) {
	if len(s.results) == 0 {
		return "", errors.New("unexpected read")
	}
	next := s.results[0]
	s.results = s.results[1:]
	return next.line, next.err
}

func (*scriptedReader) Close() error {
	return nil
}

func TestShell_Run_interrupt(t *testing.T) {
	virtOS := vostest.New("")
	reader := &scriptedReader{results: []readResult{
		{"ls", readline.ErrInterrupt},
		{"pwd", nil},
		{"", io.EOF},
	}}
	sh, launcher := newTestShell(virtOS, Options{Reader: reader})

	require.NoError(t, sh.Run(context.Background()))

	assert.Equal(t, [][]string{{"pwd"}}, launcher.launched)
	assert.Equal(t, []string{"root@localhost:/$ ", "root@localhost:/$ ", "root@localhost:/$ "}, reader.prompts)
}

func TestShell_Run_readError(t *testing.T) {
	virtOS := vostest.New("")
	broken := errors.New("terminal gone")
	reader := &scriptedReader{results: []readResult{{"", broken}}}
	sh, _ := newTestShell(virtOS, Options{Reader: reader})

	err := sh.Run(context.Background())

	assert.ErrorIs(t, err, broken)
}

func TestShell_RunLine(t *testing.T) {
	virtOS := vostest.New("")
	sh, launcher := newTestShell(virtOS, Options{})

	assert.Equal(t, commands.Continue, sh.RunLine(context.Background(), "  "))
	assert.Equal(t, commands.Continue, sh.RunLine(context.Background(), "uname -a"))
	assert.Equal(t, commands.Terminate, sh.RunLine(context.Background(), "exit"))

	assert.Equal(t, [][]string{{"uname", "-a"}}, launcher.launched)
}

// TestShell_cdInheritedByChildren runs real processes in the real working
// directory.
func TestShell_cdInheritedByChildren(t *testing.T) {
	requireSh(t)
	t.Chdir(t.TempDir())
	target := t.TempDir()

	out := &bytes.Buffer{}
	hostOS := vos.NewHostOS(vos.NewVIOAdapter(nil, out, out))
	sh := New(hostOS, Options{Tokenizer: Shlex, Logger: logger.Discard()})

	require.Equal(t, commands.Continue, sh.RunLine(context.Background(), "cd "+target))
	require.Equal(t, commands.Continue, sh.RunLine(context.Background(), "sh -c 'pwd -P'"))

	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out.String())
}

func TestShell_externalStatusIgnored(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available:", err)
	}
	out := &bytes.Buffer{}
	hostOS := vos.NewHostOS(vos.NewVIOAdapter(nil, out, out))
	sh := New(hostOS, Options{})

	assert.Equal(t, commands.Continue, sh.RunLine(context.Background(), "false"))
	assert.Empty(t, out.String())
}
