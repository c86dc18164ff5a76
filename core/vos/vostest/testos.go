// Package vostest provides an in-memory VOS for tests.
package vostest

import (
	"bytes"
	"io/fs"
	"path"
	"strings"
	"syscall"

	"github.com/josephlewis42/myshell/core/vos"
	"github.com/spf13/afero"
)

// TestOS is a VOS over an afero.MemMapFs with captured output. It starts in
// the root directory.
type TestOS struct {
	*vos.VIOAdapter

	Fs     afero.Fs
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer

	wd string
}

var _ vos.VOS = (*TestOS)(nil)

// New creates a TestOS with separate stdout and stderr buffers.
func New(stdin string) *TestOS {
	return newTestOS(stdin, &bytes.Buffer{}, &bytes.Buffer{})
}

// NewCombined creates a TestOS where stdout and stderr share one buffer, the
// way a terminal interleaves them.
func NewCombined(stdin string) *TestOS {
	buf := &bytes.Buffer{}
	return newTestOS(stdin, buf, buf)
}

func newTestOS(stdin string, out, errOut *bytes.Buffer) *TestOS {
	return &TestOS{
		VIOAdapter: vos.NewVIOAdapter(strings.NewReader(stdin), out, errOut),
		Fs:         afero.NewMemMapFs(),
		Out:        out,
		ErrOut:     errOut,
		wd:         "/",
	}
}

func (t *TestOS) abs(name string) string {
	if path.IsAbs(name) {
		return path.Clean(name)
	}
	return path.Join(t.wd, name)
}

func (t *TestOS) Open(name string) (afero.File, error) {
	return t.Fs.Open(t.abs(name))
}

func (t *TestOS) Chdir(dir string) error {
	target := t.abs(dir)
	info, err := t.Fs.Stat(target)
	switch {
	case err != nil:
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOENT}
	case !info.IsDir():
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	t.wd = target
	return nil
}

func (t *TestOS) Getwd() (string, error) {
	return t.wd, nil
}

// WriteFile creates a file, and any missing parents, relative to the working
// directory.
func (t *TestOS) WriteFile(name, contents string) error {
	target := t.abs(name)
	if err := t.Fs.MkdirAll(path.Dir(target), 0755); err != nil {
		return err
	}
	return afero.WriteFile(t.Fs, target, []byte(contents), 0644)
}

// Mkdir creates a directory, and any missing parents.
func (t *TestOS) Mkdir(name string) error {
	return t.Fs.MkdirAll(t.abs(name), 0755)
}

// Output returns everything written to stdout.
func (t *TestOS) Output() string {
	return t.Out.String()
}

// ErrOutput returns everything written to stderr.
func (t *TestOS) ErrOutput() string {
	return t.ErrOut.String()
}

// BrokenWd wraps a VOS so Getwd always fails.
type BrokenWd struct {
	vos.VOS
}

func (BrokenWd) Getwd() (string, error) {
	return "", &fs.PathError{Op: "getwd", Path: ".", Err: syscall.ENOENT}
}
