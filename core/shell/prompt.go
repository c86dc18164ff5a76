package shell

import (
	"strings"

	"github.com/fatih/color"
	"github.com/josephlewis42/myshell/core/vos"
	"github.com/mattn/go-isatty"
)

const (
	// DefaultPrompt renders as user@host:cwd$ followed by a space.
	DefaultPrompt = `\u@\h:\w$ `

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

var (
	colorUserHost = enabledColor(color.FgGreen, color.Bold)
	colorCwd      = enabledColor(color.FgBlue, color.Bold)
)

// enabledColor ignores fatih/color's global terminal detection; the caller
// decides whether to use it.
func enabledColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Prompt renders the text shown before each line is read. The template
// supports \u (user), \h (host) and \w (working directory).
type Prompt struct {
	Template string
	User     string
	Host     string
	Color    bool
}

// Render fills in the template. If the working directory can't be read no
// prompt is shown.
func (p Prompt) Render(getwd func() (string, error)) string {
	cwd, err := getwd()
	if err != nil {
		return ""
	}

	tmpl := p.Template
	if tmpl == "" {
		tmpl = DefaultPrompt
	}

	user, host := p.User, p.Host
	if p.Color {
		user = colorUserHost.Sprint(user)
		host = colorUserHost.Sprint(host)
		cwd = colorCwd.Sprint(cwd)
	}

	return strings.NewReplacer(`\u`, user, `\h`, host, `\w`, cwd).Replace(tmpl)
}

// IsTerminal reports whether a stream is backed by a terminal.
func IsTerminal(stream interface{}) bool {
	fd, ok := vos.File(stream)
	if !ok {
		return false
	}
	return isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd())
}

// ShouldColor resolves a color mode (always|auto|never) for the given output.
func ShouldColor(mode string, out interface{}) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return IsTerminal(out)
	}
}
