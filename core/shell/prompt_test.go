package shell

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/josephlewis42/myshell/core/config"
	"github.com/stretchr/testify/assert"
)

func fixedWd(wd string) func() (string, error) {
	return func() (string, error) {
		return wd, nil
	}
}

func TestPrompt_Render(t *testing.T) {
	p := Prompt{User: "root", Host: "localhost"}

	assert.Equal(t, "root@localhost:/home/user$ ", p.Render(fixedWd("/home/user")))
}

func TestPrompt_template(t *testing.T) {
	p := Prompt{Template: `[\h \w] \u> `, User: "guest", Host: "box"}

	assert.Equal(t, "[box /tmp] guest> ", p.Render(fixedWd("/tmp")))
}

func TestPrompt_noWd(t *testing.T) {
	p := Prompt{User: "root", Host: "localhost"}

	assert.Empty(t, p.Render(func() (string, error) {
		return "", errors.New("getwd failed")
	}))
}

func TestPrompt_color(t *testing.T) {
	p := Prompt{User: "root", Host: "localhost", Color: true}

	rendered := p.Render(fixedWd("/srv"))

	assert.Contains(t, rendered, "\x1b[")
	assert.Contains(t, rendered, "/srv")
	assert.NotEqual(t, "root@localhost:/srv$ ", rendered)
}

func TestShouldColor(t *testing.T) {
	buf := &bytes.Buffer{}

	assert.True(t, ShouldColor(ColorAlways, buf))
	assert.False(t, ShouldColor(ColorNever, buf))
	assert.False(t, ShouldColor(ColorAuto, buf), "buffers aren't terminals")
}

func TestPrompt_defaultConfig(t *testing.T) {
	cfg := config.Default()
	p := Prompt{
		Template: cfg.Prompt,
		User:     cfg.User,
		Host:     cfg.Hostname,
		Color:    ShouldColor(cfg.Color, os.Stdout),
	}

	assert.Equal(t, "root@localhost:/tmp$ ", p.Render(fixedWd("/tmp")))
}
