package shell

import (
	"fmt"
	"strings"

	"github.com/anmitsu/go-shlex"
)

const (
	// TokenDelimiters separate words on a command line.
	TokenDelimiters = " \t\r\n\a"

	tokenBufSize = 64
)

// Tokenizer splits a command line into words. An empty result is a blank line.
type Tokenizer func(line string) ([]string, error)

// Fields splits line on runs of TokenDelimiters. It never fails.
func Fields(line string) ([]string, error) {
	tokens := make([]string, 0, tokenBufSize)

	start := -1
	for i := 0; i < len(line); i++ {
		if strings.IndexByte(TokenDelimiters, line[i]) >= 0 {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}

	return tokens, nil
}

// Shlex splits line with POSIX quoting and escaping rules.
func Shlex(line string) ([]string, error) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// TokenizerFor returns the tokenizer with the given config name.
func TokenizerFor(name string) (Tokenizer, error) {
	switch name {
	case "", "fields":
		return Fields, nil
	case "shlex":
		return Shlex, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", name)
	}
}
