package commands

import (
	"fmt"
	"io"
)

// Cat copies each named file to stdout in order. The first file that can't be
// opened ends the run; later names are never touched.
func Cat(s *Session, args []string) Status {
	if len(args) < 2 {
		s.Errorf("expected argument to %q", args[0])
	}

	for _, name := range args[1:] {
		fd, err := s.OS.Open(name)
		if err != nil {
			fmt.Fprintf(s.OS.Stderr(), "cat: %s: No such file or directory\n", name)
			break
		}

		_, err = io.Copy(s.OS.Stdout(), fd)
		fd.Close()
		if err != nil {
			fmt.Fprintf(s.OS.Stderr(), "cat: %s: %v\n", name, err)
		}
	}

	return Continue
}
