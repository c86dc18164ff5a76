package commands

import "fmt"

// Help lists the builtins. Arguments are ignored.
func Help(s *Session, args []string) Status {
	w := s.OS.Stdout()
	fmt.Fprintln(w, "Basic Shell")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w, "The following are built in:")

	for _, name := range Builtins.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}

	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return Continue
}
