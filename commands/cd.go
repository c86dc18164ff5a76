package commands

// Cd is the cd shell builtin. Unlike most shells it has no default target.
func Cd(s *Session, args []string) Status {
	if len(args) < 2 {
		s.Errorf("expected argument to %q", args[0])
		return Continue
	}

	if err := s.OS.Chdir(args[1]); err != nil {
		s.Errorf("%v", err)
	}
	return Continue
}
