package commands

// Exit quits the shell
func Exit(s *Session, args []string) Status {
	return Terminate
}
