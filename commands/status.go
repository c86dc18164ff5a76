package commands

import "fmt"

// Status tells the read loop whether to prompt again.
type Status int

const (
	// Terminate stops the read loop.
	Terminate Status = iota
	// Continue prompts for the next line.
	Continue
)

func (s Status) String() string {
	switch s {
	case Terminate:
		return "terminate"
	case Continue:
		return "continue"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
