// Package vos is the slice of operating system state the shell touches: its
// standard streams, its files and its working directory.
package vos

import (
	"github.com/spf13/afero"
)

// VFS provides file access relative to a working directory.
type VFS interface {
	// Open opens the named file for reading.
	Open(name string) (afero.File, error)
	// Chdir changes the working directory. Failures leave it unchanged.
	Chdir(dir string) error
	// Getwd returns the absolute working directory.
	Getwd() (string, error)
}

// VOS provides a virtual OS interface.
type VOS interface {
	VIO
	VFS
}
