package vos

import (
	"os"

	"github.com/spf13/afero"
)

// HostOS is the VOS of the running process. Chdir changes the real working
// directory so launched programs inherit it.
type HostOS struct {
	VIO
	fs afero.Fs
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS backed by the real filesystem and the given streams.
func NewHostOS(vio VIO) *HostOS {
	return &HostOS{
		VIO: vio,
		fs:  afero.NewOsFs(),
	}
}

func (h *HostOS) Open(name string) (afero.File, error) {
	return h.fs.Open(name)
}

func (*HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (*HostOS) Getwd() (string, error) {
	return os.Getwd()
}
