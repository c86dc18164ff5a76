package commands

import (
	"testing"

	"github.com/josephlewis42/myshell/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCd(t *testing.T) {
	cases := goldenTestSuite{
		"no-arg":      {Args: []string{"cd"}},
		"missing-dir": {Args: []string{"cd", "/nope"}},
		"not-a-dir": {
			Args: []string{"cd", "/file.txt"},
			Setup: func(virtOS *vostest.TestOS) error {
				return virtOS.WriteFile("/file.txt", "")
			},
		},
	}

	cases.Run(t, Cd)
}

func TestCd_changesDirectory(t *testing.T) {
	virtOS := vostest.New("")
	require.NoError(t, virtOS.Mkdir("/home/user/src"))
	session := newTestSession(virtOS)

	assert.Equal(t, Continue, Cd(session, []string{"cd", "/home"}))
	wd, err := virtOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home", wd)

	// Relative to the directory left by the previous call.
	assert.Equal(t, Continue, Cd(session, []string{"cd", "user/src"}))
	wd, err = virtOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/home/user/src", wd)
	assert.Empty(t, virtOS.ErrOutput())
}

func TestCd_errorsLeaveDirectory(t *testing.T) {
	virtOS := vostest.New("")
	require.NoError(t, virtOS.Mkdir("/tmp"))
	session := newTestSession(virtOS)
	require.Equal(t, Continue, Cd(session, []string{"cd", "/tmp"}))

	assert.Equal(t, Continue, Cd(session, []string{"cd"}))
	assert.Equal(t, Continue, Cd(session, []string{"cd", "/does/not/exist"}))

	wd, err := virtOS.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/tmp", wd)
	assert.Equal(t,
		"Shell: expected argument to \"cd\"\n"+
			"Shell: chdir /does/not/exist: no such file or directory\n",
		virtOS.ErrOutput())
}
