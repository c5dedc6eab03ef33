package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSymlink checks that path is a symlink whose raw destination is dest
func AssertSymlink(t *testing.T, path, dest string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected symlink at %s", path)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "expected %s to be a symlink, got mode %s", path, info.Mode())

	actual, err := os.Readlink(path)
	require.NoError(t, err)
	assert.Equal(t, dest, actual, "symlink %s points to the wrong place", path)
}

// AssertRealDir checks that path is a directory and not a symlink
func AssertRealDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected directory at %s", path)
	assert.True(t, info.IsDir(), "expected %s to be a real directory, got mode %s", path, info.Mode())
}

// AssertFileContent checks that path is a regular file with content
func AssertFileContent(t *testing.T, path, content string) {
	t.Helper()

	info, err := os.Lstat(path)
	require.NoError(t, err, "expected file at %s", path)
	require.True(t, info.Mode().IsRegular(), "expected %s to be a regular file, got mode %s", path, info.Mode())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

// AssertNotExists checks that nothing, not even a dangling link, is at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s not to exist", path)
}
