package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sharelink/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxAndSnapshot(t *testing.T) {
	sb := NewSandbox(t).
		WithShared(FileTree{
			"models": FileTree{
				"a.bin": "weights",
				"empty": FileTree{},
			},
		}).
		WithProject(FileTree{
			"input": Link{Dest: "/nowhere"},
		})

	AssertRealDir(t, sb.SharedPath("models"))
	AssertFileContent(t, sb.SharedPath("models", "a.bin"), "weights")
	AssertSymlink(t, sb.ProjectPath("input"), "/nowhere")

	assert.Equal(t, Snapshot{
		".":            "dir",
		"models":       "dir",
		"models/a.bin": "file:weights",
		"models/empty": "dir",
	}, TakeSnapshot(t, sb.Shared))
	assert.Equal(t, Snapshot{
		".":     "dir",
		"input": "link:/nowhere",
	}, TakeSnapshot(t, sb.Project))

	sb.RemoveShared()
	AssertNotExists(t, sb.Shared)
	assert.Empty(t, TakeSnapshot(t, sb.Shared))
}

func TestFaultFS(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultFS(filesystem.NewOS())

	blocked := filepath.Join(dir, "blocked")
	ffs.Fail(OpSymlink, blocked, nil).Fail(OpMkdir, filepath.Join(dir, "nodir"), fs.ErrExist)

	err := ffs.Symlink("/src", blocked)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	AssertNotExists(t, blocked)

	err = ffs.Mkdir(filepath.Join(dir, "nodir"), 0755)
	assert.ErrorIs(t, err, fs.ErrExist)

	ok := filepath.Join(dir, "ok")
	require.NoError(t, ffs.Symlink("/src", ok))
	require.NoError(t, ffs.Remove(ok))

	assert.Equal(t, []string{"symlink " + ok, "remove " + ok}, ffs.Mutations())

	_, err = os.Lstat(ok)
	assert.True(t, os.IsNotExist(err))
}
