package materializer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/filesystem"
	"github.com/arthur-debert/sharelink/pkg/testutil"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLink(t *testing.T) {
	t.Run("creates a fresh link", func(t *testing.T) {
		sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{"models": testutil.FileTree{}})
		m := New(nil)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeLinked, outcome)
		testutil.AssertSymlink(t, sb.ProjectPath("models"), sb.SharedPath("models"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{"models": testutil.FileTree{}})
		m := New(nil)

		_, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.NoError(t, err)
		before := testutil.TakeSnapshot(t, sb.Project)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeSkippedExists, outcome)
		assert.Equal(t, before, testutil.TakeSnapshot(t, sb.Project))
	})

	t.Run("creates missing parents", func(t *testing.T) {
		sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{
			"custom_nodes": testutil.FileTree{"pack": testutil.FileTree{"node.py": "print()"}},
		})
		m := New(nil)

		source := sb.SharedPath("custom_nodes", "pack", "node.py")
		target := sb.ProjectPath("custom_nodes", "pack", "node.py")
		outcome, err := m.CreateLink(source, target)
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeLinked, outcome)
		testutil.AssertRealDir(t, sb.ProjectPath("custom_nodes", "pack"))
		testutil.AssertSymlink(t, target, source)
	})

	t.Run("source that is a link keeps its own name", func(t *testing.T) {
		sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{
			"models": testutil.FileTree{"real.bin": "weights"},
		})
		sb.WithShared(testutil.FileTree{"models/alias.bin": testutil.Link{Dest: sb.SharedPath("models", "real.bin")}})
		m := New(nil)

		source := sb.SharedPath("models", "alias.bin")
		target := sb.ProjectPath("models", "alias.bin")
		outcome, err := m.CreateLink(source, target)
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeLinked, outcome)
		assert.Equal(t, source, m.Destination(source))
		testutil.AssertSymlink(t, target, source)
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "weights", string(data))
	})

	t.Run("missing source", func(t *testing.T) {
		sb := testutil.NewSandbox(t)
		m := New(nil)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceMissing))
		assert.Equal(t, types.OutcomeSkippedMissingSource, outcome)
		testutil.AssertNotExists(t, sb.ProjectPath("models"))
	})

	t.Run("real directory is never touched", func(t *testing.T) {
		sb := testutil.NewSandbox(t).
			WithShared(testutil.FileTree{"models": testutil.FileTree{"a.bin": "shared"}}).
			WithProject(testutil.FileTree{"models": testutil.FileTree{"local.bin": "mine"}})
		m := New(nil)
		before := testutil.TakeSnapshot(t, sb.Project)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetOccupied))
		assert.Equal(t, types.OutcomeSkippedExists, outcome)
		assert.Equal(t, before, testutil.TakeSnapshot(t, sb.Project))
	})

	t.Run("working link elsewhere is occupied", func(t *testing.T) {
		sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{"models": testutil.FileTree{}})
		elsewhere := filepath.Join(sb.Base, "elsewhere")
		testutil.CreateTree(t, sb.Base, testutil.FileTree{"elsewhere": testutil.FileTree{}})
		sb.WithProject(testutil.FileTree{"models": testutil.Link{Dest: elsewhere}})
		m := New(nil)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTargetOccupied))
		assert.Equal(t, types.OutcomeSkippedExists, outcome)
		testutil.AssertSymlink(t, sb.ProjectPath("models"), elsewhere)
	})

	t.Run("broken link is healed", func(t *testing.T) {
		sb := testutil.NewSandbox(t).
			WithShared(testutil.FileTree{"models": testutil.FileTree{}}).
			WithProject(testutil.FileTree{"models": testutil.Link{Dest: filepath.Join("/gone", "models")}})
		m := New(nil)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeHealed, outcome)
		testutil.AssertSymlink(t, sb.ProjectPath("models"), sb.SharedPath("models"))
	})

	t.Run("permission failure is reported", func(t *testing.T) {
		sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{"models": testutil.FileTree{}})
		ffs := testutil.NewFaultFS(filesystem.NewOS()).Fail(testutil.OpSymlink, sb.ProjectPath("models"), nil)
		m := New(ffs)

		outcome, err := m.CreateLink(sb.SharedPath("models"), sb.ProjectPath("models"))
		require.Error(t, err)
		assert.Equal(t, types.OutcomeError, outcome)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPermission))
		testutil.AssertNotExists(t, sb.ProjectPath("models"))
	})
}

func TestRelink(t *testing.T) {
	sb := testutil.NewSandbox(t).
		WithShared(testutil.FileTree{"models": testutil.FileTree{}, "input": testutil.FileTree{}}).
		WithProject(testutil.FileTree{"user": testutil.FileTree{"settings.json": "{}"}})
	sb.WithProject(testutil.FileTree{"models": testutil.Link{Dest: sb.SharedPath("input")}})
	m := New(nil)

	outcome, err := m.Relink(sb.SharedPath("models"), sb.ProjectPath("models"))
	require.NoError(t, err)
	assert.Equal(t, types.OutcomeHealed, outcome)
	testutil.AssertSymlink(t, sb.ProjectPath("models"), sb.SharedPath("models"))

	outcome, err = m.Relink(sb.SharedPath("models"), sb.ProjectPath("user"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetOccupied))
	assert.Equal(t, types.OutcomeSkippedExists, outcome)
	testutil.AssertFileContent(t, sb.ProjectPath("user", "settings.json"), "{}")
}

func TestRemoveLink(t *testing.T) {
	sb := testutil.NewSandbox(t).
		WithShared(testutil.FileTree{"models": testutil.FileTree{}}).
		WithProject(testutil.FileTree{"user": testutil.FileTree{"settings.json": "{}"}})
	sb.WithProject(testutil.FileTree{"models": testutil.Link{Dest: sb.SharedPath("models")}})
	m := New(nil)

	t.Run("link is removed", func(t *testing.T) {
		outcome, err := m.RemoveLink(sb.ProjectPath("models"))
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeRemoved, outcome)
		testutil.AssertNotExists(t, sb.ProjectPath("models"))
		testutil.AssertRealDir(t, sb.SharedPath("models"))
	})

	t.Run("broken link is removed", func(t *testing.T) {
		sb.WithProject(testutil.FileTree{"output": testutil.Link{Dest: sb.SharedPath("gone")}})
		outcome, err := m.RemoveLink(sb.ProjectPath("output"))
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeRemoved, outcome)
		testutil.AssertNotExists(t, sb.ProjectPath("output"))
	})

	t.Run("absent is not-present", func(t *testing.T) {
		outcome, err := m.RemoveLink(sb.ProjectPath("input"))
		require.NoError(t, err)
		assert.Equal(t, types.OutcomeNotPresent, outcome)
	})

	t.Run("real directory is not a link", func(t *testing.T) {
		outcome, err := m.RemoveLink(sb.ProjectPath("user"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotALink))
		assert.Equal(t, types.OutcomeNotALink, outcome)
		testutil.AssertFileContent(t, sb.ProjectPath("user", "settings.json"), "{}")
	})
}

func TestCheckAndIsManaged(t *testing.T) {
	sb := testutil.NewSandbox(t).WithShared(testutil.FileTree{
		"models": testutil.FileTree{},
		"input":  testutil.FileTree{},
	})
	testutil.CreateTree(t, sb.Base, testutil.FileTree{"elsewhere": testutil.FileTree{}})
	sb.WithProject(testutil.FileTree{
		"models":       testutil.Link{Dest: sb.SharedPath("models")},
		"input":        testutil.Link{Dest: sb.SharedPath("models")},
		"output":       testutil.Link{Dest: sb.SharedPath("output")},
		"user":         testutil.FileTree{},
		"custom_nodes": testutil.Link{Dest: filepath.Join(sb.Base, "elsewhere")},
	})
	m := New(nil)

	assert.Equal(t, types.LinkStatusLinked, m.Check(sb.SharedPath("models"), sb.ProjectPath("models")))
	assert.Equal(t, types.LinkStatusLinkedElsewhere, m.Check(sb.SharedPath("input"), sb.ProjectPath("input")))
	assert.Equal(t, types.LinkStatusBroken, m.Check(sb.SharedPath("output"), sb.ProjectPath("output")))
	assert.Equal(t, types.LinkStatusRealDirectory, m.Check(sb.SharedPath("user"), sb.ProjectPath("user")))
	assert.Equal(t, types.LinkStatusSourceMissing, m.Check(sb.SharedPath("extra"), sb.ProjectPath("extra")))
	assert.Equal(t, types.LinkStatusNotPresent, m.Check(sb.SharedPath("input"), sb.ProjectPath("extra")))

	assert.True(t, m.IsManaged(sb.ProjectPath("models"), sb.Shared))
	assert.True(t, m.IsManaged(sb.ProjectPath("output"), sb.Shared), "broken links into the shared root are still managed")
	assert.False(t, m.IsManaged(sb.ProjectPath("custom_nodes"), sb.Shared))
	assert.False(t, m.IsManaged(sb.ProjectPath("user"), sb.Shared))
	assert.False(t, m.IsManaged(sb.ProjectPath("missing"), sb.Shared))
}
