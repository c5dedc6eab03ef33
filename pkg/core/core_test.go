package core

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/arthur-debert/sharelink/pkg/filesystem"
	"github.com/arthur-debert/sharelink/pkg/testutil"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger() (*zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	return &logger, &buf
}

func exampleSandbox(t *testing.T) *testutil.Sandbox {
	t.Helper()
	return testutil.NewSandbox(t).WithShared(testutil.FileTree{
		"models": testutil.FileTree{"checkpoints": testutil.FileTree{"a.ckpt": "a"}},
		"input":  testutil.FileTree{},
	})
}

func TestSetupSharedLinks(t *testing.T) {
	sb := exampleSandbox(t)
	logger, buf := bufferLogger()

	report := SetupSharedLinks(Options{ProjectRoot: sb.Project, SharedRoot: sb.Shared, Logger: logger})

	require.NotNil(t, report)
	assert.Equal(t, types.OperationSynchronize, report.Operation)
	assert.False(t, report.HasErrors())
	testutil.AssertSymlink(t, sb.ProjectPath("input"), sb.SharedPath("input"))
	testutil.AssertSymlink(t, sb.ProjectPath("models", "checkpoints", "a.ckpt"), sb.SharedPath("models", "checkpoints", "a.ckpt"))

	assert.Contains(t, buf.String(), "Created symlink")
	assert.Contains(t, buf.String(), "Report complete")
}

func TestSetupSharedLinks_DryRun(t *testing.T) {
	sb := exampleSandbox(t)
	logger, buf := bufferLogger()
	before := testutil.TakeSnapshot(t, sb.Project)

	report := SetupSharedLinks(Options{ProjectRoot: sb.Project, SharedRoot: sb.Shared, DryRun: true, Logger: logger})

	assert.Equal(t, types.OperationPlan, report.Operation)
	assert.True(t, report.DryRun)
	assert.Equal(t, before, testutil.TakeSnapshot(t, sb.Project))
	assert.Contains(t, buf.String(), "Would have created symlink")
}

func TestSetupSharedLinks_MissingSharedRoot(t *testing.T) {
	sb := testutil.NewSandbox(t)
	sb.RemoveShared()
	logger, buf := bufferLogger()

	report := SetupSharedLinks(Options{ProjectRoot: sb.Project, SharedRoot: sb.Shared, Logger: logger})

	assert.False(t, report.HasErrors())
	assert.Equal(t, 5, report.Counts()[types.OutcomeSkippedMissingSource])
	assert.Contains(t, buf.String(), "Shared directory does not exist")
}

// panicFS blows up on the first ReadDir
type panicFS struct {
	types.FS
}

func (p panicFS) ReadDir(name string) ([]fs.DirEntry, error) {
	panic("disk on fire")
}

func TestSetupSharedLinks_NeverPanics(t *testing.T) {
	sb := exampleSandbox(t)
	logger, _ := bufferLogger()

	var report *types.SynchronizationReport
	assert.NotPanics(t, func() {
		report = SetupSharedLinks(Options{
			ProjectRoot: sb.Project,
			SharedRoot:  sb.Shared,
			FS:          panicFS{filesystem.NewOS()},
			Logger:      logger,
		})
	})

	require.NotNil(t, report)
	require.Len(t, report.Categories, 5)
	assert.True(t, report.HasErrors())
	assert.Equal(t, "INTERNAL", report.Categories[0].ErrorCode)
	assert.Contains(t, report.Categories[0].Reason, "disk on fire")
}

func TestRemoveListInspect(t *testing.T) {
	sb := exampleSandbox(t)
	sb.WithProject(testutil.FileTree{"user": testutil.FileTree{}})
	logger, _ := bufferLogger()
	opts := Options{ProjectRoot: sb.Project, SharedRoot: sb.Shared, Logger: logger}

	SetupSharedLinks(opts)

	links := ListLinks(opts)
	require.Len(t, links, 1)
	assert.Equal(t, types.CategoryInput, links[0].Category)

	inspection := Inspect(opts)
	assert.Equal(t, sb.Project, inspection.ProjectRoot)
	require.Len(t, inspection.Categories, 5)
	assert.Equal(t, map[types.Category]types.LinkStatus{
		types.CategoryModels:      types.LinkStatusRealDirectory,
		types.CategoryCustomNodes: types.LinkStatusSourceMissing,
		types.CategoryInput:       types.LinkStatusLinked,
		types.CategoryOutput:      types.LinkStatusSourceMissing,
		types.CategoryUser:        types.LinkStatusRealDirectory,
	}, inspection.Map())
	assert.False(t, inspection.HasProblems())

	report := RemoveSharedLinks(opts)
	assert.Equal(t, types.OperationRemoveAll, report.Operation)
	assert.Empty(t, ListLinks(opts))
	testutil.AssertRealDir(t, sb.ProjectPath("user"))
}
