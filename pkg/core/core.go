package core

import (
	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/logging"
	"github.com/arthur-debert/sharelink/pkg/materializer"
	"github.com/arthur-debert/sharelink/pkg/paths"
	"github.com/arthur-debert/sharelink/pkg/scanner"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a core call
type Options struct {
	// ProjectRoot is the directory links are created in. Empty means the
	// working directory.
	ProjectRoot string
	// SharedRoot is the shared tree. Empty means paths.DefaultSharedRoot.
	SharedRoot string
	// DryRun plans the run without changing anything
	DryRun bool
	// FS defaults to the OS filesystem
	FS types.FS
	// Logger receives the report. Defaults to the "core" component logger.
	Logger *zerolog.Logger
}

func (o Options) roots() (project, shared string) {
	project = o.ProjectRoot
	if project == "" {
		project = "."
	}
	shared = o.SharedRoot
	if shared == "" {
		shared = paths.DefaultSharedRoot
	}
	return project, shared
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return logging.GetLogger("core")
}

// SetupSharedLinks links the shared categories into the project and logs the result
func SetupSharedLinks(opts Options) (report *types.SynchronizationReport) {
	logger := opts.logger()
	project, shared := opts.roots()

	operation := types.OperationSynchronize
	if opts.DryRun {
		operation = types.OperationPlan
	}

	defer func() {
		if r := recover(); r != nil {
			report = internalFailure(operation, project, shared, opts.DryRun, r)
			logging.LogReport(logger, report)
		}
	}()

	done := logging.LogOperationStart(logger, operation)
	defer done()

	s := scanner.New(opts.FS)
	if opts.DryRun {
		report = s.Plan(project, shared)
	} else {
		report = s.Synchronize(project, shared)
	}

	logging.LogReport(logger, report)
	return report
}

// RemoveSharedLinks removes every category link from the project and logs the result
func RemoveSharedLinks(opts Options) *types.SynchronizationReport {
	logger := opts.logger()
	project, _ := opts.roots()

	done := logging.LogOperationStart(logger, types.OperationRemoveAll)
	defer done()

	report := materializer.New(opts.FS).RemoveAll(project)
	logging.LogReport(logger, report)
	return report
}

// ListLinks returns the category links present in the project
func ListLinks(opts Options) []types.LinkRecord {
	project, _ := opts.roots()
	return materializer.New(opts.FS).ListLinks(project)
}

// Inspect reports the status of every category, in category order
func Inspect(opts Options) *types.Inspection {
	project, shared := opts.roots()
	m := materializer.New(opts.FS)

	project = resolve(m, project)
	shared = resolve(m, shared)
	statuses := m.Inspect(project, shared)

	inspection := &types.Inspection{
		ProjectRoot: project,
		SharedRoot:  shared,
		Categories:  make([]types.CategoryStatus, 0, len(statuses)),
	}
	for _, category := range types.Categories() {
		inspection.Categories = append(inspection.Categories, types.CategoryStatus{
			Category: category,
			Status:   statuses[category],
			Source:   category.SourcePath(shared),
			Target:   category.TargetPath(project),
		})
	}
	return inspection
}

func resolve(m *materializer.Materializer, path string) string {
	resolved, err := paths.ResolveRoot(m.FS(), path)
	if err != nil || resolved == "" {
		return path
	}
	return resolved
}

// internalFailure builds a report for a run that could not complete
func internalFailure(operation, project, shared string, dryRun bool, cause interface{}) *types.SynchronizationReport {
	err := errors.Newf(errors.ErrInternal, "synchronization aborted: %v", cause)
	report := types.NewReport(operation, project, shared)
	report.DryRun = dryRun
	for _, category := range types.Categories() {
		report.Add(types.CategoryReport{
			Category:  category,
			Outcome:   types.OutcomeError,
			Source:    category.SourcePath(shared),
			Target:    category.TargetPath(project),
			ErrorCode: string(err.Code),
			Reason:    err.Message,
		})
	}
	return report
}
