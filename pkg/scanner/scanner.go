package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/logging"
	"github.com/arthur-debert/sharelink/pkg/materializer"
	"github.com/arthur-debert/sharelink/pkg/paths"
	"github.com/arthur-debert/sharelink/pkg/types"
)

// Scanner walks the shared categories and links them into a project
type Scanner struct {
	fs types.FS
	m  *materializer.Materializer
}

// New creates a Scanner. A nil fs means the OS filesystem.
func New(fsys types.FS) *Scanner {
	m := materializer.New(fsys)
	return &Scanner{fs: m.FS(), m: m}
}

// Synchronize links every category of sharedRoot into projectRoot on the OS filesystem
func Synchronize(projectRoot, sharedRoot string) *types.SynchronizationReport {
	return New(nil).Synchronize(projectRoot, sharedRoot)
}

// Plan reports what Synchronize would do on the OS filesystem
func Plan(projectRoot, sharedRoot string) *types.SynchronizationReport {
	return New(nil).Plan(projectRoot, sharedRoot)
}

// Synchronize links every category of sharedRoot into projectRoot
func (s *Scanner) Synchronize(projectRoot, sharedRoot string) *types.SynchronizationReport {
	return s.run(types.OperationSynchronize, projectRoot, sharedRoot, false)
}

// Plan makes the same decisions as Synchronize without changing anything
func (s *Scanner) Plan(projectRoot, sharedRoot string) *types.SynchronizationReport {
	return s.run(types.OperationPlan, projectRoot, sharedRoot, true)
}

// pass holds the state of one run
type pass struct {
	*Scanner
	shared string
	dryRun bool
}

func (s *Scanner) run(operation, projectRoot, sharedRoot string, dryRun bool) *types.SynchronizationReport {
	logger := logging.GetLogger("scanner")

	project, projectErr := paths.ResolveRoot(s.fs, projectRoot)
	if project == "" {
		project = projectRoot
	}
	shared, sharedErr := paths.ResolveRoot(s.fs, sharedRoot)
	if shared == "" {
		shared = sharedRoot
	}

	report := types.NewReport(operation, project, shared)
	report.DryRun = dryRun

	logger.Debug().
		Str("operation", operation).
		Str("projectRoot", project).
		Str("sharedRoot", shared).
		Msg("scan started")

	if err := s.requireDir(project, projectErr, errors.ErrProjectRootMissing, "project root"); err != nil {
		fillAll(report, types.OutcomeError, err)
		return report
	}

	if err := s.requireDir(shared, sharedErr, errors.ErrSharedRootMissing, "shared root"); err != nil {
		outcome := types.OutcomeError
		if errors.IsErrorCode(err, errors.ErrSharedRootMissing) {
			outcome = types.OutcomeSkippedMissingSource
		}
		fillAll(report, outcome, err)
		return report
	}

	p := &pass{Scanner: s, shared: shared, dryRun: dryRun}
	for _, category := range types.Categories() {
		report.Add(p.category(category, project))
	}

	logger.Debug().Str("operation", operation).Msg("scan complete")
	return report
}

// requireDir checks that a root exists and is a directory
func (s *Scanner) requireDir(path string, resolveErr error, code errors.ErrorCode, what string) error {
	if resolveErr != nil {
		return errors.Wrapf(resolveErr, code, "%s cannot be resolved", what).WithDetail("path", path)
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(code, "%s does not exist", what).WithDetail("path", path)
		}
		return errors.FromFS(err, errors.ErrFileAccess, "stat "+what, path)
	}
	if !info.IsDir() {
		return errors.Newf(code, "%s is not a directory", what).WithDetail("path", path)
	}
	return nil
}

// fillAll records the same outcome for every category without touching anything
func fillAll(report *types.SynchronizationReport, outcome types.Outcome, err error) {
	for _, category := range types.Categories() {
		report.Add(types.CategoryReport{
			Category:  category,
			Outcome:   outcome,
			Source:    category.SourcePath(report.SharedRoot),
			Target:    category.TargetPath(report.ProjectRoot),
			ErrorCode: string(errors.GetErrorCode(err)),
			Reason:    errors.Reason(err),
		})
	}
}

func (p *pass) category(category types.Category, project string) types.CategoryReport {
	logger := logging.GetLogger("scanner")

	entry := types.CategoryReport{
		Category: category,
		Source:   category.SourcePath(p.shared),
		Target:   category.TargetPath(project),
	}

	if _, err := p.fs.Lstat(entry.Source); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("category", string(category)).Msg("category not present in shared root")
			entry.Outcome = types.OutcomeSkippedMissingSource
			entry.ErrorCode = string(errors.ErrSourceMissing)
			entry.Reason = "source does not exist"
			return entry
		}
		lerr := errors.FromFS(err, errors.ErrFileAccess, "lstat source", entry.Source)
		entry.Outcome = types.OutcomeError
		entry.ErrorCode = string(lerr.Code)
		entry.Reason = errors.Reason(lerr)
		return entry
	}

	entry.Strategy = p.visit(&entry, entry.Source, entry.Target, false)
	summarize(&entry)
	return entry
}

// visit evaluates one shared path against its project path and records what
// happened. assumeAbsent is set when a dry run has only pretended to create
// the parent directory.
func (p *pass) visit(entry *types.CategoryReport, source, target string, assumeAbsent bool) types.Strategy {
	healing := false

	if !assumeAbsent {
		info, err := p.fs.Lstat(target)
		switch {
		case err == nil && info.Mode()&fs.ModeSymlink == 0:
			entry.AddPath(materializer.PathResult(source, target, "", types.OutcomeSkippedExists,
				errors.New(errors.ErrTargetOccupied, "target exists and is not a link")))
			return types.StrategyNone
		case err == nil:
			// Dangling links are replaced wherever they point; working foreign links stay
			switch status := p.m.Check(source, target); {
			case status == types.LinkStatusLinked:
				entry.AddPath(materializer.PathResult(source, target, "", types.OutcomeSkippedExists, nil))
				return types.StrategyNone
			case status != types.LinkStatusBroken && !p.m.IsManaged(target, p.shared):
				entry.AddPath(materializer.PathResult(source, target, "", types.OutcomeSkippedExists,
					errors.New(errors.ErrTargetOccupied, "target is a link outside the shared root")))
				return types.StrategyNone
			}
			healing = true
		case !os.IsNotExist(err):
			entry.AddPath(materializer.PathResult(source, target, "", types.OutcomeError,
				errors.FromFS(err, errors.ErrFileAccess, "lstat target", target)))
			return types.StrategyNone
		}
	}

	strategy, err := p.Decide(source)
	if err != nil {
		entry.AddPath(materializer.PathResult(source, target, "", types.OutcomeError, err))
		return types.StrategyNone
	}

	decision := types.NewLinkDecision(source, target, strategy)
	if decision.Recurse {
		p.expand(entry, decision, healing)
	} else {
		p.link(entry, decision, healing)
	}
	return strategy
}

// link materializes a single directory or file link
func (p *pass) link(entry *types.CategoryReport, d types.LinkDecision, healing bool) {
	outcome := types.OutcomeLinked
	if healing {
		outcome = types.OutcomeHealed
	}

	var err error
	if !p.dryRun {
		if healing {
			outcome, err = p.m.Relink(d.Source, d.Target)
		} else {
			outcome, err = p.m.CreateLink(d.Source, d.Target)
		}
	}
	entry.AddPath(materializer.PathResult(d.Source, d.Target, d.Kind, outcome, err))
}

// expand mirrors d.Source as a real directory and visits each child
func (p *pass) expand(entry *types.CategoryReport, d types.LinkDecision, healing bool) {
	if healing {
		var err error
		if !p.dryRun {
			_, err = p.m.RemoveLink(d.Target)
		}
		outcome := types.OutcomeHealed
		if err != nil {
			outcome = types.OutcomeError
		}
		entry.AddPath(materializer.PathResult(d.Source, d.Target, d.Kind, outcome, err))
		if err != nil {
			return
		}
	}

	if !p.dryRun {
		if err := p.fs.Mkdir(d.Target, 0755); err != nil {
			entry.AddPath(materializer.PathResult(d.Source, d.Target, d.Kind, types.OutcomeError,
				errors.FromFS(err, errors.ErrDirCreate, "create directory", d.Target)))
			return
		}
	}
	entry.Directories = append(entry.Directories, d.Target)

	children, err := p.fs.ReadDir(d.Source)
	if err != nil {
		entry.AddPath(materializer.PathResult(d.Source, d.Target, d.Kind, types.OutcomeError,
			errors.FromFS(err, errors.ErrFileAccess, "read directory", d.Source)))
		return
	}

	for _, child := range children {
		p.visit(entry,
			filepath.Join(d.Source, child.Name()),
			filepath.Join(d.Target, child.Name()),
			p.dryRun)
	}
}

// summarize derives the category outcome from its path results
func summarize(entry *types.CategoryReport) {
	for _, path := range entry.Paths {
		if path.Outcome.IsFailure() {
			entry.Outcome = types.OutcomeError
			entry.ErrorCode = path.ErrorCode
			entry.Reason = path.Reason
			return
		}
	}

	if len(entry.Paths) == 1 && entry.Paths[0].Target == entry.Target {
		entry.Outcome = entry.Paths[0].Outcome
		entry.ErrorCode = entry.Paths[0].ErrorCode
		entry.Reason = entry.Paths[0].Reason
		return
	}

	entry.Outcome = types.OutcomeSkippedExists
	for _, path := range entry.Paths {
		switch {
		case path.Target == entry.Target && path.Outcome == types.OutcomeHealed:
			entry.Outcome = types.OutcomeHealed
			return
		case path.Outcome.IsChange():
			entry.Outcome = types.OutcomeLinked
		}
	}
}
