package materializer

import (
	"io/fs"

	"github.com/arthur-debert/sharelink/pkg/logging"
	"github.com/arthur-debert/sharelink/pkg/paths"
	"github.com/arthur-debert/sharelink/pkg/types"
)

// ListLinks returns the category paths under projectRoot that are links, in
// category order. Entries that cannot be read are skipped.
func (m *Materializer) ListLinks(projectRoot string) []types.LinkRecord {
	logger := logging.GetLogger("materializer")
	root := m.root(projectRoot)

	records := []types.LinkRecord{}
	for _, category := range types.Categories() {
		target := category.TargetPath(root)

		info, err := m.fs.Lstat(target)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			continue
		}

		raw, abs, err := paths.LinkDestination(m.fs, target)
		if err != nil {
			logger.Debug().Err(err).Str("target", target).Msg("cannot read link")
			continue
		}

		record := types.LinkRecord{
			Category:    category,
			Target:      target,
			Destination: raw,
			Resolved:    abs,
		}
		if resolved, err := m.fs.EvalSymlinks(target); err == nil {
			record.Resolved = resolved
		} else {
			record.Broken = true
		}
		records = append(records, record)
	}
	return records
}

// Inspect reports the status of every category path
func (m *Materializer) Inspect(projectRoot, sharedRoot string) map[types.Category]types.LinkStatus {
	project := m.root(projectRoot)
	shared := m.root(sharedRoot)

	statuses := make(map[types.Category]types.LinkStatus, len(types.Categories()))
	for _, category := range types.Categories() {
		statuses[category] = m.check(category.SourcePath(shared), category.TargetPath(project), shared)
	}
	return statuses
}

// RemoveAll removes every category path that is a link. Real directories are
// recorded as not-a-link and left alone.
func (m *Materializer) RemoveAll(projectRoot string) *types.SynchronizationReport {
	root := m.root(projectRoot)
	report := types.NewReport(types.OperationRemoveAll, root, "")

	for _, category := range types.Categories() {
		target := category.TargetPath(root)
		outcome, err := m.RemoveLink(target)

		path := PathResult("", target, "", outcome, err)
		entry := types.CategoryReport{
			Category:  category,
			Outcome:   outcome,
			Target:    target,
			ErrorCode: path.ErrorCode,
			Reason:    path.Reason,
		}
		if outcome != types.OutcomeNotPresent {
			entry.AddPath(path)
		}
		report.Add(entry)
	}
	return report
}

// root resolves a root for reading. Unresolvable roots are used as given.
func (m *Materializer) root(path string) string {
	resolved, err := paths.ResolveRoot(m.fs, path)
	if err != nil || resolved == "" {
		return path
	}
	return resolved
}
