package materializer

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/filesystem"
	"github.com/arthur-debert/sharelink/pkg/logging"
	"github.com/arthur-debert/sharelink/pkg/paths"
	"github.com/arthur-debert/sharelink/pkg/types"
)

// Materializer performs link operations against a filesystem
type Materializer struct {
	fs types.FS
}

// New creates a Materializer. A nil fs means the OS filesystem.
func New(fsys types.FS) *Materializer {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Materializer{fs: fsys}
}

// FS returns the filesystem the materializer operates on
func (m *Materializer) FS() types.FS {
	return m.fs
}

// Destination returns the value written into a link for source: absolute,
// parent chain resolved, leaf kept
func (m *Materializer) Destination(source string) string {
	return paths.ResolveSource(m.fs, source)
}

// CreateLink makes target a link to source.
//
// An existing link to source that resolves is left alone (skipped-exists).
// A broken link is replaced (healed). Anything else at target is reported
// with TARGET_OCCUPIED and left untouched.
//
// The link destination is Destination(source): the parent chain is resolved
// but the last element is kept, so when source is itself a link inside the
// shared tree the new link points at that link, not at its final target.
func (m *Materializer) CreateLink(source, target string) (types.Outcome, error) {
	logger := logging.GetLogger("materializer")

	if _, err := m.fs.Lstat(source); err != nil {
		if os.IsNotExist(err) {
			return types.OutcomeSkippedMissingSource, errors.New(errors.ErrSourceMissing, "source does not exist").
				WithDetail("source", source)
		}
		return types.OutcomeError, errors.FromFS(err, errors.ErrFileAccess, "lstat source", source)
	}

	dest := m.Destination(source)

	info, err := m.fs.Lstat(target)
	if err != nil {
		if !os.IsNotExist(err) {
			return types.OutcomeError, errors.FromFS(err, errors.ErrFileAccess, "lstat target", target)
		}
		if err := m.link(dest, target); err != nil {
			return types.OutcomeError, err
		}
		logger.Debug().Str("source", dest).Str("target", target).Msg("created symlink")
		return types.OutcomeLinked, nil
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return types.OutcomeSkippedExists, errors.New(errors.ErrTargetOccupied, "target exists and is not a link").
			WithDetail("target", target)
	}

	_, abs, err := paths.LinkDestination(m.fs, target)
	if err != nil {
		return types.OutcomeError, errors.FromFS(err, errors.ErrFileAccess, "readlink", target)
	}

	broken := !m.resolves(target)
	if m.matches(abs, dest) && !broken {
		logger.Trace().Str("target", target).Msg("symlink already correct")
		return types.OutcomeSkippedExists, nil
	}
	if !broken {
		return types.OutcomeSkippedExists, errors.New(errors.ErrTargetOccupied, "target is a link to another location").
			WithDetails(map[string]interface{}{"target": target, "destination": abs})
	}

	logger.Debug().Str("target", target).Str("was", abs).Msg("replacing broken symlink")
	return m.Relink(source, target)
}

// Relink removes the link at target, if any, and links it to source.
// Real data at target is never removed.
func (m *Materializer) Relink(source, target string) (types.Outcome, error) {
	info, err := m.fs.Lstat(target)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink == 0:
		return types.OutcomeSkippedExists, errors.New(errors.ErrTargetOccupied, "target exists and is not a link").
			WithDetail("target", target)
	case err == nil:
		if err := m.fs.Remove(target); err != nil {
			return types.OutcomeError, errors.FromFS(err, errors.ErrSymlinkRemove, "remove link", target)
		}
	case !os.IsNotExist(err):
		return types.OutcomeError, errors.FromFS(err, errors.ErrFileAccess, "lstat target", target)
	}

	if err := m.link(m.Destination(source), target); err != nil {
		return types.OutcomeError, err
	}
	return types.OutcomeHealed, nil
}

// RemoveLink deletes the link at target. Non-links are reported with
// NOT_A_LINK and left in place.
func (m *Materializer) RemoveLink(target string) (types.Outcome, error) {
	info, err := m.fs.Lstat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return types.OutcomeNotPresent, nil
		}
		return types.OutcomeError, errors.FromFS(err, errors.ErrFileAccess, "lstat target", target)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return types.OutcomeNotALink, errors.New(errors.ErrNotALink, "target is not a link").
			WithDetail("target", target)
	}

	if err := m.fs.Remove(target); err != nil {
		return types.OutcomeError, errors.FromFS(err, errors.ErrSymlinkRemove, "remove link", target)
	}

	logger := logging.GetLogger("materializer")
	logger.Debug().Str("target", target).Msg("removed symlink")
	return types.OutcomeRemoved, nil
}

// Check reports the status of target against its expected source. A working
// link to anywhere else is reported as linked-elsewhere.
func (m *Materializer) Check(source, target string) types.LinkStatus {
	return m.check(source, target, "")
}

// IsManaged reports whether target is a link whose destination is the shared
// root or lies below it
func (m *Materializer) IsManaged(target, sharedRoot string) bool {
	info, err := m.fs.Lstat(target)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return false
	}
	_, abs, err := paths.LinkDestination(m.fs, target)
	if err != nil {
		return false
	}
	return paths.Within(abs, sharedRoot) || paths.Within(paths.ResolveSource(m.fs, abs), sharedRoot)
}

// check classifies target. When sharedRoot is set, a working link into the
// shared root that is not the expected one counts as broken.
func (m *Materializer) check(source, target, sharedRoot string) types.LinkStatus {
	info, err := m.fs.Lstat(target)
	if err != nil {
		if _, serr := m.fs.Lstat(source); serr != nil {
			return types.LinkStatusSourceMissing
		}
		return types.LinkStatusNotPresent
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return types.LinkStatusRealDirectory
	}

	_, abs, err := paths.LinkDestination(m.fs, target)
	if err != nil || !m.resolves(target) {
		return types.LinkStatusBroken
	}
	if m.matches(abs, m.Destination(source)) {
		return types.LinkStatusLinked
	}
	if sharedRoot != "" && m.IsManaged(target, sharedRoot) {
		return types.LinkStatusBroken
	}
	return types.LinkStatusLinkedElsewhere
}

// link creates missing parents and then the symlink itself
func (m *Materializer) link(dest, target string) error {
	if err := m.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.FromFS(err, errors.ErrDirCreate, "create parent directory", filepath.Dir(target))
	}
	if err := m.fs.Symlink(dest, target); err != nil {
		return errors.FromFS(err, errors.ErrSymlinkCreate, "create symlink", target).
			WithDetail("source", dest)
	}
	return nil
}

// resolves reports whether the link at target can be followed to an existing entry
func (m *Materializer) resolves(target string) bool {
	_, err := m.fs.Stat(target)
	return err == nil
}

// matches compares a link's absolute destination with the expected one,
// tolerating links written through an unresolved parent path
func (m *Materializer) matches(actual, expected string) bool {
	if filepath.Clean(actual) == filepath.Clean(expected) {
		return true
	}
	return paths.ResolveSource(m.fs, actual) == filepath.Clean(expected)
}
