package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/types"
)

// Decide returns the linking strategy for a shared path.
//
// A directory with no non-directory entry at any depth is linked as a unit.
// Anything that is not a directory is linked as a file. Any other directory
// is expanded. Symlinks are leaves: they are linked as they are and never
// descended into.
func (s *Scanner) Decide(source string) (types.Strategy, error) {
	info, err := s.fs.Lstat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return types.StrategyNone, errors.New(errors.ErrSourceMissing, "source does not exist").
				WithDetail("source", source)
		}
		return types.StrategyNone, errors.FromFS(err, errors.ErrFileAccess, "lstat source", source)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := s.fs.Stat(source); err == nil && target.IsDir() {
			return types.StrategyDirectoryLink, nil
		}
		return types.StrategyFileLink, nil
	}

	if !info.IsDir() {
		return types.StrategyFileLink, nil
	}

	hasFiles, err := s.containsFiles(source)
	if err != nil {
		return types.StrategyNone, err
	}
	if hasFiles {
		return types.StrategyExpand, nil
	}
	return types.StrategyDirectoryLink, nil
}

// containsFiles reports whether any non-directory entry exists below dir
func (s *Scanner) containsFiles(dir string) (bool, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return false, errors.FromFS(err, errors.ErrFileAccess, "read directory", dir)
	}

	for _, entry := range entries {
		if !entry.IsDir() || entry.Type()&fs.ModeSymlink != 0 {
			return true, nil
		}
	}
	for _, entry := range entries {
		found, err := s.containsFiles(filepath.Join(dir, entry.Name()))
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}
