package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// Snapshot maps every path under a root (relative, slash separated) to a
// description: "dir", "file:<content>" or "link:<destination>".
// Symlinks are recorded, never followed.
type Snapshot map[string]string

// TakeSnapshot walks root and records its state. A missing root yields an
// empty snapshot.
func TakeSnapshot(t *testing.T, root string) Snapshot {
	t.Helper()

	snap := Snapshot{}
	if _, err := os.Lstat(root); os.IsNotExist(err) {
		return snap
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			dest, err := os.Readlink(path)
			if err != nil {
				return err
			}
			snap[rel] = "link:" + dest
		case d.IsDir():
			snap[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			snap[rel] = "file:" + string(data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to snapshot %s: %v", root, err)
	}
	return snap
}
