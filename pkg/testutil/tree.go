package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/sharelink/pkg/filesystem"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/spf13/afero"
)

// FileTree represents a directory structure for testing.
// Values are a string (file content), a FileTree (directory) or a Link.
type FileTree map[string]interface{}

// Link is a FileTree entry that becomes a symlink to Dest
type Link struct {
	Dest string
}

// CreateTree recursively creates a file tree under basePath
func CreateTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fullPath := filepath.Join(basePath, name)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", fullPath, err)
		}

		switch v := tree[name].(type) {
		case string:
			if err := os.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateTree(t, fullPath, v)
		case Link:
			if err := os.Symlink(v.Dest, fullPath); err != nil {
				t.Fatalf("Failed to create symlink %s: %v", fullPath, err)
			}
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, v)
		}
	}
}

// Sandbox is an isolated pair of roots
type Sandbox struct {
	t *testing.T

	// Base contains both roots
	Base    string
	Project string
	Shared  string
}

// NewSandbox creates <tmp>/project and <tmp>/share. Paths are fully
// resolved so they compare equal to link destinations.
func NewSandbox(t *testing.T) *Sandbox {
	t.Helper()

	base, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	s := &Sandbox{
		t:       t,
		Base:    base,
		Project: filepath.Join(base, "project"),
		Shared:  filepath.Join(base, "share"),
	}
	for _, dir := range []string{s.Project, s.Shared} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return s
}

// AferoFS returns the sandbox's filesystem seen through afero's OsFs
func (s *Sandbox) AferoFS() types.FS {
	return filesystem.NewAferoFS(afero.NewOsFs())
}

// WithShared populates the shared root
func (s *Sandbox) WithShared(tree FileTree) *Sandbox {
	s.t.Helper()
	CreateTree(s.t, s.Shared, tree)
	return s
}

// WithProject populates the project root
func (s *Sandbox) WithProject(tree FileTree) *Sandbox {
	s.t.Helper()
	CreateTree(s.t, s.Project, tree)
	return s
}

// SharedPath joins parts onto the shared root
func (s *Sandbox) SharedPath(parts ...string) string {
	return filepath.Join(append([]string{s.Shared}, parts...)...)
}

// ProjectPath joins parts onto the project root
func (s *Sandbox) ProjectPath(parts ...string) string {
	return filepath.Join(append([]string{s.Project}, parts...)...)
}

// RemoveShared deletes the shared root entirely
func (s *Sandbox) RemoveShared() {
	s.t.Helper()
	if err := os.RemoveAll(s.Shared); err != nil {
		s.t.Fatalf("Failed to remove shared root: %v", err)
	}
}
