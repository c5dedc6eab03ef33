package types

import (
	"io/fs"
)

// FS is the filesystem interface required for sharelink operations
type FS interface {
	// Stat follows links; Lstat does not
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	EvalSymlinks(path string) (string, error)

	// Remove deletes a single entry; it never recurses
	Remove(name string) error
}
