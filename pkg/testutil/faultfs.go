package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/sharelink/pkg/types"
)

// Op names a filesystem operation that FaultFS can fail
type Op string

const (
	OpStat         Op = "stat"
	OpLstat        Op = "lstat"
	OpMkdir        Op = "mkdir"
	OpMkdirAll     Op = "mkdirall"
	OpReadDir      Op = "readdir"
	OpSymlink      Op = "symlink"
	OpReadlink     Op = "readlink"
	OpEvalSymlinks Op = "evalsymlinks"
	OpRemove       Op = "remove"
)

// FaultFS wraps a types.FS, failing selected operations on selected paths
// and recording every mutating call
type FaultFS struct {
	base types.FS

	mu        sync.Mutex
	faults    map[Op]map[string]error
	mutations []string
}

// NewFaultFS wraps base
func NewFaultFS(base types.FS) *FaultFS {
	return &FaultFS{
		base:   base,
		faults: make(map[Op]map[string]error),
	}
}

// Fail makes op on path return err. A nil err means fs.ErrPermission.
func (f *FaultFS) Fail(op Op, path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		err = fs.ErrPermission
	}
	if f.faults[op] == nil {
		f.faults[op] = make(map[string]error)
	}
	f.faults[op][filepath.Clean(path)] = err
	return f
}

// Mutations returns the mutating calls made so far, as "op path"
func (f *FaultFS) Mutations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.mutations...)
}

func (f *FaultFS) lookup(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faults[op][filepath.Clean(path)]
}

func (f *FaultFS) fault(op Op, path string) error {
	if err := f.lookup(op, path); err != nil {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *FaultFS) record(op Op, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mutations = append(f.mutations, string(op)+" "+path)
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpStat, name); err != nil {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.fault(OpLstat, name); err != nil {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *FaultFS) Mkdir(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdir, path); err != nil {
		return err
	}
	f.record(OpMkdir, path)
	return f.base.Mkdir(path, perm)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault(OpMkdirAll, path); err != nil {
		return err
	}
	f.record(OpMkdirAll, path)
	return f.base.MkdirAll(path, perm)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.base.ReadDir(name)
}

func (f *FaultFS) Symlink(oldname, newname string) error {
	if err := f.lookup(OpSymlink, newname); err != nil {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: err}
	}
	f.record(OpSymlink, newname)
	return f.base.Symlink(oldname, newname)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.fault(OpReadlink, name); err != nil {
		return "", err
	}
	return f.base.Readlink(name)
}

func (f *FaultFS) EvalSymlinks(path string) (string, error) {
	if err := f.fault(OpEvalSymlinks, path); err != nil {
		return "", err
	}
	return f.base.EvalSymlinks(path)
}

func (f *FaultFS) Remove(name string) error {
	if err := f.fault(OpRemove, name); err != nil {
		return err
	}
	f.record(OpRemove, name)
	return f.base.Remove(name)
}

var _ types.FS = (*FaultFS)(nil)
