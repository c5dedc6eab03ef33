// Package filesystem provides filesystem implementations for sharelink.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an adapter over afero filesystems that expose
// afero's optional symlink capabilities.
package filesystem
