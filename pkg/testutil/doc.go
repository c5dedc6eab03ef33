// Package testutil provides fixtures for testing sharelink components.
//
// Key components:
//   - Sandbox: a temporary project root and shared root on the real filesystem
//   - FileTree: declarative directory layouts, including symlinks
//   - Snapshot: a comparable picture of a tree, used to prove nothing changed
//   - FaultFS: a types.FS wrapper that injects errors and counts mutations
//
// Symlink semantics differ between in-memory filesystems and the OS, so
// link tests run against t.TempDir().
package testutil
