// Package materializer creates, verifies and removes the symbolic links that
// connect a project tree to the shared tree.
//
// Every operation reads the filesystem fresh and checks a path immediately
// before changing it. Real files and directories are never modified or
// removed; only symlinks are.
package materializer
