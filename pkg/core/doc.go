// Package core is the entry point applications call to share directories
// with a project.
//
// SetupSharedLinks is meant to be called once during application start-up,
// with explicit roots. It resolves the roots, runs the scanner (or plans the
// run when DryRun is set) and hands the report to the logging collaborator.
// It never returns an error and never panics: a failure anywhere ends up as
// an error entry in the report.
//
// # Linking strategy
//
// Each category under the shared root is linked in the shallowest way that
// keeps the project tree writable where it has to be:
//
//  1. A category whose subtree holds no files at all is linked as a single
//     directory link.
//
//  2. A category that is itself a file is linked as a single file link.
//
//  3. Any other category is mirrored as a real directory, and each child is
//     evaluated with the same rules.
//
// Existing real files and directories in the project are never modified.
// Links pointing outside the shared root are left alone too. Links pointing
// into the shared root that are broken or stale are replaced.
package core
