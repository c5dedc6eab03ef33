// Package paths provides centralized path handling for sharelink.
//
// It resolves the project and shared roots into the absolute, symlink-resolved
// form every link destination is built from, answers containment questions
// ("is this destination under the shared root?"), and locates sharelink's own
// files following the XDG Base Directory specification.
package paths
