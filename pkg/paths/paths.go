package paths

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sharelink/pkg/types"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvStateDir overrides the XDG state directory for sharelink
	EnvStateDir = "SHARELINK_STATE_DIR"

	// EnvConfigDir overrides the XDG config directory for sharelink
	EnvConfigDir = "SHARELINK_CONFIG_DIR"
)

// Default directories and files
const (
	// DefaultSharedRoot is where the shared tree is mounted when nothing else is configured
	DefaultSharedRoot = "/share"

	// AppDirName is the directory name for sharelink-specific files
	AppDirName = "sharelink"

	// ProjectConfigFile is the name of the per-project configuration file
	ProjectConfigFile = ".sharelink.toml"

	// UserConfigFileName is the name of the user configuration file
	UserConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "sharelink.log"
)

// ResolveRoot returns the absolute, symlink-resolved form of a root directory.
// A root that does not exist is returned absolute and cleaned with a nil
// error, so callers can report it as missing rather than failing.
func ResolveRoot(fsys types.FS, path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", err
	}
	resolved, err := fsys.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return abs, err
	}
	return resolved, nil
}

// ResolveSource returns the absolute form of a link source with its parent
// chain resolved. The final element is kept as named, so a source that is
// itself a link inside the shared tree stays addressed through the tree.
func ResolveSource(fsys types.FS, path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	parent, err := fsys.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return abs
	}
	return filepath.Join(parent, filepath.Base(abs))
}

// Within reports whether path is root or lies below it. Both paths must be
// absolute; no filesystem access is made.
func Within(path, root string) bool {
	if path == "" || root == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// LinkDestination returns the absolute destination stored in the link at
// target. Relative destinations are interpreted against the link's directory.
func LinkDestination(fsys types.FS, target string) (raw string, abs string, err error) {
	raw, err = fsys.Readlink(target)
	if err != nil {
		return "", "", err
	}
	abs = raw
	if !filepath.IsAbs(raw) {
		abs = filepath.Join(filepath.Dir(target), raw)
	}
	return raw, filepath.Clean(abs), nil
}

// StateDir returns the directory sharelink writes its log to
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigDir returns the user configuration directory for sharelink
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// UserConfigFile returns the path to the user configuration file
func UserConfigFile() string {
	return filepath.Join(ConfigDir(), UserConfigFileName)
}

// ProjectConfigPath returns the per-project configuration file path
func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ProjectConfigFile)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}
