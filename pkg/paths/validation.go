package paths

import (
	"strings"

	"github.com/arthur-debert/sharelink/pkg/errors"
)

// ValidatePath rejects paths that can never name a root:
// empty paths, paths with null bytes and overlong paths.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}
