package display

import (
	"os"
	"path/filepath"
	"testing"
)

// createTemp opens a regular file, which is never a terminal
func createTemp(t *testing.T) (*os.File, error) {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() { _ = f.Close() })
	return f, nil
}
