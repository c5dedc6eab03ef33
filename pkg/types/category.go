package types

import (
	"fmt"
	"path/filepath"
)

// Category is one of the fixed top-level directory names eligible for linking
type Category string

const (
	CategoryModels      Category = "models"
	CategoryCustomNodes Category = "custom_nodes"
	CategoryInput       Category = "input"
	CategoryOutput      Category = "output"
	CategoryUser        Category = "user"
)

// categoryOrder is the deterministic evaluation order used by every scan
var categoryOrder = []Category{
	CategoryModels,
	CategoryCustomNodes,
	CategoryInput,
	CategoryOutput,
	CategoryUser,
}

// Categories returns the recognized categories in evaluation order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory validates a category name
func ParseCategory(name string) (Category, error) {
	for _, c := range categoryOrder {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %s", name)
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// SourcePath returns the category location inside the shared root
func (c Category) SourcePath(sharedRoot string) string {
	return filepath.Join(sharedRoot, string(c))
}

// TargetPath returns the category location inside the project root
func (c Category) TargetPath(projectRoot string) string {
	return filepath.Join(projectRoot, string(c))
}
