package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color adapts to light and dark terminals.
var (
	// ChangedColor marks paths that were linked, healed or removed
	ChangedColor = lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#5FD68A"}

	// HealedColor marks links that replaced a broken one
	HealedColor = lipgloss.AdaptiveColor{Light: "#0B6E8A", Dark: "#5CC8E6"}

	// BlockedColor marks real data or foreign links that were left alone
	BlockedColor = lipgloss.AdaptiveColor{Light: "#A86400", Dark: "#F2B94B"}

	// FailedColor marks errors
	FailedColor = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#F2787A"}

	HeadingColor = lipgloss.AdaptiveColor{Light: "#1B1F24", Dark: "#EEF1F4"}
	QuietColor   = lipgloss.AdaptiveColor{Light: "#6A737D", Dark: "#9AA4AE"}

	// TargetColor is used for project paths, SourceColor for shared ones
	TargetColor = lipgloss.AdaptiveColor{Light: "#3F4A56", Dark: "#C9D1D9"}
	SourceColor = lipgloss.AdaptiveColor{Light: "#5B3CC4", Dark: "#B7A4F5"}
)
