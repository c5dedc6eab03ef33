package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	HeadingStyle = lipgloss.NewStyle().Foreground(HeadingColor).Bold(true)
	QuietStyle   = lipgloss.NewStyle().Foreground(QuietColor)

	ChangedStyle = lipgloss.NewStyle().Foreground(ChangedColor).Bold(true)
	HealedStyle  = lipgloss.NewStyle().Foreground(HealedColor).Bold(true)
	BlockedStyle = lipgloss.NewStyle().Foreground(BlockedColor)
	FailedStyle  = lipgloss.NewStyle().Foreground(FailedColor).Bold(true)

	// StrategyStyle renders directory-link, file-link and expand
	StrategyStyle = lipgloss.NewStyle().Foreground(HealedColor)

	TargetStyle = lipgloss.NewStyle().Foreground(TargetColor)
	SourceStyle = lipgloss.NewStyle().Foreground(SourceColor).Italic(true)
)

// Indent pads s by level steps of two spaces
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
