package style

import (
	"fmt"

	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/pterm/pterm"
)

// Leading symbols for path lines
var (
	ChangedIndicator = ChangedStyle.Render("✓")
	HealedIndicator  = HealedStyle.Render("↻")
	FailedIndicator  = FailedStyle.Render("✗")
	BlockedIndicator = BlockedStyle.Render("!")
	SkippedIndicator = QuietStyle.Render("○")
)

// OutcomeStyle returns the badge style for an outcome
func OutcomeStyle(outcome types.Outcome) *pterm.Style {
	switch outcome {
	case types.OutcomeLinked, types.OutcomeRemoved:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.OutcomeHealed:
		return pterm.NewStyle(pterm.BgCyan, pterm.FgBlack)
	case types.OutcomeError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case types.OutcomeNotALink:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusStyle returns the badge style for a link status
func StatusStyle(status types.LinkStatus) *pterm.Style {
	switch status {
	case types.LinkStatusLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case types.LinkStatusBroken:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case types.LinkStatusRealDirectory, types.LinkStatusLinkedElsewhere:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case types.LinkStatusNotPresent:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeIndicator picks the leading symbol for an outcome
func OutcomeIndicator(outcome types.Outcome) string {
	switch {
	case outcome == types.OutcomeHealed:
		return HealedIndicator
	case outcome.IsFailure():
		return FailedIndicator
	case outcome.IsChange():
		return ChangedIndicator
	case outcome == types.OutcomeNotALink:
		return BlockedIndicator
	default:
		return SkippedIndicator
	}
}

// Badge renders text padded to width with the given style
func Badge(s *pterm.Style, text string, width int) string {
	return s.Sprint(fmt.Sprintf(" %-*s ", width, text))
}
