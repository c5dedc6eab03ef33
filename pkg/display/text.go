package display

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sharelink/pkg/style"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

const (
	categoryWidth = 13
	outcomeWidth  = 22
)

// textRenderer renders human readable output. rich enables colors.
type textRenderer struct {
	w    io.Writer
	rich bool
}

func newTextRenderer(w io.Writer, rich bool) *textRenderer {
	return &textRenderer{w: w, rich: rich}
}

func (r *textRenderer) paint(s lipgloss.Style, text string) string {
	if !r.rich {
		return text
	}
	return s.Render(text)
}

func (r *textRenderer) badge(s *pterm.Style, text string) string {
	if !r.rich {
		return fmt.Sprintf("%-*s", outcomeWidth, text)
	}
	return style.Badge(s, text, outcomeWidth-2)
}

func (r *textRenderer) indicator(outcome types.Outcome) string {
	if !r.rich {
		switch {
		case outcome.IsFailure():
			return "x"
		case outcome.IsChange():
			return "+"
		case outcome == types.OutcomeNotALink:
			return "!"
		default:
			return "-"
		}
	}
	return style.OutcomeIndicator(outcome)
}

// RenderReport renders a report, one block per category
func (r *textRenderer) RenderReport(report *types.SynchronizationReport) error {
	var out strings.Builder

	out.WriteString(r.paint(style.HeadingStyle, reportTitle(report)) + "\n")
	out.WriteString(r.paint(style.QuietStyle, rootsLine(report.ProjectRoot, report.SharedRoot)) + "\n\n")

	for _, entry := range report.Categories {
		line := fmt.Sprintf("%s %-*s %s", r.indicator(entry.Outcome), categoryWidth, entry.Category,
			r.badge(style.OutcomeStyle(entry.Outcome), string(entry.Outcome)))
		if entry.Strategy != types.StrategyNone {
			line += " " + r.paint(style.StrategyStyle, string(entry.Strategy))
		}
		if entry.Reason != "" && entry.Outcome != types.OutcomeLinked {
			line += " " + r.paint(style.QuietStyle, "("+entry.Reason+")")
		}
		out.WriteString(line + "\n")

		if !showPaths(entry) {
			continue
		}
		for _, p := range entry.Paths {
			pathLine := fmt.Sprintf("%s %s", r.indicator(p.Outcome), r.paint(style.TargetStyle, relative(report.ProjectRoot, p.Target)))
			if p.Source != "" && p.Outcome.IsChange() {
				pathLine += " -> " + r.paint(style.SourceStyle, p.Source)
			}
			pathLine += " " + r.paint(style.QuietStyle, "["+string(p.Outcome)+"]")
			if p.Reason != "" {
				pathLine += " " + r.paint(style.QuietStyle, p.Reason)
			}
			out.WriteString(style.Indent(pathLine, 2) + "\n")
		}
	}

	out.WriteString("\n" + r.summary(report) + "\n")
	_, err := io.WriteString(r.w, out.String())
	return err
}

// RenderInspection renders one line per category
func (r *textRenderer) RenderInspection(inspection *types.Inspection) error {
	var out strings.Builder

	out.WriteString(r.paint(style.HeadingStyle, "Inspect") + "\n")
	out.WriteString(r.paint(style.QuietStyle, rootsLine(inspection.ProjectRoot, inspection.SharedRoot)) + "\n\n")

	for _, c := range inspection.Categories {
		out.WriteString(fmt.Sprintf("%-*s %s %s\n", categoryWidth, c.Category,
			r.badge(style.StatusStyle(c.Status), string(c.Status)),
			r.paint(style.TargetStyle, c.Target)))
	}

	_, err := io.WriteString(r.w, out.String())
	return err
}

// RenderLinks renders one line per link
func (r *textRenderer) RenderLinks(links []types.LinkRecord) error {
	if len(links) == 0 {
		_, err := io.WriteString(r.w, r.paint(style.QuietStyle, "No category links found")+"\n")
		return err
	}

	var out strings.Builder
	for _, link := range links {
		line := fmt.Sprintf("%-*s %s -> %s", categoryWidth, link.Category,
			r.paint(style.TargetStyle, link.Target),
			r.paint(style.SourceStyle, link.Resolved))
		if link.Broken {
			line += " " + r.paint(style.FailedStyle, "(broken)")
		}
		out.WriteString(line + "\n")
	}

	_, err := io.WriteString(r.w, out.String())
	return err
}

func (r *textRenderer) summary(report *types.SynchronizationReport) string {
	counts := report.Counts()
	parts := []string{}
	for _, o := range types.AllOutcomes() {
		if n := counts[o]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, o))
		}
	}
	if len(parts) == 0 {
		return r.paint(style.QuietStyle, "Nothing to do")
	}

	text := "Summary: " + strings.Join(parts, ", ")
	if report.HasErrors() {
		return r.paint(style.FailedStyle, text)
	}
	return r.paint(style.ChangedStyle, text)
}

func reportTitle(report *types.SynchronizationReport) string {
	var title string
	switch report.Operation {
	case types.OperationPlan:
		title = "Plan"
	case types.OperationRemoveAll:
		title = "Remove"
	default:
		title = "Synchronize"
	}
	if report.DryRun {
		title += " (dry run)"
	}
	return title
}

func rootsLine(project, shared string) string {
	if shared == "" {
		return "project " + project
	}
	return fmt.Sprintf("project %s, shared %s", project, shared)
}

// showPaths hides the single path entry of a category handled as a unit
func showPaths(entry types.CategoryReport) bool {
	if len(entry.Paths) == 0 {
		return false
	}
	return !(len(entry.Paths) == 1 && entry.Paths[0].Target == entry.Target)
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
