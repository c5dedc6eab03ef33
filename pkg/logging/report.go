package logging

import (
	"strings"

	"github.com/arthur-debert/sharelink/pkg/errors"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/rs/zerolog"
)

// LogReport renders a report as log events. The core only builds reports;
// this is where they become visible.
func LogReport(logger zerolog.Logger, report *types.SynchronizationReport) {
	if report == nil {
		return
	}

	if report.Operation != types.OperationRemoveAll && allMissingSharedRoot(report) {
		logger.Warn().
			Str("sharedRoot", report.SharedRoot).
			Msg("Shared directory does not exist, skipping link creation")
	}

	for _, entry := range report.Categories {
		for _, p := range entry.Paths {
			pathEvent(logger, report.DryRun, p).
				Str("category", string(entry.Category)).
				Msg(pathMessage(p.Outcome, report.DryRun))
		}
		for _, dir := range entry.Directories {
			logger.Debug().Str("category", string(entry.Category)).Str("dir", dir).Msg("Created directory")
		}
		categoryEvent(logger, entry).
			Str("category", string(entry.Category)).
			Str("outcome", string(entry.Outcome)).
			Str("strategy", string(entry.Strategy)).
			Str("target", entry.Target).
			Msg("Category processed")
	}

	counts := report.Counts()
	summary := logger.Info().
		Str("operation", report.Operation).
		Str("projectRoot", report.ProjectRoot).
		Bool("dryRun", report.DryRun)
	for _, o := range types.AllOutcomes() {
		if n := counts[o]; n > 0 {
			summary = summary.Int(string(o), n)
		}
	}
	summary.Msg("Report complete")
}

func allMissingSharedRoot(report *types.SynchronizationReport) bool {
	if len(report.Categories) == 0 {
		return false
	}
	for _, e := range report.Categories {
		if e.ErrorCode != string(errors.ErrSharedRootMissing) {
			return false
		}
	}
	return true
}

func pathEvent(logger zerolog.Logger, dryRun bool, p types.PathResult) *zerolog.Event {
	var ev *zerolog.Event
	switch {
	case p.Outcome == types.OutcomeError:
		ev = logger.Error().Str("code", p.ErrorCode).Str("reason", p.Reason)
	case p.Outcome.IsChange() && !dryRun:
		ev = logger.Info()
	case p.Outcome == types.OutcomeNotALink:
		ev = logger.Warn().Str("reason", p.Reason)
	default:
		ev = logger.Debug()
		if p.Reason != "" {
			ev = ev.Str("reason", p.Reason)
		}
	}
	ev = ev.Str("target", p.Target)
	if p.Source != "" {
		ev = ev.Str("source", p.Source)
	}
	return ev
}

func categoryEvent(logger zerolog.Logger, entry types.CategoryReport) *zerolog.Event {
	if entry.Outcome == types.OutcomeError {
		return logger.Error().Str("code", entry.ErrorCode).Str("reason", entry.Reason)
	}
	return logger.Debug()
}

func pathMessage(outcome types.Outcome, dryRun bool) string {
	prefix := ""
	if dryRun {
		prefix = "Would have "
	}
	switch outcome {
	case types.OutcomeLinked:
		return sentence(prefix, "created symlink")
	case types.OutcomeHealed:
		return sentence(prefix, "replaced broken symlink")
	case types.OutcomeRemoved:
		return sentence(prefix, "removed symlink")
	case types.OutcomeSkippedExists:
		return "Target already exists, skipping"
	case types.OutcomeSkippedMissingSource:
		return "Source does not exist in shared directory"
	case types.OutcomeNotPresent:
		return "Nothing to remove"
	case types.OutcomeNotALink:
		return "Refusing to remove real data"
	default:
		return "Failed to process path"
	}
}

func sentence(prefix, verb string) string {
	if prefix == "" {
		return strings.ToUpper(verb[:1]) + verb[1:]
	}
	return prefix + verb
}
