package sharelink

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link a shared directory tree into a project"
	MsgSyncShort       = "Link the shared categories into the project"
	MsgPlanShort       = "Show what sync would do without changing anything"
	MsgListShort       = "List the category links in the project"
	MsgListLong        = "List shows every category path in the project that is a link, with its resolved destination."
	MsgInspectShort    = "Show the status of every category"
	MsgRemoveShort     = "Remove the category links from the project"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Config prints the configuration sharelink would use, after every layer has been applied, as TOML."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or one topic by name."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigSources = "# loaded from %s\n"
	MsgNoConfigFiles = "# no configuration files found, showing defaults and overrides\n"
	MsgVersionFormat = "sharelink %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrFormat        = "invalid output format: %w"
	MsgErrRender        = "failed to render output: %w"
	MsgErrReportFailed  = "%d categories failed"
	MsgErrBrokenLinks   = "broken links found"
	MsgErrUnknownTopic  = "unknown topic: %s"
	MsgErrLoadTopics    = "failed to load help topics: %w"
	MsgErrRenderConfig  = "failed to render configuration: %w"
	MsgErrProjectRoot   = "failed to determine project root: %w"
	MsgErrCompletionOut = "failed to write completion script: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Read settings from this TOML file as well"
	MsgFlagProject = "Project root to link into (default: current directory)"
	MsgFlagShared  = "Shared root to link from (default: /share)"
	MsgFlagFormat  = "Output format: auto, term, text, json, yaml or xml"
	MsgFlagDryRun  = "Preview changes without executing them"
	MsgFlagStrict  = "Exit with a non-zero status when problems are reported"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/plan-long.txt
	msgPlanLongRaw string
	MsgPlanLong    = strings.TrimSpace(msgPlanLongRaw)

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
