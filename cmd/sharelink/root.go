// Package sharelink implements the sharelink command line interface
package sharelink

import (
	"fmt"

	"github.com/arthur-debert/sharelink/pkg/config"
	"github.com/arthur-debert/sharelink/pkg/core"
	"github.com/arthur-debert/sharelink/pkg/display"
	"github.com/arthur-debert/sharelink/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flag values shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
	project    string
	shared     string
	format     string
	dryRun     bool
}

// app carries what PersistentPreRunE prepared for the command being run
type app struct {
	flags globalFlags
	cfg   *config.Config
}

// flagKeys maps persistent flags to configuration keys. Only flags the user
// set are applied, so unset flags never mask files or environment.
var flagKeys = map[string]string{
	"verbose": "log.verbosity",
	"project": "roots.project",
	"shared":  "roots.shared",
	"format":  "output.format",
	"dry-run": "sync.dryrun",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	// Initialize custom template formatting
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:   "sharelink",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&a.flags.configFile, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&a.flags.project, "project", "p", "", MsgFlagProject)
	pf.StringVarP(&a.flags.shared, "shared", "s", "", MsgFlagShared)
	pf.StringVarP(&a.flags.format, "format", "f", "auto", MsgFlagFormat)
	pf.BoolVarP(&a.flags.dryRun, "dry-run", "n", false, MsgFlagDryRun)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return display.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "COMMANDS:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(
		newSyncCmd(a),
		newPlanCmd(a),
		newListCmd(a),
		newInspectCmd(a),
		newRemoveCmd(a),
		newConfigCmd(a),
		newTopicsCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)

	installTopics(rootCmd)

	return rootCmd
}

// skipConfig marks commands that run without loading configuration
const skipConfig = "sharelink/skip-config"

func (a *app) load(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	overrides := make(map[string]interface{})
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch name {
		case "verbose":
			overrides[key] = a.flags.verbosity
		case "dry-run":
			overrides[key] = a.flags.dryRun
		default:
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile:  a.flags.configFile,
		ProjectRoot: a.flags.project,
		Flags:       overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: cfg.Log.Verbosity,
		File:      cfg.Log.File,
		Console:   cmd.ErrOrStderr(),
	})
	log.Debug().Strs("sources", cfg.Sources).Msg("Configuration loaded")
	return nil
}

// coreOptions turns the loaded configuration into core options
func (a *app) coreOptions() (core.Options, error) {
	project, err := a.cfg.ProjectRoot()
	if err != nil {
		return core.Options{}, fmt.Errorf(MsgErrProjectRoot, err)
	}
	return core.Options{
		ProjectRoot: project,
		SharedRoot:  a.cfg.Roots.Shared,
		DryRun:      a.cfg.Sync.DryRun,
	}, nil
}

// renderer creates the output renderer for the command's stdout
func (a *app) renderer(cmd *cobra.Command) (display.Renderer, error) {
	format, err := display.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return display.New(cmd.OutOrStdout(), format)
}
