package sharelink

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sharelink/internal/version"
	"github.com/arthur-debert/sharelink/pkg/core"
	"github.com/arthur-debert/sharelink/pkg/display"
	"github.com/arthur-debert/sharelink/pkg/topics"
	"github.com/arthur-debert/sharelink/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var noConfig = map[string]string{skipConfig: "true"}

func newSyncCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.coreOptions()
			if err != nil {
				return err
			}
			return a.runSync(cmd, opts, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.coreOptions()
			if err != nil {
				return err
			}
			opts.DryRun = true
			return a.runSync(cmd, opts, false)
		},
	}
}

func (a *app) runSync(cmd *cobra.Command, opts core.Options, strict bool) error {
	r, err := a.renderer(cmd)
	if err != nil {
		return err
	}

	report := core.SetupSharedLinks(opts)
	if err := r.RenderReport(report); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}

	if strict && report.HasErrors() {
		return fmt.Errorf(MsgErrReportFailed, report.Counts()[types.OutcomeError])
	}
	return nil
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.coreOptions()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RenderLinks(core.ListLinks(opts)); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
	}
}

func newInspectCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "inspect",
		Aliases: []string{"status"},
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.coreOptions()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			inspection := core.Inspect(opts)
			if err := r.RenderInspection(inspection); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			if strict && inspection.HasProblems() {
				return fmt.Errorf(MsgErrBrokenLinks)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   MsgRemoveShort,
		Long:    MsgRemoveLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.coreOptions()
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			if opts.DryRun {
				log.Info().Msg("Dry run, listing links instead of removing them")
				if err := r.RenderLinks(core.ListLinks(opts)); err != nil {
					return fmt.Errorf(MsgErrRender, err)
				}
				return nil
			}

			if err := r.RenderReport(core.RemoveSharedLinks(opts)); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var showSources bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showSources {
				if len(a.cfg.Sources) == 0 {
					fmt.Fprint(out, MsgNoConfigFiles)
				}
				for _, src := range a.cfg.Sources {
					fmt.Fprintf(out, MsgConfigSources, src)
				}
			}

			data, err := a.cfg.TOML()
			if err != nil {
				return fmt.Errorf(MsgErrRenderConfig, err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showSources, "sources", false, "Also print which files were loaded")
	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "topics [topic]",
		Short:       MsgTopicsShort,
		Long:        MsgTopicsLong,
		GroupID:     "misc",
		Args:        cobra.MaximumNArgs(1),
		Annotations: noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := topicManager()
			if err != nil {
				return fmt.Errorf(MsgErrLoadTopics, err)
			}
			if len(args) == 0 {
				m.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			topic, ok := m.Get(args[0])
			if !ok {
				return fmt.Errorf(MsgErrUnknownTopic, args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Annotations: noConfig,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           noConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(out)
			case "zsh":
				err = cmd.Root().GenZshCompletion(out)
			case "fish":
				err = cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				return fmt.Errorf(MsgErrCompletionOut, err)
			}
			return nil
		},
	}
}

// topicManager loads the embedded topics, rendering markdown only when
// stdout is a capable terminal
func topicManager() (*topics.Manager, error) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if display.DetectFormat(os.Stdout) == display.FormatTerminal {
		renderer = topics.NewGlamourRenderer()
	}
	return topics.New(topics.Options{Renderer: renderer})
}

// installTopics makes "help <topic>" work alongside "help <command>"
func installTopics(rootCmd *cobra.Command) {
	m, err := topicManager()
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd)
}
