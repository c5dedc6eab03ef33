// Command sharelink-gendocs writes the man page, markdown reference and
// shell completion scripts for sharelink. It is run at release time.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sharelink/cmd/sharelink"
	"github.com/arthur-debert/sharelink/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var shells = []string{"bash", "zsh", "fish", "powershell"}

func main() {
	if err := newGenDocsCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newGenDocsCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:           "sharelink-gendocs",
		Short:         "Generate sharelink documentation and completion scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "Write into this directory instead of stdout")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "man",
			Short: "Generate man pages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				header := &doc.GenManHeader{
					Title:   "SHARELINK",
					Section: "1",
					Source:  "sharelink " + version.Version,
					Manual:  "sharelink manual",
				}
				root := sharelink.NewRootCmd()
				if outDir == "" {
					return doc.GenMan(root, header, cmd.OutOrStdout())
				}
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return err
				}
				return doc.GenManTree(root, header, outDir)
			},
		},
		&cobra.Command{
			Use:   "markdown",
			Short: "Generate a markdown command reference",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				root := sharelink.NewRootCmd()
				if outDir == "" {
					return doc.GenMarkdown(root, cmd.OutOrStdout())
				}
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return err
				}
				return doc.GenMarkdownTree(root, outDir)
			},
		},
		&cobra.Command{
			Use:       "completions [shell]",
			Short:     "Generate shell completion scripts",
			ValidArgs: shells,
			Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 1 {
					return writeCompletion(cmd, args[0], outDir)
				}
				if outDir == "" {
					return fmt.Errorf("--out is required when generating every shell")
				}
				for _, shell := range shells {
					if err := writeCompletion(cmd, shell, outDir); err != nil {
						return err
					}
				}
				return nil
			},
		},
	)
	return cmd
}

func writeCompletion(cmd *cobra.Command, shell, outDir string) error {
	root := sharelink.NewRootCmd()

	out := cmd.OutOrStdout()
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
		f, err := os.Create(filepath.Join(outDir, completionFile(shell)))
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	var err error
	switch shell {
	case "bash":
		err = root.GenBashCompletionV2(out, true)
	case "zsh":
		err = root.GenZshCompletion(out)
	case "fish":
		err = root.GenFishCompletion(out, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(out)
	}
	if err != nil {
		return fmt.Errorf("error generating %s completion: %w", shell, err)
	}
	return nil
}

func completionFile(shell string) string {
	switch shell {
	case "zsh":
		return "_sharelink"
	case "fish":
		return "sharelink.fish"
	case "powershell":
		return "sharelink.ps1"
	default:
		return "sharelink.bash"
	}
}
