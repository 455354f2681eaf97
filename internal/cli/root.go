// Package cli defines the git-trunk command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-trunk",
		Short: "Git trunk based workflow",
		Long: `git-trunk manages a trunk based git workflow: short lived branches start from
an up to date trunk, are squashed and finished back onto it, and releases are
tagged on trunk.

Run 'git trunk init' once per repository to write the workflow configuration.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor, _ := cmd.Flags().GetBool(helpers.FlagNoColor); noColor {
				style.DisableColor()
			}
		},
	}

	rootCmd.PersistentFlags().String(helpers.FlagCwd, "", "Run as if git-trunk was started in this directory")
	rootCmd.PersistentFlags().Bool(helpers.FlagDebug, false, "Log every git command that is run")
	rootCmd.PersistentFlags().Bool(helpers.FlagNoColor, false, "Disable colored output")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newFinishCmd())
	rootCmd.AddCommand(newReleaseCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newSquashCmd())
	rootCmd.AddCommand(newSubmoduleUpdateCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
