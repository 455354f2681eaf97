package cli

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// newFinishCmd creates the finish command
func newFinishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Merge the current branch into trunk and delete it",
		Long: `Merge the current branch into trunk, push trunk and delete the branch locally
and on its remote.

Both branches must be in sync with their remotes. Release branches are deleted
without being merged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := config.Config{}
			helpers.BoolOverride(cmd, "ff", overrides, config.SectionFinish, config.OptFF)
			helpers.BoolOverride(cmd, "require-squash", overrides, config.SectionFinish, config.OptRequireSquash)
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.FinishAction(ctx, actions.FinishOptions{Overrides: overrides})
			})
		},
	}

	cmd.Flags().Bool("ff", true, "Merge with --ff-only instead of creating a merge commit")
	cmd.Flags().Bool("require-squash", false, "Refuse to finish a branch with more than one commit")

	return cmd
}
