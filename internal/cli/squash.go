package cli

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// newSquashCmd creates the squash command
func newSquashCmd() *cobra.Command {
	var (
		count           int
		message         string
		excludeMessages bool
	)

	cmd := &cobra.Command{
		Use:   "squash",
		Short: "Squash the commits of the current branch",
		Long: `Refresh the current branch, then squash its commits into the first commit of the branch.

By default every commit but the first one is squashed and their messages are
kept. A squashed branch that tracks a remote branch is force pushed unless
disabled in the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := config.Config{}
			helpers.EditOverride(cmd, overrides, config.SectionSquash, config.OptEditSquashMessage)
			helpers.BoolOverride(cmd, "force-push", overrides, config.SectionSquash, config.OptForcePushSquash)
			opts := actions.SquashOptions{
				Count:           count,
				Message:         message,
				ExcludeMessages: excludeMessages,
				Overrides:       overrides,
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SquashAction(ctx, opts)
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 0, "Number of commits to squash, every commit but the first one by default")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message of the squashed commit")
	cmd.Flags().BoolVar(&excludeMessages, "exclude-messages", false, "Keep only the message of the first commit")
	cmd.Flags().Bool("force-push", true, "Force push the squashed branch when it tracks a remote branch")
	helpers.AddEditFlags(cmd, "squashed commit message")

	return cmd
}
