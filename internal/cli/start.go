package cli

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// newStartCmd creates the start command
func newStartCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "start [name]",
		Short: "Create a branch from the up to date trunk",
		Long: `Refresh trunk and create a branch from it.

Without a name, remote heads matching the configured fetch pattern are fetched
and the first one (in natural order) that no local branch tracks is used.
The new branch is pushed and tracked when trunk has a remote, unless
--no-set-upstream is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.StartOptions{
				Pattern:     pattern,
				SetUpstream: helpers.SwitchValue(cmd, "set-upstream"),
			}
			if len(args) > 0 {
				opts.Name = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.StartAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Regular expression remote heads must match when no name is given")
	helpers.AddSwitchFlags(cmd, "set-upstream", "u", true, "Push the new branch and track it")

	return cmd
}
