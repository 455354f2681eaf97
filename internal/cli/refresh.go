package cli

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// newRefreshCmd creates the refresh command
func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Pull trunk and rebase the current branch on it",
		Long: `Pull trunk from its remote and rebase the current branch on it.

Uncommitted changes are stashed first and restored at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RefreshAction(ctx, actions.RefreshOptions{})
			})
		},
	}
}
