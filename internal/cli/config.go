package cli

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the workflow configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ConfigAction(ctx, actions.ConfigOptions{Output: output})
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", actions.ConfigOutputText, "Output format: text or yaml")
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{actions.ConfigOutputText, actions.ConfigOutputYAML}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
