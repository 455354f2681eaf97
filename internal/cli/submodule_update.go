package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// newSubmoduleUpdateCmd creates the submodule-update command
func newSubmoduleUpdateCmd() *cobra.Command {
	var (
		cleanup   bool
		recursive bool
		depth     int
	)

	cmd := &cobra.Command{
		Use:   "submodule-update [path...]",
		Short: "Initialize and update submodules",
		Long: `Initialize and update the submodules selected by the configured path spec.

Paths given as arguments replace the configured path spec.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := config.Config{}
			if len(args) > 0 {
				overrides.Set(config.SectionSubmoduleUpdate, config.OptPathSpec, strings.Join(args, " "))
			}
			if cmd.Flags().Changed("depth") {
				overrides.Set(config.SectionSubmoduleUpdate, config.OptDepth, depth)
			}
			helpers.BoolOverride(cmd, "single-branch", overrides, config.SectionSubmoduleUpdate, config.OptSingleBranch)
			opts := actions.SubmoduleUpdateOptions{Cleanup: cleanup, Recursive: recursive, Overrides: overrides}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SubmoduleUpdateAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&cleanup, "cleanup", false, "Remove submodule working copies before updating them")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Also update nested submodules")
	cmd.Flags().IntVar(&depth, "depth", 0, "Shallow clone depth")
	cmd.Flags().Bool("single-branch", false, "Clone only the tracked branch")

	return cmd
}
