package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// optionFlag names the init flag of a schema option, e.g. --finish-require-squash
func optionFlag(section config.Section, opt config.Option) string {
	name := strings.ReplaceAll(opt.Name, "_", "-")
	if section == config.SectionTrunk {
		return name
	}
	return string(section) + "-" + name
}

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the workflow configuration of the repository",
		Long: `Write the workflow configuration of the repository to its git config.

Options given as flags are written as is. Other options keep their current value,
or get their default when they were never set. Inside a submodule the
configuration is written to the root repository, scoped to the submodule path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := initValues(cmd)
			if err != nil {
				return err
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.InitAction(ctx, actions.InitOptions{
					Values:      values,
					Interactive: !noInteractive,
				})
			})
		},
	}

	for _, section := range config.Schema() {
		for _, opt := range section.Options {
			name := optionFlag(section.Section, opt)
			switch opt.Kind {
			case config.KindBool:
				cmd.Flags().Bool(name, opt.Default.(bool), opt.Description)
			case config.KindInt:
				cmd.Flags().Int(name, opt.Default.(int), opt.Description)
			default:
				cmd.Flags().String(name, opt.Default.(string), opt.Description)
			}
		}
	}
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Don't prompt for the trunk branch")
	_ = cmd.RegisterFlagCompletionFunc(optionFlag(config.SectionTrunk, config.Option{Name: config.OptTrunkBranch}), helpers.CompleteBranches)

	return cmd
}

// initValues collects the options explicitly given as flags
func initValues(cmd *cobra.Command) (config.Config, error) {
	values := config.Config{}
	for _, section := range config.Schema() {
		for _, opt := range section.Options {
			name := optionFlag(section.Section, opt)
			if !cmd.Flags().Changed(name) {
				continue
			}
			var (
				value any
				err   error
			)
			switch opt.Kind {
			case config.KindBool:
				value, err = cmd.Flags().GetBool(name)
			case config.KindInt:
				value, err = cmd.Flags().GetInt(name)
			default:
				value, err = cmd.Flags().GetString(name)
			}
			if err != nil {
				return nil, err
			}
			values.Set(section.Section, opt.Name, value)
		}
	}
	return values, nil
}
