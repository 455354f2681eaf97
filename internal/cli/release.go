package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/cli/helpers"
	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/version"
)

// partValue is a pflag.Value accepting version part names only
type partValue version.Part

var _ pflag.Value = (*partValue)(nil)

func (p *partValue) String() string { return string(*p) }

func (p *partValue) Set(s string) error {
	part, err := version.ParsePart(s)
	if err != nil {
		return err
	}
	*p = partValue(part)
	return nil
}

func (p *partValue) Type() string { return "part" }

// newReleaseCmd creates the release command
func newReleaseCmd() *cobra.Command {
	var (
		ref         string
		newVersion  string
		force       bool
		prefix      string
		part        = partValue(version.PartMinor)
		partChoices = make([]string, len(version.Parts))
	)
	for i, p := range version.Parts {
		partChoices[i] = string(p)
	}

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Tag a release and push tags",
		Long: `Create an annotated release tag and push tags to the remote.

With semantic versioning the version is generated by bumping the latest released
version. Otherwise it must be given with --version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := config.Config{}
			helpers.EditOverride(cmd, overrides, config.SectionRelease, config.OptEditTagMessage)
			if cmd.Flags().Changed("prefix") {
				overrides.Set(config.SectionRelease, config.OptVersionPrefix, prefix)
			}
			opts := actions.ReleaseOptions{
				Version:   newVersion,
				Ref:       ref,
				Force:     force,
				Part:      version.Part(part),
				Overrides: overrides,
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.ReleaseAction(ctx, opts)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&ref, "ref", "r", "", "Reference to tag, the current branch by default")
	cmd.Flags().StringVar(&newVersion, "version", "", "Version to release instead of a generated one")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Release even without new changes since the latest release")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Version prefix to use instead of the configured one")
	cmd.Flags().VarP(&part, "part", "p", "Version part to bump: "+strings.Join(partChoices, ", "))
	helpers.AddEditFlags(cmd, "tag message")

	_ = cmd.RegisterFlagCompletionFunc("ref", helpers.CompleteRefs)
	_ = cmd.RegisterFlagCompletionFunc("part", cobra.FixedCompletions(partChoices, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}
