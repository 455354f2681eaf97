package helpers

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/config"
)

// AddEditFlags registers the --edit and --no-edit pair of a command
func AddEditFlags(cmd *cobra.Command, what string) {
	cmd.Flags().Bool("edit", true, "Open the editor on the "+what+".")
	cmd.Flags().BoolP("no-edit", "n", false, "Don't open the editor on the "+what+". Takes precedence over --edit")
}

// EditOverride turns the --edit and --no-edit pair into a configuration override
// of name. Without either flag the configured value is kept.
func EditOverride(cmd *cobra.Command, overrides config.Config, section config.Section, name string) {
	if noEdit, _ := cmd.Flags().GetBool("no-edit"); noEdit {
		overrides.Set(section, name, false)
		return
	}
	if cmd.Flags().Changed("edit") {
		edit, _ := cmd.Flags().GetBool("edit")
		overrides.Set(section, name, edit)
	}
}

// BoolOverride copies a changed bool flag into overrides
func BoolOverride(cmd *cobra.Command, flag string, overrides config.Config, section config.Section, name string) {
	if cmd.Flags().Changed(flag) {
		value, _ := cmd.Flags().GetBool(flag)
		overrides.Set(section, name, value)
	}
}

// AddSwitchFlags registers a --name and --no-name pair. --no-name takes precedence.
func AddSwitchFlags(cmd *cobra.Command, name, shorthand string, value bool, usage string) {
	cmd.Flags().BoolP(name, shorthand, value, usage)
	cmd.Flags().Bool("no-"+name, false, "Opposite of --"+name+". Takes precedence over it")
}

// SwitchValue resolves a pair registered with AddSwitchFlags
func SwitchValue(cmd *cobra.Command, name string) bool {
	if off, _ := cmd.Flags().GetBool("no-" + name); off {
		return false
	}
	on, _ := cmd.Flags().GetBool(name)
	return on
}
