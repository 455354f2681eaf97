package actions

import (
	"errors"

	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// InitOptions contains options for the init command
type InitOptions struct {
	// Values holds explicitly given option values; nil or absent entries fall
	// back to the persisted value, then to the schema default
	Values config.Config
	// Interactive allows prompting for the trunk branch
	Interactive bool
}

// InitAction writes the workflow configuration, merging explicit values,
// persisted values and schema defaults in that order of priority.
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	store, err := ctx.ConfigStore(config.WithMissingHandler(config.UnsetOnMissing))
	if err != nil {
		return err
	}
	persisted, err := store.Read()
	if err != nil {
		return err
	}

	merged := config.Config{}
	for _, section := range config.Schema() {
		for _, opt := range section.Options {
			value := opt.Default
			if v, ok := persisted.Get(section.Section, opt.Name); ok && v != nil {
				value = v
			}
			if v, ok := opts.Values.Get(section.Section, opt.Name); ok && v != nil {
				value = v
			}
			merged.Set(section.Section, opt.Name, value)
		}
	}

	if opts.Interactive && !isSet(opts.Values, config.SectionTrunk, config.OptTrunkBranch) &&
		!isSet(persisted, config.SectionTrunk, config.OptTrunkBranch) && tui.InteractiveAllowed() {
		trunk, err := promptTrunkBranch(ctx, merged.TrunkBranch())
		if err != nil {
			return err
		}
		merged.Set(config.SectionTrunk, config.OptTrunkBranch, trunk)
	}

	if err := store.Write(merged); err != nil {
		return err
	}

	where := "repository"
	if store.Path() != "" {
		where = "submodule " + store.Path()
	}
	ctx.Splog.Info("Initialized git-trunk configuration for %s with trunk branch %s.",
		where, style.ColorBranchName(merged.TrunkBranch()))
	return nil
}

func isSet(cfg config.Config, section config.Section, name string) bool {
	v, ok := cfg.Get(section, name)
	return ok && v != nil
}

// promptTrunkBranch lets the user pick the trunk branch among local branches
func promptTrunkBranch(ctx *runtime.Context, fallback string) (string, error) {
	branches, err := ctx.Engine.LocalBranches()
	if err != nil {
		return "", err
	}
	if len(branches) == 0 {
		return fallback, nil
	}
	current, err := ctx.Engine.ActiveBranchName()
	if err != nil {
		current = fallback
	}
	trunk, err := tui.PromptSelect("Select the trunk branch", branches, current)
	if errors.Is(err, tui.ErrInteractiveDisabled) {
		return fallback, nil
	}
	return trunk, err
}
