package actions

import (
	"strings"

	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/runtime"
)

// SubmoduleUpdateOptions contains options for the submodule-update command
type SubmoduleUpdateOptions struct {
	// Cleanup removes submodule working copies and git directories before
	// updating them
	Cleanup bool
	// Recursive also updates nested submodules
	Recursive bool
	Overrides config.Config
}

// SubmoduleUpdateAction initializes and updates the configured submodules.
//
// These commands are run:
//   - git submodule deinit --force -- PATHS, then removal of their git directories (on cleanup)
//   - git submodule update --init [--depth N] [--single-branch] -- PATHS
func SubmoduleUpdateAction(ctx *runtime.Context, opts SubmoduleUpdateOptions) error {
	wf, err := loadWorkflow(ctx, opts.Overrides, config.SectionSubmoduleUpdate)
	if err != nil {
		return err
	}

	paths := strings.Fields(wf.cfg.String(config.SectionSubmoduleUpdate, config.OptPathSpec))
	if opts.Cleanup {
		if err := ctx.Git.SubmoduleCleanup(ctx.Context, paths); err != nil {
			return err
		}
	}

	err = ctx.Git.SubmoduleUpdate(ctx.Context, git.SubmoduleUpdateOptions{
		Paths:        paths,
		Depth:        wf.cfg.Int(config.SectionSubmoduleUpdate, config.OptDepth),
		SingleBranch: wf.cfg.Bool(config.SectionSubmoduleUpdate, config.OptSingleBranch),
		Recursive:    opts.Recursive,
	})
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		ctx.Splog.Info("Updated all submodules.")
	} else {
		ctx.Splog.Info("Updated submodules %s.", strings.Join(paths, ", "))
	}
	return nil
}
