package actions

import (
	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/invoker"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// RefreshOptions contains options for the refresh command
type RefreshOptions struct {
	Overrides config.Config
}

// RefreshAction updates trunk from its remote and rebases the active branch on it.
//
// These commands are run:
//   - git stash (when there are uncommitted changes)
//   - git checkout TRUNK
//   - git pull --rebase REMOTE TRUNK
//   - git checkout ACTIVE
//   - git rebase TRUNK
//   - git stash pop (when changes were stashed)
func RefreshAction(ctx *runtime.Context, opts RefreshOptions) error {
	wf, err := loadWorkflow(ctx, opts.Overrides)
	if err != nil {
		return err
	}
	if err := wf.checkTrunkExists("refresh"); err != nil {
		return err
	}
	if _, err := wf.activeBranch("refresh"); err != nil {
		return err
	}
	return wf.refresh()
}

func (w *workflow) refresh() error {
	ctx := w.ctx
	trunk := w.trunk()
	active, err := w.activeBranch("refresh")
	if err != nil {
		return err
	}

	queue := NewQueue(ctx)
	// Submodule only changes cannot be stashed
	diff, err := ctx.Git.DiffIgnoringSubmodules(ctx.Context)
	if err != nil {
		return err
	}
	if diff != "" {
		if err := ctx.Git.Stash(ctx.Context); err != nil {
			return err
		}
		queue.Stage(OpStashPop)
	}

	if active != trunk {
		if err := ctx.Git.Checkout(ctx.Context, trunk); err != nil {
			return err
		}
		// Replayed LIFO: checkout ACTIVE runs before the rebase
		queue.Stage(OpRebase, trunk)
		queue.Stage(OpCheckout, active)
	}

	if err := w.pullTrunk(); err != nil {
		return err
	}
	if err := queue.Replay(ctx.Context, invoker.LIFO); err != nil {
		return err
	}

	if active != trunk {
		ctx.Splog.Info("Refreshed %s and rebased %s on it.", style.ColorBranchName(trunk), style.ColorBranchName(active))
	} else {
		ctx.Splog.Info("Refreshed %s.", style.ColorBranchName(trunk))
	}
	return nil
}
