package actions

import (
	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/invoker"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// FinishOptions contains options for the finish command
type FinishOptions struct {
	Overrides config.Config
}

// FinishAction merges the active branch into trunk, pushes trunk and deletes the
// branch locally and on its remote. Release branches are deleted without merging.
//
// These commands are run:
//   - git fetch REMOTE TRUNK and git fetch REMOTE BRANCH (sync checks)
//   - git checkout TRUNK
//   - git merge --ff-only BRANCH (or --no-ff)
//   - git push REMOTE TRUNK
//   - git push REMOTE --delete BRANCH
//   - git branch -d BRANCH
func FinishAction(ctx *runtime.Context, opts FinishOptions) error {
	wf, err := loadWorkflow(ctx, opts.Overrides, config.SectionFinish, config.SectionRelease)
	if err != nil {
		return err
	}
	active, err := wf.checkFinish()
	if err != nil {
		return err
	}

	trunk := wf.trunk()
	trunkTracking, err := ctx.Engine.TrackingData(trunk)
	if err != nil {
		return err
	}
	activeTracking, err := ctx.Engine.TrackingData(active)
	if err != nil {
		return err
	}

	// Every sync check completes before the repository is touched
	queue := NewQueue(ctx)
	if trunkTracking != nil {
		if err := wf.checkInSync(trunk, trunkTracking); err != nil {
			return err
		}
		queue.Stage(OpPush, trunkTracking.Remote, trunkTracking.Head)
	}
	if activeTracking != nil {
		if err := wf.checkInSync(active, activeTracking); err != nil {
			return err
		}
		queue.Stage(OpPushDelete, activeTracking.Remote, activeTracking.Head)
	}

	if err := ctx.Git.Checkout(ctx.Context, trunk); err != nil {
		return err
	}

	forceDelete := false
	if releaseBranches(wf.cfg).IsReleaseBranch(active) {
		// A release branch is never merged, so it must be deleted forcefully
		forceDelete = true
		ctx.Splog.Notice("%s is a release branch, skipping merge.", style.ColorBranchName(active))
	} else {
		err := ctx.Git.Merge(ctx.Context, git.MergeOptions{
			Branch:          active,
			FastForwardOnly: wf.cfg.Bool(config.SectionFinish, config.OptFF),
		})
		if err != nil {
			return err
		}
	}

	if err := queue.Replay(ctx.Context, invoker.FIFO); err != nil {
		return err
	}
	if err := ctx.Git.DeleteBranch(ctx.Context, active, forceDelete); err != nil {
		return err
	}

	ctx.Splog.Info("Finished %s on %s.", style.ColorBranchName(active), style.ColorBranchName(trunk))
	return nil
}

// checkFinish returns the branch to finish once every precondition holds
func (w *workflow) checkFinish() (string, error) {
	if err := w.checkTrunkExists("finish"); err != nil {
		return "", err
	}
	active, err := w.activeBranch("finish")
	if err != nil {
		return "", err
	}
	trunk := w.trunk()
	if active == trunk {
		return "", trunkerrors.NewPreconditionError("finish",
			"branch to be finished must be different than trunk branch %s", trunk)
	}

	ahead, err := w.commitsAheadOfTrunk(active)
	if err != nil {
		return "", err
	}
	if ahead == 0 {
		return "", trunkerrors.NewPreconditionError("finish", "%s branch has no changes to be finished on %s", active, trunk)
	}
	if w.cfg.Bool(config.SectionFinish, config.OptRequireSquash) && ahead-1 > 0 {
		return "", trunkerrors.NewPreconditionError("finish", "%s branch must be squashed first before finishing", active)
	}
	return active, nil
}

// checkInSync fetches the tracking branch of branch and fails when its content
// differs from the local branch
func (w *workflow) checkInSync(branch string, tracking *git.TrackingBranch) error {
	ctx := w.ctx
	if err := ctx.Git.Fetch(ctx.Context, tracking.Remote, tracking.Head); err != nil {
		return err
	}
	diff, err := ctx.Git.Diff(ctx.Context, branch, tracking.RemoteRef())
	if err != nil {
		return err
	}
	if diff != "" {
		return trunkerrors.NewSyncError(branch, tracking.RemoteRef())
	}
	return nil
}
