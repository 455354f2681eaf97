package actions

import (
	"fmt"

	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// SquashOptions contains options for the squash command
type SquashOptions struct {
	// Count of commits to squash; 0 squashes every commit but the first one
	Count int
	// Message replaces the squashed commit message
	Message string
	// ExcludeMessages drops the messages of the squashed commits. The kept
	// commit message is left as is.
	ExcludeMessages bool
	Overrides       config.Config
}

// SquashAction squashes the last commits of the active branch into the commit
// below them.
//
// These commands are run:
//   - git checkout TRUNK, git pull --rebase REMOTE TRUNK, git checkout ACTIVE, git rebase TRUNK
//   - git reset --soft HEAD~COUNT
//   - git commit --amend -m MSG (or --no-edit)
//   - git commit --amend (when editing the message)
//   - git push --force REMOTE BRANCH (when enabled and tracked)
func SquashAction(ctx *runtime.Context, opts SquashOptions) error {
	wf, err := loadWorkflow(ctx, opts.Overrides, config.SectionSquash)
	if err != nil {
		return err
	}
	active, count, err := wf.checkSquash(opts.Count)
	if err != nil {
		return err
	}

	if err := wf.refresh(); err != nil {
		return err
	}

	message := opts.Message
	if message == "" && !opts.ExcludeMessages {
		// One extra commit to keep the message of the commit squashed into
		message, err = ctx.Git.LogBodies(ctx.Context, fmt.Sprintf("HEAD~%d..HEAD", count+1))
		if err != nil {
			return err
		}
	}

	if err := ctx.Git.SoftReset(ctx.Context, count); err != nil {
		return err
	}
	if err := ctx.Git.Amend(ctx.Context, git.AmendOptions{Message: message}); err != nil {
		return err
	}
	if wf.cfg.Bool(config.SectionSquash, config.OptEditSquashMessage) {
		if err := ctx.Git.Amend(ctx.Context, git.AmendOptions{Interactive: true}); err != nil {
			return err
		}
	}
	ctx.Splog.Info("Squashed %d commits on %s.", count, style.ColorBranchName(active))

	if !wf.cfg.Bool(config.SectionSquash, config.OptForcePushSquash) {
		return nil
	}
	tracking, err := ctx.Engine.TrackingData(active)
	if err != nil {
		return err
	}
	if tracking == nil {
		return nil
	}
	return ctx.Git.Push(ctx.Context, git.PushOptions{Remote: tracking.Remote, Refs: []string{tracking.Head}, Force: true})
}

// checkSquash returns the active branch and the count of commits to squash
func (w *workflow) checkSquash(requested int) (string, int, error) {
	if err := w.checkTrunkExists("squash"); err != nil {
		return "", 0, err
	}
	active, err := w.activeBranch("squash")
	if err != nil {
		return "", 0, err
	}
	if active == w.trunk() {
		return "", 0, trunkerrors.NewPreconditionError("squash",
			"branch to be squashed must be different than trunk branch %s", w.trunk())
	}

	stat, err := w.ctx.Git.DiffStat(w.ctx.Context)
	if err != nil {
		return "", 0, err
	}
	if stat != "" {
		return "", 0, trunkerrors.NewPreconditionError("squash",
			"there are uncommitted changes, stash or commit them first")
	}

	ahead, err := w.commitsAheadOfTrunk(active)
	if err != nil {
		return "", 0, err
	}
	// The first commit of the branch is the one everything is squashed into
	maxCount := ahead - 1
	if maxCount <= 0 {
		return "", 0, trunkerrors.NewPreconditionError("squash", "no commits to squash")
	}
	if requested < 0 {
		return "", 0, trunkerrors.NewValidationError(fmt.Sprintf("invalid squash count %d", requested), nil)
	}
	if requested > maxCount {
		return "", 0, trunkerrors.NewPreconditionError("squash",
			"you can squash maximum %d commits, you are trying to squash %d commits", maxCount, requested)
	}
	if requested == 0 {
		return active, maxCount, nil
	}
	return active, requested, nil
}
