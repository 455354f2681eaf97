package actions

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/maruel/natural"

	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

const defaultFetchPattern = "*"

// StartOptions contains options for the start command
type StartOptions struct {
	// Name of the branch to create. When empty, the first remote head not yet
	// tracked locally is used.
	Name string
	// Pattern is a regular expression remote heads must match when Name is empty
	Pattern string
	// SetUpstream pushes the new branch and tracks it
	SetUpstream bool
	Overrides   config.Config
}

// StartAction creates a branch from an up to date trunk.
//
// These commands are run:
//   - git pull --rebase REMOTE TRUNK
//   - git fetch REMOTE refs/heads/PATTERN:refs/remotes/REMOTE/PATTERN (without a name)
//   - git checkout -b BRANCH
//   - git push -u REMOTE BRANCH (when setting upstream)
func StartAction(ctx *runtime.Context, opts StartOptions) error {
	wf, err := loadWorkflow(ctx, opts.Overrides, config.SectionStart)
	if err != nil {
		return err
	}
	if err := wf.checkTrunkExists("start"); err != nil {
		return err
	}

	active, err := ctx.Engine.ActiveReferenceName(ctx.Context)
	if err != nil {
		return err
	}
	if active != wf.trunk() {
		return trunkerrors.NewPreconditionError("start",
			"to create a new branch you must be on trunk branch %s, currently on %s", wf.trunk(), active)
	}

	var pattern *regexp.Regexp
	if opts.Name == "" && opts.Pattern != "" {
		pattern, err = regexp.Compile(opts.Pattern)
		if err != nil {
			return trunkerrors.NewValidationError(fmt.Sprintf("invalid branch pattern %q", opts.Pattern), err)
		}
	}

	if err := wf.refresh(); err != nil {
		return err
	}

	name := opts.Name
	if name == "" {
		name, err = wf.findBranchName(pattern)
		if err != nil {
			return err
		}
	}
	return wf.createBranch(name, opts.SetUpstream)
}

// findBranchName picks the naturally smallest remote head no local branch tracks
func (w *workflow) findBranchName(pattern *regexp.Regexp) (string, error) {
	ctx := w.ctx
	remote, ok, err := ctx.Engine.RemoteName(w.trunk())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", trunkerrors.NewResolutionError("branch name", "no remote to look for branches on, give the branch name explicitly")
	}

	glob := w.cfg.String(config.SectionStart, config.OptFetchBranchPattern)
	if glob == "" {
		glob = defaultFetchPattern
	}
	refspec := fmt.Sprintf("refs/heads/%s:refs/remotes/%s/%s", glob, remote, glob)
	if err := ctx.Git.Fetch(ctx.Context, remote, refspec); err != nil {
		return "", err
	}

	heads, err := ctx.Engine.RemoteHeads(remote)
	if err != nil {
		return "", err
	}
	tracking, err := ctx.Engine.TrackingMap()
	if err != nil {
		return "", err
	}
	tracked := make(map[string]bool, len(tracking))
	for _, t := range tracking {
		tracked[t.Head] = true
	}

	candidates := []string{}
	for _, head := range heads {
		if tracked[head] {
			continue
		}
		if pattern != nil && !pattern.MatchString(head) {
			continue
		}
		candidates = append(candidates, head)
	}
	if len(candidates) == 0 {
		return "", trunkerrors.NewResolutionError("branch name", "can't find a branch name to create locally")
	}
	sort.Sort(natural.StringSlice(candidates))
	return candidates[0], nil
}

func (w *workflow) createBranch(name string, setUpstream bool) error {
	ctx := w.ctx
	if err := ctx.Git.CreateAndCheckoutBranch(ctx.Context, name); err != nil {
		return trunkerrors.NewValidationError(fmt.Sprintf("failed to create branch %s", name), err)
	}
	ctx.Splog.Info("Created branch %s from %s.", style.ColorBranchName(name), style.ColorBranchName(w.trunk()))

	if !setUpstream {
		return nil
	}
	remote, ok, err := ctx.Engine.RemoteName(w.trunk())
	if err != nil {
		return err
	}
	if !ok {
		ctx.Splog.Warn("Missing remote to set upstream for %s branch. Ignoring.", style.ColorBranchName(name))
		return nil
	}
	return ctx.Git.Push(ctx.Context, git.PushOptions{Remote: remote, Refs: []string{name}, SetUpstream: true})
}
