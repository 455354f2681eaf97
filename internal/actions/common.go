package actions

import (
	"errors"
	"strings"

	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// workflow is the configuration and context shared by the steps of one action
type workflow struct {
	ctx *runtime.Context
	cfg config.Config
}

func (w *workflow) trunk() string {
	return w.cfg.TrunkBranch()
}

// loadWorkflow reads the base section plus sections, then applies overrides to
// the cached configuration without persisting them.
func loadWorkflow(ctx *runtime.Context, overrides config.Config, sections ...config.Section) (*workflow, error) {
	var store *config.Store
	// An empty trunk branch is as good as a missing one
	checkTrunk := func(cfg config.Config) error {
		if cfg.TrunkBranch() != "" {
			return nil
		}
		opt, _ := config.LookupOption(config.SectionTrunk, config.OptTrunkBranch)
		return trunkerrors.NewConfigurationError(string(config.SectionTrunk), opt.Name, store.Key(config.SectionTrunk, opt), errors.New("trunk branch is empty"))
	}
	store, err := ctx.ConfigStore(
		config.WithSections(append([]config.Section{config.SectionTrunk}, sections...)...),
		config.WithCheck(checkTrunk),
	)
	if err != nil {
		return nil, err
	}
	cfg, err := store.Read()
	if err != nil {
		return nil, err
	}
	for section, values := range overrides {
		for name, value := range values {
			cfg.Set(section, name, value)
		}
	}
	return &workflow{ctx: ctx, cfg: cfg}, nil
}

// checkTrunkExists is the base check of every branch workflow
func (w *workflow) checkTrunkExists(command string) error {
	if !w.ctx.Engine.BranchExists(w.trunk()) {
		return trunkerrors.NewPreconditionError(command, "trunk branch %s was not found", w.trunk())
	}
	return nil
}

// activeBranch returns the checked out branch, turning a detached HEAD into a
// precondition failure of command
func (w *workflow) activeBranch(command string) (string, error) {
	branch, err := w.ctx.Engine.ActiveBranchName()
	if errors.Is(err, trunkerrors.ErrNotOnBranch) {
		return "", trunkerrors.NewPreconditionError(command, "HEAD is detached, check out a branch first")
	}
	return branch, err
}

// commitsAheadOfTrunk counts the commits branch has that trunk does not
func (w *workflow) commitsAheadOfTrunk(branch string) (int, error) {
	_, ahead, err := w.ctx.Engine.CountBehindAhead(w.ctx.Context, w.trunk(), branch)
	return ahead, err
}

// pullTrunk pulls the checked out trunk from its tracking branch
func (w *workflow) pullTrunk() error {
	tracking, err := w.ctx.Engine.TrackingData(w.trunk())
	if err != nil {
		return err
	}
	if tracking == nil {
		w.ctx.Splog.Notice("No tracking branch for %s branch to pull. Ignoring.", style.ColorBranchName(w.trunk()))
		return nil
	}
	return w.ctx.Git.PullRebase(w.ctx.Context, tracking.Remote, tracking.Head)
}

// ReleaseBranches recognizes branches finished by deletion instead of merge
type ReleaseBranches struct {
	Prefix string
}

// IsReleaseBranch reports whether name carries the release prefix. An empty
// prefix disables release branches.
func (r ReleaseBranches) IsReleaseBranch(name string) bool {
	return r.Prefix != "" && strings.HasPrefix(name, r.Prefix)
}

func releaseBranches(cfg config.Config) ReleaseBranches {
	return ReleaseBranches{Prefix: cfg.String(config.SectionRelease, config.OptReleaseBranchPrefix)}
}
