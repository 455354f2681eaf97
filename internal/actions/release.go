package actions

import (
	"fmt"

	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/invoker"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui/style"
	"gittrunk.dev/gittrunk/internal/version"
)

// TagMessageFormatter builds the annotation of a release tag. previousTag is
// empty for the first release.
type TagMessageFormatter func(ctx *runtime.Context, tag, ref, previousTag string) (string, error)

// DefaultTagMessage is the tag name followed by the one line log of the commits
// released since previousTag
func DefaultTagMessage(ctx *runtime.Context, tag, ref, previousTag string) (string, error) {
	revRange := ref
	if previousTag != "" {
		revRange = previousTag + ".." + ref
	}
	body, err := ctx.Git.LogOneline(ctx.Context, revRange)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n\n%s", tag, body), nil
}

// ReleaseOptions contains options for the release command
type ReleaseOptions struct {
	// Version to release. When empty it is generated from Part.
	Version string
	// Ref to tag, the active reference by default
	Ref string
	// Force skips the unreleased changes check
	Force bool
	// Part to bump when generating the version, minor by default
	Part version.Part
	// Formatter builds the tag message, DefaultTagMessage when nil
	Formatter TagMessageFormatter
	Overrides config.Config
}

// ReleaseAction creates an annotated release tag and pushes tags.
//
// These commands are run:
//   - git fetch REMOTE refs/tags/*:refs/tags/*
//   - git tag -a TAG REF -m MSG
//   - git push --tags REMOTE
func ReleaseAction(ctx *runtime.Context, opts ReleaseOptions) (string, error) {
	wf, err := loadWorkflow(ctx, opts.Overrides, config.SectionRelease)
	if err != nil {
		return "", err
	}

	ref := opts.Ref
	if ref == "" {
		ref, err = ctx.Engine.ActiveReferenceName(ctx.Context)
		if err != nil {
			return "", err
		}
	}
	if !ctx.Git.VerifyCommit(ctx.Context, ref) {
		return "", trunkerrors.NewResolutionError(ref, "reference was not found, make sure it is a correct commit hash or other reference")
	}
	part := opts.Part
	if part == "" {
		part = version.PartMinor
	}
	if _, err := version.ParsePart(string(part)); err != nil {
		return "", trunkerrors.NewValidationError(err.Error(), nil)
	}

	// Tags are fetched first so the latest version accounts for remote releases
	queue := NewQueue(ctx)
	remote, hasRemote, err := ctx.Engine.RemoteName(wf.trunk())
	if err != nil {
		return "", err
	}
	if hasRemote {
		if err := ctx.Git.Fetch(ctx.Context, remote, "refs/tags/*:refs/tags/*"); err != nil {
			return "", err
		}
		queue.Stage(OpPushTags, remote)
	}

	prefix := wf.cfg.String(config.SectionRelease, config.OptVersionPrefix)
	strategy := version.New(ctx.Engine, prefix, wf.cfg.Bool(config.SectionRelease, config.OptUseSemver))
	previousTag, err := latestTag(strategy)
	if err != nil {
		return "", err
	}

	if !opts.Force && previousTag != "" {
		_, ahead, err := ctx.Engine.CountBehindAhead(ctx.Context, previousTag, ref)
		if err != nil {
			return "", err
		}
		if ahead == 0 {
			return "", trunkerrors.NewPreconditionError("release", "there are no new changes to be released")
		}
	}

	newVersion := opts.Version
	if newVersion == "" {
		newVersion, err = strategy.Generate(part)
		if err != nil {
			return "", err
		}
	}
	if err := strategy.Check(newVersion); err != nil {
		return "", err
	}

	tag := prefix + newVersion
	formatter := opts.Formatter
	if formatter == nil {
		formatter = DefaultTagMessage
	}
	message, err := formatter(ctx, tag, ref, previousTag)
	if err != nil {
		return "", err
	}

	err = ctx.Git.CreateAnnotatedTag(ctx.Context, git.TagOptions{
		Name:    tag,
		Ref:     ref,
		Message: message,
		Edit:    wf.cfg.Bool(config.SectionRelease, config.OptEditTagMessage),
	})
	if err != nil {
		return "", err
	}
	if err := queue.Replay(ctx.Context, invoker.FIFO); err != nil {
		return "", err
	}

	ctx.Splog.Info("Released %s on %s.", style.ColorTag(tag), style.ColorBranchName(ref))
	return tag, nil
}

// latestTag returns the tag of the latest version, or "" before the first release
func latestTag(strategy version.Strategy) (string, error) {
	versions, err := strategy.Versions()
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", nil
	}
	latest, err := strategy.Latest()
	if err != nil {
		return "", err
	}
	return versions[latest], nil
}
