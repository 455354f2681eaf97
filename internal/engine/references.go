package engine

import (
	"context"
	"errors"
	"strings"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
)

// ActiveReferenceName returns the current branch name, or the tag pointing at a
// detached HEAD, or the HEAD commit hash.
func (e *Engine) ActiveReferenceName(ctx context.Context) (string, error) {
	branch, err := e.repo.CurrentBranch()
	if err == nil {
		return branch, nil
	}
	if !errors.Is(err, trunkerrors.ErrNotOnBranch) {
		return "", err
	}

	if tag, err := e.git.DescribeExactTag(ctx); err == nil && tag != "" {
		return tag, nil
	}
	return e.repo.HeadHash()
}

// ActiveBranchName returns the current branch, or ErrNotOnBranch on a detached HEAD
func (e *Engine) ActiveBranchName() (string, error) {
	return e.repo.CurrentBranch()
}

// LocalBranches lists local branch names
func (e *Engine) LocalBranches() ([]string, error) {
	return e.repo.LocalBranches()
}

// RemoteBranches lists remote-tracking branches as <remote>/<branch>
func (e *Engine) RemoteBranches() ([]string, error) {
	return e.repo.RemoteBranches()
}

// Tags lists tag names
func (e *Engine) Tags() ([]string, error) {
	return e.repo.Tags()
}

// BranchExists reports whether a local branch exists
func (e *Engine) BranchExists(name string) bool {
	return e.repo.BranchExists(name)
}

// HeadHash returns the commit HEAD points at
func (e *Engine) HeadHash() (string, error) {
	return e.repo.HeadHash()
}

// RemoteHeads lists the branch names on remote as known locally, without the
// remote prefix
func (e *Engine) RemoteHeads(remote string) ([]string, error) {
	branches, err := e.repo.RemoteBranches()
	if err != nil {
		return nil, err
	}
	heads := []string{}
	for _, branch := range branches {
		if head, ok := strings.CutPrefix(branch, remote+"/"); ok {
			heads = append(heads, head)
		}
	}
	return heads, nil
}
