package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
)

// Repository wraps a go-git repository for read-side introspection and the
// transactional config session. Mutations go through Client.
type Repository struct {
	*git.Repository
	path string
}

// TrackingBranch is the upstream of a local branch
type TrackingBranch struct {
	Remote string
	Head   string
}

// RemoteRef returns the remote-tracking name, e.g. origin/main
func (t TrackingBranch) RemoteRef() string {
	return t.Remote + "/" + t.Head
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	root := absPath
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
	}, nil
}

// Root returns the working tree root of the repository
func (r *Repository) Root() string {
	return r.path
}

// CurrentBranch returns the checked out branch name
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", trunkerrors.ErrNotOnBranch
	}
	return head.Target().Short(), nil
}

// HeadHash returns the commit hash HEAD points at
func (r *Repository) HeadHash() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// LocalBranches returns local branch names, skipping symbolic references
func (r *Repository) LocalBranches() ([]string, error) {
	return r.collectRefs(func(name plumbing.ReferenceName) bool { return name.IsBranch() })
}

// RemoteBranches returns remote-tracking branch names such as origin/main,
// skipping symbolic references such as origin/HEAD
func (r *Repository) RemoteBranches() ([]string, error) {
	return r.collectRefs(func(name plumbing.ReferenceName) bool { return name.IsRemote() })
}

// Tags returns all tag names
func (r *Repository) Tags() ([]string, error) {
	return r.collectRefs(func(name plumbing.ReferenceName) bool { return name.IsTag() })
}

func (r *Repository) collectRefs(match func(plumbing.ReferenceName) bool) ([]string, error) {
	refs, err := r.References()
	if err != nil {
		return nil, fmt.Errorf("failed to list references: %w", err)
	}
	defer refs.Close()

	names := []string{}
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() == plumbing.SymbolicReference || !match(ref.Name()) {
			return nil
		}
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to iterate references: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// BranchExists reports whether a local branch exists
func (r *Repository) BranchExists(name string) bool {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), false)
	return err == nil
}

// Tracking returns the upstream of a local branch, or nil when it has none
func (r *Repository) Tracking(branch string) (*TrackingBranch, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read git config: %w", err)
	}
	b, ok := cfg.Branches[branch]
	// "." marks a branch tracking another local branch
	if !ok || b.Remote == "" || b.Remote == "." || b.Merge == "" {
		return nil, nil
	}
	return &TrackingBranch{Remote: b.Remote, Head: b.Merge.Short()}, nil
}
