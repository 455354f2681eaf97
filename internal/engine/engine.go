package engine

import (
	"context"
	"sync"

	"gittrunk.dev/gittrunk/internal/git"
)

// Engine derives repository facts for workflow commands
type Engine struct {
	git  *git.Client
	repo *git.Repository

	rootOnce sync.Once
	root     string
	rootErr  error
}

// New creates an Engine over client and repo, both opened on the same working copy
func New(client *git.Client, repo *git.Repository) *Engine {
	return &Engine{git: client, repo: repo}
}

// Open opens the repository containing dir and creates an Engine for it
func Open(dir string, logger git.Logger) (*Engine, error) {
	repo, err := git.OpenRepository(dir)
	if err != nil {
		return nil, err
	}
	return New(git.NewClient(repo.Root(), logger), repo), nil
}

// Git returns the git client of the working copy
func (e *Engine) Git() *git.Client {
	return e.git
}

// Repository returns the go-git repository of the working copy
func (e *Engine) Repository() *git.Repository {
	return e.repo
}

// Dir returns the top-level directory of the working copy
func (e *Engine) Dir() string {
	return e.repo.Root()
}

// CountBehindAhead counts the commits only ref1 has (behind) and only ref2 has (ahead)
func (e *Engine) CountBehindAhead(ctx context.Context, ref1, ref2 string) (int, int, error) {
	return e.git.CountLeftRight(ctx, ref1, ref2)
}
