package engine

import (
	"context"
	"fmt"
	"path/filepath"
)

// IsNested reports whether the working copy is a submodule of another repository
func (e *Engine) IsNested(ctx context.Context) (bool, error) {
	super, err := e.git.SuperprojectWorkingTree(ctx)
	if err != nil {
		return false, err
	}
	return super != "", nil
}

// RootDir returns the working tree of the outermost superproject, or the working
// copy itself when it is not nested. The result is computed once.
func (e *Engine) RootDir(ctx context.Context) (string, error) {
	e.rootOnce.Do(func() {
		e.root, e.rootErr = e.findRoot(ctx)
	})
	return e.root, e.rootErr
}

func (e *Engine) findRoot(ctx context.Context) (string, error) {
	dir, err := e.git.ShowToplevel(ctx)
	if err != nil {
		return "", err
	}
	visited := map[string]bool{dir: true}
	for {
		super, err := e.git.InDir(dir).SuperprojectWorkingTree(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to resolve superproject of %s: %w", dir, err)
		}
		if super == "" || visited[super] {
			return dir, nil
		}
		visited[super] = true
		dir = super
	}
}

// RelativePathFromRoot returns the slash separated path of the working copy
// below the root repository, or "" for the root itself.
func (e *Engine) RelativePathFromRoot(ctx context.Context) (string, error) {
	root, err := e.RootDir(ctx)
	if err != nil {
		return "", err
	}
	top, err := e.git.ShowToplevel(ctx)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, top)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}
