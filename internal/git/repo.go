package git

import (
	"context"
	"fmt"
	"path/filepath"
)

// ShowToplevel returns the absolute top-level directory of the working copy
func (c *Client) ShowToplevel(ctx context.Context) (string, error) {
	dir, err := c.exec(ctx, execOptions{silent: true}, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return filepath.Clean(dir), nil
}

// SuperprojectWorkingTree returns the working tree of the superproject when the
// working copy is a submodule, or "" when it is not nested.
func (c *Client) SuperprojectWorkingTree(ctx context.Context) (string, error) {
	dir, err := c.exec(ctx, execOptions{silent: true}, "rev-parse", "--show-superproject-working-tree")
	if err != nil {
		return "", err
	}
	if dir == "" {
		return "", nil
	}
	return filepath.Clean(dir), nil
}
