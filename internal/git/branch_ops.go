package git

import (
	"context"
	"fmt"
)

// Checkout checks out an existing branch, tag or commit
func (c *Client) Checkout(ctx context.Context, ref string) error {
	if _, err := c.exec(ctx, execOptions{}, "checkout", ref); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", ref, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch.
// The returned error is the raw git failure so callers can classify collisions.
func (c *Client) CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := c.exec(ctx, execOptions{}, "checkout", "-b", branchName)
	return err
}

// DeleteBranch deletes a local branch. force uses -D, which also drops unmerged history.
func (c *Client) DeleteBranch(ctx context.Context, branchName string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := c.exec(ctx, execOptions{}, "branch", flag, branchName); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// Stash saves uncommitted changes onto the stash
func (c *Client) Stash(ctx context.Context) error {
	if _, err := c.exec(ctx, execOptions{}, "stash"); err != nil {
		return fmt.Errorf("stash failed: %w", err)
	}
	return nil
}

// StashPop restores the most recently stashed changes
func (c *Client) StashPop(ctx context.Context) error {
	if _, err := c.exec(ctx, execOptions{}, "stash", "pop"); err != nil {
		return fmt.Errorf("stash pop failed: %w", err)
	}
	return nil
}
