package git

import (
	"context"
	"fmt"
)

// Rebase rebases the checked out branch onto upstream.
// A conflicting rebase is left in progress for the user to resolve.
func (c *Client) Rebase(ctx context.Context, upstream string) error {
	if _, err := c.exec(ctx, execOptions{}, "rebase", upstream); err != nil {
		return fmt.Errorf("failed to rebase onto %s: %w", upstream, err)
	}
	return nil
}

// MergeOptions contains options for merging a branch into the checked out one
type MergeOptions struct {
	Branch string
	// FastForwardOnly uses --ff-only; otherwise a merge commit is always created
	FastForwardOnly bool
}

// Merge merges opts.Branch into the checked out branch
func (c *Client) Merge(ctx context.Context, opts MergeOptions) error {
	args := []string{"merge"}
	if opts.FastForwardOnly {
		args = append(args, "--ff-only")
	} else {
		args = append(args, "--no-ff", "--no-edit")
	}
	args = append(args, opts.Branch)

	if _, err := c.exec(ctx, execOptions{}, args...); err != nil {
		return fmt.Errorf("failed to merge %s: %w", opts.Branch, err)
	}
	return nil
}
