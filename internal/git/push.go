package git

import (
	"context"
	"fmt"
)

// PushOptions contains options for pushing to a remote
type PushOptions struct {
	Remote string
	Refs   []string
	// SetUpstream records the pushed branch as the upstream (-u)
	SetUpstream bool
	Force       bool
	// Delete removes Refs from the remote
	Delete bool
	// Tags pushes all local tags
	Tags bool
}

// Push pushes to a remote
func (c *Client) Push(ctx context.Context, opts PushOptions) error {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.Delete {
		args = append(args, "--delete")
	}
	if opts.Tags {
		args = append(args, "--tags")
	}
	args = append(args, opts.Remote)
	args = append(args, opts.Refs...)

	if _, err := c.exec(ctx, execOptions{network: true}, args...); err != nil {
		return fmt.Errorf("failed to push to %s: %w", opts.Remote, err)
	}
	return nil
}
