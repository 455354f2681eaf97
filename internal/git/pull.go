package git

import (
	"context"
	"fmt"
)

// PullRebase pulls head from remote into the checked out branch, rebasing local commits
func (c *Client) PullRebase(ctx context.Context, remote, head string) error {
	if _, err := c.exec(ctx, execOptions{network: true}, "pull", "--rebase", remote, head); err != nil {
		return fmt.Errorf("failed to pull %s/%s: %w", remote, head, err)
	}
	return nil
}
