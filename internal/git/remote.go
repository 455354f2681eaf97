package git

import (
	"context"
	"fmt"
)

// Fetch fetches the given refspecs from remote. Without refspecs the remote's
// configured ones are used.
func (c *Client) Fetch(ctx context.Context, remote string, refspecs ...string) error {
	args := append([]string{"fetch", remote}, refspecs...)
	if _, err := c.exec(ctx, execOptions{network: true}, args...); err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}
