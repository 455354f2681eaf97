package git

import "context"

// LogOneline returns `git log --oneline` for a revision or range
func (c *Client) LogOneline(ctx context.Context, revRange string) (string, error) {
	return c.exec(ctx, execOptions{}, "log", "--oneline", revRange)
}

// LogBodies returns the raw message bodies of the commits in a range
func (c *Client) LogBodies(ctx context.Context, revRange string) (string, error) {
	return c.exec(ctx, execOptions{}, "log", "--format=%B", revRange)
}
