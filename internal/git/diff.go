package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Diff returns the diff between two revisions
func (c *Client) Diff(ctx context.Context, from, to string) (string, error) {
	return c.exec(ctx, execOptions{}, "diff", from, to)
}

// DiffStat returns the stat summary of uncommitted changes to tracked files
func (c *Client) DiffStat(ctx context.Context) (string, error) {
	return c.exec(ctx, execOptions{}, "diff", "--stat")
}

// DiffIgnoringSubmodules returns unstaged changes, leaving out submodule-only changes
func (c *Client) DiffIgnoringSubmodules(ctx context.Context) (string, error) {
	return c.exec(ctx, execOptions{}, "diff", "--ignore-submodules")
}

// CountLeftRight counts commits reachable only from left and only from right
func (c *Client) CountLeftRight(ctx context.Context, left, right string) (int, int, error) {
	output, err := c.exec(ctx, execOptions{silent: true}, "rev-list", "--left-right", "--count", left+"..."+right)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(output)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", output)
	}
	leftCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	rightCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}
	return leftCount, rightCount, nil
}
