package git

import (
	"context"
	"fmt"
)

// TagOptions contains options for creating an annotated tag
type TagOptions struct {
	Name    string
	Ref     string
	Message string
	// Edit opens the configured editor on Message before the tag is written
	Edit bool
}

// CreateAnnotatedTag creates an annotated tag. The message is left out of the log line.
func (c *Client) CreateAnnotatedTag(ctx context.Context, opts TagOptions) error {
	args := []string{"tag", "-a", opts.Name}
	if opts.Ref != "" {
		args = append(args, opts.Ref)
	}
	display := append([]string{}, args...)
	args = append(args, "-m", opts.Message)
	if opts.Edit {
		args = append(args, "--edit")
		display = append(display, "--edit")
	}

	if _, err := c.exec(ctx, execOptions{display: display, interactive: opts.Edit}, args...); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", opts.Name, err)
	}
	return nil
}

// DescribeExactTag returns the tag pointing exactly at HEAD
func (c *Client) DescribeExactTag(ctx context.Context) (string, error) {
	return c.exec(ctx, execOptions{silent: true}, "describe", "--tags", "--exact-match")
}
