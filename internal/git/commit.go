package git

import (
	"context"
	"fmt"
)

// AmendOptions contains options for amending the HEAD commit
type AmendOptions struct {
	// Message replaces the commit message when set
	Message string
	// Interactive opens the configured editor on the commit message
	Interactive bool
}

// Amend amends the HEAD commit. Without a message and outside interactive mode the
// existing message is kept.
func (c *Client) Amend(ctx context.Context, opts AmendOptions) error {
	args := []string{"commit", "--amend"}
	display := []string{"commit", "--amend"}
	switch {
	case opts.Interactive:
		if opts.Message != "" {
			args = append(args, "-e", "-m", opts.Message)
			display = append(display, "-e", "-m", "<message>")
		}
	case opts.Message != "":
		args = append(args, "-m", opts.Message)
		display = append(display, "-m", "<message>")
	default:
		args = append(args, "--no-edit")
		display = append(display, "--no-edit")
	}

	if _, err := c.exec(ctx, execOptions{display: display, interactive: opts.Interactive}, args...); err != nil {
		return fmt.Errorf("failed to amend commit: %w", err)
	}
	return nil
}

// SoftReset moves the current branch back count commits, keeping the index and working tree
func (c *Client) SoftReset(ctx context.Context, count int) error {
	rev := fmt.Sprintf("HEAD~%d", count)
	if _, err := c.exec(ctx, execOptions{}, "reset", "-q", "--soft", rev); err != nil {
		return fmt.Errorf("failed to soft reset to %s: %w", rev, err)
	}
	return nil
}

// RevParse resolves a revision to a commit hash
func (c *Client) RevParse(ctx context.Context, rev string) (string, error) {
	return c.exec(ctx, execOptions{silent: true}, "rev-parse", rev)
}

// VerifyCommit reports whether rev resolves to a commit
func (c *Client) VerifyCommit(ctx context.Context, rev string) bool {
	_, err := c.exec(ctx, execOptions{silent: true}, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	return err == nil
}
