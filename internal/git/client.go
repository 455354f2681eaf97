package git

import (
	"context"
	"strings"
	"time"
)

// Logger receives a line for every git invocation made through a Client
type Logger interface {
	Debug(format string, args ...interface{})
}

// Client runs typed git operations against one working copy.
// Every operation passes through exec, which logs the call and runs it.
type Client struct {
	runner *CommandRunner
	logger Logger
}

// NewClient creates a Client for dir. logger may be nil.
func NewClient(dir string, logger Logger) *Client {
	return &Client{runner: NewCommandRunner(dir), logger: logger}
}

// Dir returns the working directory of the client
func (c *Client) Dir() string {
	return c.runner.WorkingDir()
}

// InDir returns a client sharing the logger but running in dir
func (c *Client) InDir(dir string) *Client {
	return &Client{runner: NewCommandRunner(dir), logger: c.logger}
}

// WithCommandTimeout returns a client whose local commands time out after d
// instead of DefaultCommandTimeout. Zero disables the timeout.
func (c *Client) WithCommandTimeout(d time.Duration) *Client {
	runner := NewCommandRunner(c.runner.WorkingDir())
	runner.timeout = d
	return &Client{runner: runner, logger: c.logger}
}

// execOptions controls how a single invocation is run and logged
type execOptions struct {
	// display replaces args in the log line, e.g. to hide a tag message
	display []string
	// interactive attaches the terminal instead of capturing output
	interactive bool
	// raw keeps surrounding whitespace in the output
	raw bool
	// silent skips logging, used for read-only probes
	silent bool
	// network marks commands talking to a remote, which run without the default timeout
	network bool
}

func (c *Client) exec(ctx context.Context, opts execOptions, args ...string) (string, error) {
	if c.logger != nil && !opts.silent {
		shown := args
		if opts.display != nil {
			shown = opts.display
		}
		c.logger.Debug("git %s", strings.Join(shown, " "))
	}
	switch {
	case opts.interactive:
		return "", c.runner.RunInteractive(ctx, args...)
	case opts.raw:
		return c.runner.RunRaw(ctx, args...)
	case opts.network:
		return c.runner.RunNetwork(ctx, args...)
	default:
		return c.runner.Run(ctx, args...)
	}
}

// Run executes an arbitrary git command and returns its trimmed output
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	return c.exec(ctx, execOptions{}, args...)
}

// Lines executes a git command and splits its output into non-empty lines
func (c *Client) Lines(ctx context.Context, args ...string) ([]string, error) {
	output, err := c.exec(ctx, execOptions{}, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
