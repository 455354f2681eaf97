package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
)

// DefaultCommandTimeout is the default timeout for local non-interactive git commands.
// Commands talking to a remote run without one.
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	timeout    time.Duration
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, timeout: DefaultCommandTimeout}
}

// WorkingDir returns the directory git commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, true, args...)
}

// RunNetwork executes a git command talking to a remote. Only the context bounds it.
func (r *CommandRunner) RunNetwork(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, false, args...)
}

// RunRaw executes a git command and returns its output untouched
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, true, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, trim, bounded bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok && bounded && r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", trunkerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", trunkerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected to the
// terminal. No default timeout is applied: an editor session blocks until the user exits.
func (r *CommandRunner) RunInteractive(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return trunkerrors.NewGitCommandError("git", args, "", "", err)
	}
	return nil
}
