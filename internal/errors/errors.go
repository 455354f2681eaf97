// Package errors provides sentinel errors and custom error types for git-trunk.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrConfiguration indicates that required configuration is missing or malformed
	ErrConfiguration = errors.New("configuration error")

	// ErrPrecondition indicates that a workflow precondition failed
	ErrPrecondition = errors.New("precondition failed")

	// ErrResolution indicates that a required value could not be determined
	ErrResolution = errors.New("could not resolve")

	// ErrValidation indicates that git rejected the requested operation
	ErrValidation = errors.New("validation failed")

	// ErrGitCommand indicates a generic git command failure
	ErrGitCommand = errors.New("git command failed")

	// ErrSync indicates that a local branch and its remote have diverged
	ErrSync = errors.New("branch not in sync")

	// ErrInvalidVersion indicates that a version cannot be released
	ErrInvalidVersion = errors.New("invalid version")
)

// ConfigurationError represents a missing or malformed config option
type ConfigurationError struct {
	Section string
	Option  string
	Key     string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("missing configuration %s.%s", e.Section, e.Option)
	if e.Key != "" {
		msg += fmt.Sprintf(" (git config %s)", e.Key)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg + ". Run 'git trunk init' to initialize configuration"
}

// Is returns true if the target error is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(section, option, key string, err error) *ConfigurationError {
	return &ConfigurationError{Section: section, Option: option, Key: key, Err: err}
}

// PreconditionError represents a failed workflow precondition.
// It is always raised before any repository state is mutated.
type PreconditionError struct {
	Command string
	Reason  string
}

func (e *PreconditionError) Error() string {
	if e.Command == "" {
		return e.Reason
	}
	return fmt.Sprintf("cannot %s: %s", e.Command, e.Reason)
}

// Is returns true if the target error is ErrPrecondition
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(command string, format string, args ...any) *PreconditionError {
	return &PreconditionError{Command: command, Reason: fmt.Sprintf(format, args...)}
}

// ResolutionError represents a value that could not be determined from repository state
type ResolutionError struct {
	Subject string
	Reason  string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %s: %s", e.Subject, e.Reason)
}

// Is returns true if the target error is ErrResolution
func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}

// NewResolutionError creates a new ResolutionError
func NewResolutionError(subject string, format string, args ...any) *ResolutionError {
	return &ResolutionError{Subject: subject, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError represents a request git refused, such as a branch name collision
type ValidationError struct {
	Message string
	Stderr  string
	Err     error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Stderr != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Stderr)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is returns true if the target error is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps err, carrying its sanitized stderr when it is a git failure
func NewValidationError(message string, err error) *ValidationError {
	verr := &ValidationError{Message: message, Err: err}
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) {
		verr.Stderr = gitErr.Stderr
	}
	return verr
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Command)
	if len(e.Args) > 0 {
		msg = fmt.Sprintf("%s %s failed", e.Command, strings.Join(e.Args, " "))
	}
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit status %d)", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrGitCommand
func (e *GitCommandError) Is(target error) bool {
	return target == ErrGitCommand
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError.
// Stderr is sanitized and the exit status is taken from err when available.
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   SanitizeStderr(stderr),
		ExitCode: exitCode(err),
		Err:      err,
	}
}

// SyncError represents a local branch that differs from its remote counterpart
type SyncError struct {
	Branch string
	Remote string
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("branch %s is not in sync with %s. Sync it before finishing", e.Branch, e.Remote)
}

// Is returns true if the target error is ErrSync
func (e *SyncError) Is(target error) bool {
	return target == ErrSync
}

// NewSyncError creates a new SyncError
func NewSyncError(branch, remote string) *SyncError {
	return &SyncError{Branch: branch, Remote: remote}
}

// InvalidVersionError represents a version that cannot be used for a release
type InvalidVersionError struct {
	Version string
	Reason  string
}

func (e *InvalidVersionError) Error() string {
	if e.Version == "" {
		return fmt.Sprintf("invalid version: %s", e.Reason)
	}
	return fmt.Sprintf("invalid version %q: %s", e.Version, e.Reason)
}

// Is returns true if the target error is ErrInvalidVersion
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

// NewInvalidVersionError creates a new InvalidVersionError
func NewInvalidVersionError(version, reason string) *InvalidVersionError {
	return &InvalidVersionError{Version: version, Reason: reason}
}

// ExitCode returns the process exit status carried by err, or 0 if there is none
func ExitCode(err error) int {
	var gitErr *GitCommandError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}
	return exitCode(err)
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}

// SanitizeStderr strips diagnostic prefix tokens and surrounding quotes from git stderr
func SanitizeStderr(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "stderr: "); ok {
			line = strings.TrimSuffix(strings.TrimPrefix(rest, "'"), "'")
		}
		if line == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}
