package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository with a main branch in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w, output: %s", err, string(output))
	}
	repo := &GitRepo{Dir: dir}
	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// CloneGitRepo clones url into dir, e.g. to act as a second contributor.
func CloneGitRepo(url, dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "clone", url, dir)
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to clone repo: %w, output: %s", err, string(output))
	}
	repo := &GitRepo{Dir: dir}
	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// configureUser sets the identity required for commits
func (r *GitRepo) configureUser() error {
	if err := r.runGitCommand("config", "user.name", "Test User"); err != nil {
		return err
	}
	return r.runGitCommand("config", "user.email", "test@example.com")
}

// gitEnv avoids reading global and system git config so tests are hermetic.
func gitEnv() []string {
	return append(os.Environ(),
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_EDITOR=true",
	)
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed: %w, output: %s", strings.Join(args, " "), err, string(output))
	}
	return nil
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// runGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) runGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RunGitCommandAndGetOutput executes a git command and returns its output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	return r.runGitCommandAndGetOutput(args...)
}

// CreateChange creates a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	filePath := filepath.Join(r.Dir, fileName)

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if !unstaged {
		return r.runGitCommand("add", filePath)
	}

	return nil
}

// CreateChangeAndCommit creates a file change and commits it with textValue as message.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// DeleteBranch deletes a branch.
func (r *GitRepo) DeleteBranch(name string) error {
	return r.runGitCommand("branch", "-D", name)
}

// CreateBranch creates a new branch without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// CheckoutDetached checks out a revision in detached HEAD state.
func (r *GitRepo) CheckoutDetached(rev string) error {
	return r.runGitCommand("checkout", "--detach", rev)
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.runGitCommandAndGetOutput("branch", "--show-current")
}

// GetRevision returns the SHA of a revision (branch, tag, or commit reference).
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", rev)
}

// GetCommitCount returns the number of commits in from..to.
func (r *GitRepo) GetCommitCount(from, to string) (int, error) {
	output, err := r.runGitCommandAndGetOutput("rev-list", "--count", from+".."+to)
	if err != nil {
		return 0, err
	}
	var count int
	if _, err := fmt.Sscanf(output, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// CommitMessage returns the full message of a revision.
func (r *GitRepo) CommitMessage(rev string) (string, error) {
	return r.runGitCommandAndGetOutput("log", "-1", "--format=%B", rev)
}

// ParentCount returns the number of parents of a revision.
func (r *GitRepo) ParentCount(rev string) (int, error) {
	output, err := r.runGitCommandAndGetOutput("rev-list", "--parents", "-n", "1", rev)
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(output)) - 1, nil
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// CreateBareRemote creates a bare git repository next to the repo and adds it as a remote.
// Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "init", "--bare", "-b", "main", bareDir)
	cmd.Env = gitEnv()
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}

	if err := r.runGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}

	return bareDir, nil
}

// PushBranch pushes a branch to a remote and sets it as upstream.
func (r *GitRepo) PushBranch(remote, branch string) error {
	return r.runGitCommand("push", "-u", remote, branch)
}

// RemoteBranchExists checks whether branch exists on the remote itself, not just locally.
func (r *GitRepo) RemoteBranchExists(remote, branch string) (bool, error) {
	output, err := r.runGitCommandAndGetOutput("ls-remote", "--heads", remote, branch)
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// RemoteRevision returns the SHA of branch on the remote.
func (r *GitRepo) RemoteRevision(remote, branch string) (string, error) {
	output, err := r.runGitCommandAndGetOutput("ls-remote", "--heads", remote, branch)
	if err != nil {
		return "", err
	}
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return "", fmt.Errorf("branch %s not found on %s", branch, remote)
	}
	return fields[0], nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files.
func (r *GitRepo) HasUnstagedChanges() (bool, error) {
	output, err := r.runGitCommandAndGetOutput("diff", "--name-only")
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// GetLocalBranches returns a list of all local branches.
func (r *GitRepo) GetLocalBranches() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// GetTags returns all tags.
func (r *GitRepo) GetTags() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("tag", "--list")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// IsAncestor checks if the first ref is an ancestor of the second ref.
func (r *GitRepo) IsAncestor(ancestor, descendant string) (bool, error) {
	err := r.runGitCommand("merge-base", "--is-ancestor", ancestor, descendant)
	return err == nil, nil
}

// GetConfig reads a value from the repository's local git config.
func (r *GitRepo) GetConfig(key string) (string, error) {
	return r.runGitCommandAndGetOutput("config", "--local", "--get", key)
}

// SetConfig writes a value to the repository's local git config.
func (r *GitRepo) SetConfig(key, value string) error {
	return r.runGitCommand("config", "--local", key, value)
}

// AddSubmodule adds the repository at url as a submodule at path and commits it.
func (r *GitRepo) AddSubmodule(url, path string) error {
	if err := r.runGitCommand("-c", "protocol.file.allow=always", "submodule", "add", url, path); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", "add submodule "+path)
}
