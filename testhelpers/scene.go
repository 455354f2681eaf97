package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
// Remotes and clones created through the scene live next to the repository
// inside the same temporary root, so they are removed with it.
type Scene struct {
	Root   string
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It automatically handles cleanup using t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpRoot, err := os.MkdirTemp("", "git-trunk-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	// Resolve symlinks (e.g. /tmp on macOS) so paths compare equal to git output
	if resolved, err := filepath.EvalSymlinks(tmpRoot); err == nil {
		tmpRoot = resolved
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Git invoked by the code under test must not read the developer's config
	// or open an editor.
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_EDITOR", "true")
	t.Setenv("GIT_TRUNK_NO_INTERACTIVE", "1")
	t.Setenv("GIT_CONFIG_COUNT", "1")
	t.Setenv("GIT_CONFIG_KEY_0", "protocol.file.allow")
	t.Setenv("GIT_CONFIG_VALUE_0", "always")

	dir := filepath.Join(tmpRoot, "repo")
	repo, err := NewGitRepo(dir)
	if err != nil {
		os.RemoveAll(tmpRoot)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Root:   tmpRoot,
		Dir:    dir,
		Repo:   repo,
		oldDir: oldDir,
	}

	if err := os.Chdir(dir); err != nil {
		os.RemoveAll(tmpRoot)
		t.Fatalf("Failed to change directory: %v", err)
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.Chdir(oldDir)
			os.RemoveAll(tmpRoot)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpRoot)
		}
	})

	return scene
}

// Clone clones the scene's origin remote into a sibling directory named name.
func (s *Scene) Clone(name string) (*GitRepo, error) {
	return CloneGitRepo(s.Dir+"-origin.git", filepath.Join(s.Root, name))
}

// NewSiblingRepo creates an unrelated repository inside the scene root, e.g. to
// serve as a submodule source.
func (s *Scene) NewSiblingRepo(name string) (*GitRepo, error) {
	return NewGitRepo(filepath.Join(s.Root, name))
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a single commit on main and pushes it to a bare
// origin remote with upstream tracking.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "main")
}
