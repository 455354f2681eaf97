package git_test

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/stretchr/testify/require"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/testhelpers"
)

func TestRepositoryReferences(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.RemoteSceneSetup(s); err != nil {
			return err
		}
		if err := s.Repo.CreateBranch("feature"); err != nil {
			return err
		}
		if err := s.Repo.RunGitCommand("symbolic-ref", "refs/heads/ALIAS", "refs/heads/main"); err != nil {
			return err
		}
		if err := s.Repo.RunGitCommand("symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/main"); err != nil {
			return err
		}
		return s.Repo.RunGitCommand("tag", "v1.0.0")
	})

	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)
	require.Equal(t, scene.Dir, repo.Root())

	branches, err := repo.LocalBranches()
	require.NoError(t, err)
	require.Equal(t, []string{"feature", "main"}, branches)

	remotes, err := repo.RemoteBranches()
	require.NoError(t, err)
	require.Equal(t, []string{"origin/main"}, remotes)

	tags, err := repo.Tags()
	require.NoError(t, err)
	require.Equal(t, []string{"v1.0.0"}, tags)

	require.True(t, repo.BranchExists("feature"))
	require.False(t, repo.BranchExists("missing"))

	current, err := repo.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "main", current)

	tracking, err := repo.Tracking("feature")
	require.NoError(t, err)
	require.Nil(t, tracking)
}

func TestRepositoryDetachedHead(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	_, err = repo.CurrentBranch()
	require.ErrorIs(t, err, trunkerrors.ErrNotOnBranch)

	hash, err := repo.HeadHash()
	require.NoError(t, err)
	require.Equal(t, testhelpers.Must(scene.Repo.GetRevision("HEAD")), hash)
}

func TestRepositoryUpdateConfig(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)

	repo, err := git.OpenRepository(scene.Dir)
	require.NoError(t, err)

	err = repo.UpdateConfig(func(raw *config.Config) error {
		raw.Section("trunk").SetOption("trunkbranch", "main")
		raw.Section("trunk").Subsection("finish").SetOption("ff", "false")
		return nil
	})
	require.NoError(t, err)

	require.Equal(t, "main", testhelpers.Must(scene.Repo.GetConfig("trunk.trunkbranch")))
	require.Equal(t, "false", testhelpers.Must(scene.Repo.GetConfig("trunk.finish.ff")))
	// Existing configuration survives the rewrite
	require.Equal(t, "origin", testhelpers.Must(scene.Repo.GetConfig("branch.main.remote")))
	require.Equal(t, "Test User", testhelpers.Must(scene.Repo.GetConfig("user.name")))

	raw, err := repo.ReadConfig()
	require.NoError(t, err)
	require.Equal(t, "main", raw.Section("trunk").Option("trunkbranch"))
}
