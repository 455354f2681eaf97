package engine_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/engine"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/testhelpers"
)

func openEngine(t *testing.T, dir string) *engine.Engine {
	t.Helper()
	eng, err := engine.Open(dir, nil)
	require.NoError(t, err)
	return eng
}

func TestActiveReferenceName(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx := context.Background()

	t.Run("branch", func(t *testing.T) {
		name, err := openEngine(t, scene.Dir).ActiveReferenceName(ctx)
		require.NoError(t, err)
		require.Equal(t, "main", name)
	})

	t.Run("tag on detached head", func(t *testing.T) {
		require.NoError(t, scene.Repo.RunGitCommand("tag", "1.0.0"))
		require.NoError(t, scene.Repo.CheckoutDetached("1.0.0"))

		eng := openEngine(t, scene.Dir)
		name, err := eng.ActiveReferenceName(ctx)
		require.NoError(t, err)
		require.Equal(t, "1.0.0", name)

		_, err = eng.ActiveBranchName()
		require.ErrorIs(t, err, trunkerrors.ErrNotOnBranch)
	})

	t.Run("commit on detached head", func(t *testing.T) {
		require.NoError(t, scene.Repo.CheckoutBranch("main"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
		require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

		name, err := openEngine(t, scene.Dir).ActiveReferenceName(ctx)
		require.NoError(t, err)
		require.Equal(t, testhelpers.Must(scene.Repo.GetRevision("HEAD")), name)
	})
}

func TestRemoteName(t *testing.T) {
	t.Run("no remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		remote, ok, err := openEngine(t, scene.Dir).RemoteName("main")
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, remote)
	})

	t.Run("falls back to trunk tracking", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))

		eng := openEngine(t, scene.Dir)
		remote, ok, err := eng.RemoteName("main")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "origin", remote)

		tracking, err := eng.TrackingData("feature")
		require.NoError(t, err)
		require.Nil(t, tracking)
	})

	t.Run("prefers the active branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		_, err := scene.Repo.CreateBareRemote("upstream")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
		require.NoError(t, scene.Repo.PushBranch("upstream", "feature"))

		eng := openEngine(t, scene.Dir)
		remote, ok, err := eng.RemoteName("main")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "upstream", remote)

		tracking, err := eng.TrackingMap()
		require.NoError(t, err)
		require.Equal(t, map[string]*git.TrackingBranch{
			"main":    {Remote: "origin", Head: "main"},
			"feature": {Remote: "upstream", Head: "feature"},
		}, tracking)
	})
}

func TestCountBehindAhead(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	for _, prefix := range []string{"a", "b", "c"} {
		require.NoError(t, scene.Repo.CreateChangeAndCommit(prefix, prefix))
	}

	eng := openEngine(t, scene.Dir)
	behind, ahead, err := eng.CountBehindAhead(context.Background(), "main", "feature")
	require.NoError(t, err)
	require.Equal(t, 0, behind)
	require.Equal(t, 3, ahead)

	_, _, err = eng.CountBehindAhead(context.Background(), "main", "missing")
	require.ErrorIs(t, err, trunkerrors.ErrGitCommand)
}

func TestRepositoryTopology(t *testing.T) {
	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		if err := testhelpers.BasicSceneSetup(s); err != nil {
			return err
		}
		child, err := s.NewSiblingRepo("child")
		if err != nil {
			return err
		}
		if err := child.CreateChangeAndCommit("child", "child"); err != nil {
			return err
		}
		return s.Repo.AddSubmodule(child.Dir, "libs/child")
	})
	ctx := context.Background()

	t.Run("root repository", func(t *testing.T) {
		eng := openEngine(t, scene.Dir)
		nested, err := eng.IsNested(ctx)
		require.NoError(t, err)
		require.False(t, nested)

		root, err := eng.RootDir(ctx)
		require.NoError(t, err)
		require.Equal(t, scene.Dir, root)

		rel, err := eng.RelativePathFromRoot(ctx)
		require.NoError(t, err)
		require.Empty(t, rel)
	})

	t.Run("submodule", func(t *testing.T) {
		eng := openEngine(t, filepath.Join(scene.Dir, "libs", "child"))
		require.Equal(t, filepath.Join(scene.Dir, "libs", "child"), eng.Dir())

		nested, err := eng.IsNested(ctx)
		require.NoError(t, err)
		require.True(t, nested)

		root, err := eng.RootDir(ctx)
		require.NoError(t, err)
		require.Equal(t, scene.Dir, root)

		rel, err := eng.RelativePathFromRoot(ctx)
		require.NoError(t, err)
		require.Equal(t, "libs/child", rel)
	})
}

func TestRemoteHeads(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	require.NoError(t, scene.Repo.CreateBranch("feature"))
	require.NoError(t, scene.Repo.PushBranch("origin", "feature"))
	require.NoError(t, scene.Repo.RunGitCommand("symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/main"))

	heads, err := openEngine(t, scene.Dir).RemoteHeads("origin")
	require.NoError(t, err)
	require.Equal(t, []string{"feature", "main"}, heads)

	heads, err = openEngine(t, scene.Dir).RemoteHeads("upstream")
	require.NoError(t, err)
	require.Empty(t, heads)
}
