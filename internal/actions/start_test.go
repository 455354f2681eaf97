package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gittrunk.dev/gittrunk/internal/actions"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/testhelpers"
)

func TestStartNamedBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, out := initScene(t, scene)

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{Name: "feature", SetUpstream: true}))
	require.Equal(t, "feature", testhelpers.Must(scene.Repo.CurrentBranchName()))
	require.Contains(t, out.String(), "Missing remote to set upstream")
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "feature"})
}

func TestStartSetsUpstream(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	ctx, _ := initScene(t, scene)
	pushUpstreamCommit(t, scene, "upstream")

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{Name: "feature", SetUpstream: true}))

	// Trunk was refreshed before branching
	require.Equal(t, testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")), testhelpers.Must(scene.Repo.GetRevision("feature")))
	require.True(t, testhelpers.Must(scene.Repo.RemoteBranchExists("origin", "feature")))
	require.Equal(t, "origin", testhelpers.Must(scene.Repo.GetConfig("branch.feature.remote")))
}

func TestStartPicksUntrackedRemoteHead(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	ctx, _ := initScene(t, scene)

	other, err := scene.Clone("other")
	require.NoError(t, err)
	for _, name := range []string{"task-10", "task-2", "chore-1"} {
		require.NoError(t, other.CreateBranch(name))
		require.NoError(t, other.RunGitCommand("push", "origin", name))
	}

	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{Pattern: "^task-"}))
	require.Equal(t, "task-2", testhelpers.Must(scene.Repo.CurrentBranchName()))

	// A head tracked by a local branch is no longer a candidate
	require.NoError(t, scene.Repo.RunGitCommand("branch", "--set-upstream-to=origin/task-2", "task-2"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{Pattern: "^task-"}))
	require.Equal(t, "task-10", testhelpers.Must(scene.Repo.CurrentBranchName()))

	require.NoError(t, scene.Repo.CheckoutBranch("main"))
	err = actions.StartAction(ctx, actions.StartOptions{Pattern: "^feature-"})
	require.ErrorIs(t, err, trunkerrors.ErrResolution)
}

func TestStartFailures(t *testing.T) {
	t.Run("not on trunk", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)
		featureBranch(t, scene, "feature", 0)

		err := actions.StartAction(ctx, actions.StartOptions{Name: "other"})
		require.ErrorIs(t, err, trunkerrors.ErrPrecondition)
		require.ErrorContains(t, err, "currently on feature")
	})

	t.Run("branch exists", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)
		require.NoError(t, scene.Repo.CreateBranch("feature"))

		err := actions.StartAction(ctx, actions.StartOptions{Name: "feature"})
		require.ErrorIs(t, err, trunkerrors.ErrValidation)
		require.ErrorContains(t, err, "already exists")
		require.Equal(t, "main", testhelpers.Must(scene.Repo.CurrentBranchName()))
	})

	t.Run("no remote to search", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)

		err := actions.StartAction(ctx, actions.StartOptions{})
		require.ErrorIs(t, err, trunkerrors.ErrResolution)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)

		err := actions.StartAction(ctx, actions.StartOptions{Pattern: "task-("})
		require.ErrorIs(t, err, trunkerrors.ErrValidation)
	})
}
