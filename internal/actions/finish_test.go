package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/testhelpers"
)

// pushedFeature starts feature with upstream and pushes count commits on it
func pushedFeature(t *testing.T, scene *testhelpers.Scene, ctx *runtime.Context, count int) {
	t.Helper()
	require.NoError(t, actions.StartAction(ctx, actions.StartOptions{Name: "feature", SetUpstream: true}))
	for i := 0; i < count; i++ {
		msg := "feature-" + string(rune('a'+i))
		require.NoError(t, scene.Repo.CreateChangeAndCommit(msg, msg))
	}
	require.NoError(t, scene.Repo.RunGitCommand("push", "origin", "feature"))
}

func TestFinishMergesAndCleansUp(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	ctx, out := initScene(t, scene)
	pushedFeature(t, scene, ctx, 1)
	head := testhelpers.Must(scene.Repo.GetRevision("feature"))

	require.NoError(t, actions.FinishAction(ctx, actions.FinishOptions{}))

	require.Equal(t, "main", testhelpers.Must(scene.Repo.CurrentBranchName()))
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	require.Equal(t, head, testhelpers.Must(scene.Repo.GetRevision("main")))
	require.Equal(t, head, testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")))
	require.False(t, testhelpers.Must(scene.Repo.RemoteBranchExists("origin", "feature")))
	require.Contains(t, out.String(), "[deleted]")
	require.Contains(t, out.String(), "Finished feature on main.")
}

func TestFinishWithMergeCommit(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, _ := initScene(t, scene)
	featureBranch(t, scene, "feature", 2)

	require.NoError(t, actions.FinishAction(ctx, actions.FinishOptions{Overrides: override(config.SectionFinish, config.OptFF, false)}))
	require.Equal(t, 2, testhelpers.Must(scene.Repo.ParentCount("main")))
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
}

func TestFinishReleaseBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, out := initScene(t, scene)
	trunkHead := testhelpers.Must(scene.Repo.GetRevision("main"))
	featureBranch(t, scene, "release/1.0", 1)

	require.NoError(t, actions.FinishAction(ctx, actions.FinishOptions{}))
	require.Contains(t, out.String(), "release branch")
	testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	require.Equal(t, trunkHead, testhelpers.Must(scene.Repo.GetRevision("main")))
}

func TestFinishOutOfSync(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	ctx, _ := initScene(t, scene)
	pushedFeature(t, scene, ctx, 1)
	require.NoError(t, scene.Repo.CreateChangeAndCommit("unpushed", "unpushed"))

	err := actions.FinishAction(ctx, actions.FinishOptions{})
	require.ErrorIs(t, err, trunkerrors.ErrSync)
	require.ErrorContains(t, err, "origin/feature")

	// Nothing was touched
	require.Equal(t, "feature", testhelpers.Must(scene.Repo.CurrentBranchName()))
	require.True(t, testhelpers.Must(scene.Repo.RemoteBranchExists("origin", "feature")))
}

func TestFinishTrunkOutOfSync(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	ctx, _ := initScene(t, scene)
	pushedFeature(t, scene, ctx, 1)
	pushUpstreamCommit(t, scene, "upstream")

	err := actions.FinishAction(ctx, actions.FinishOptions{})
	require.ErrorIs(t, err, trunkerrors.ErrSync)
	require.ErrorContains(t, err, "origin/main")
	require.Equal(t, "feature", testhelpers.Must(scene.Repo.CurrentBranchName()))
}

func TestFinishPreconditions(t *testing.T) {
	t.Run("on trunk", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)

		err := actions.FinishAction(ctx, actions.FinishOptions{})
		require.ErrorIs(t, err, trunkerrors.ErrPrecondition)
	})

	t.Run("no changes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)
		featureBranch(t, scene, "feature", 0)

		err := actions.FinishAction(ctx, actions.FinishOptions{})
		require.ErrorIs(t, err, trunkerrors.ErrPrecondition)
		require.ErrorContains(t, err, "no changes to be finished")
	})

	t.Run("squash required", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)
		featureBranch(t, scene, "feature", 2)
		requireSquash := override(config.SectionFinish, config.OptRequireSquash, true)

		err := actions.FinishAction(ctx, actions.FinishOptions{Overrides: requireSquash})
		require.ErrorIs(t, err, trunkerrors.ErrPrecondition)
		require.ErrorContains(t, err, "must be squashed")

		require.NoError(t, actions.SquashAction(ctx, actions.SquashOptions{}))
		require.NoError(t, actions.FinishAction(ctx, actions.FinishOptions{Overrides: requireSquash}))
		testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	})

	t.Run("detached HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		ctx, _ := initScene(t, scene)
		require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

		err := actions.FinishAction(ctx, actions.FinishOptions{})
		require.ErrorIs(t, err, trunkerrors.ErrPrecondition)
	})
}
