package testhelpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"gittrunk.dev/gittrunk/testhelpers"
)

// TestExampleUsage demonstrates how to use the testhelpers package.
func TestExampleUsage(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, scene.Dir, wd)

	testhelpers.ExpectBranches(t, scene.Repo, []string{"main"})
	require.Equal(t, "1", testhelpers.Must(scene.Repo.CommitMessage("HEAD")))
}

// TestRemoteScene checks the origin remote and second clones of a scene.
func TestRemoteScene(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
	require.Equal(t, "origin", testhelpers.Must(scene.Repo.GetConfig("branch.main.remote")))

	other, err := scene.Clone("other")
	require.NoError(t, err)
	require.NoError(t, other.CreateChangeAndCommit("2", "2"))
	require.NoError(t, other.RunGitCommand("push", "origin", "main"))

	require.Equal(t, testhelpers.Must(other.GetRevision("HEAD")), testhelpers.Must(scene.Repo.RemoteRevision("origin", "main")))
	require.NotEqual(t, testhelpers.Must(other.GetRevision("HEAD")), testhelpers.Must(scene.Repo.GetRevision("main")))
}

// TestExpectHelpers demonstrates the assertion helpers.
func TestExpectHelpers(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("f1", "f1"))
	require.NoError(t, scene.Repo.CreateChangeAndCommit("f2", "f2"))
	require.NoError(t, scene.Repo.RunGitCommand("tag", "1.0.0"))

	testhelpers.ExpectBranches(t, scene.Repo, []string{"main", "feature"})
	testhelpers.ExpectTags(t, scene.Repo, []string{"1.0.0"})
	testhelpers.ExpectCommitsAhead(t, scene.Repo, "main", "feature", 2)
	require.True(t, testhelpers.Must(scene.Repo.IsAncestor("main", "feature")))
}
