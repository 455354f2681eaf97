package actions_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gittrunk.dev/gittrunk/internal/actions"
	"gittrunk.dev/gittrunk/internal/config"
	trunkerrors "gittrunk.dev/gittrunk/internal/errors"
	"gittrunk.dev/gittrunk/testhelpers"
)

func TestInitWritesDefaults(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, out := newContext(t, scene.Dir)

	require.NoError(t, actions.InitAction(ctx, actions.InitOptions{Interactive: true}))
	require.Contains(t, out.String(), "Initialized git-trunk configuration for repository")

	require.Equal(t, "master", testhelpers.Must(scene.Repo.GetConfig("trunk.trunkbranch")))
	require.Equal(t, "true", testhelpers.Must(scene.Repo.GetConfig("trunk.finish.ff")))
	require.Equal(t, "0", testhelpers.Must(scene.Repo.GetConfig("trunk.submodule-update.depth")))
}

func TestInitKeepsPersistedValues(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, _ := newContext(t, scene.Dir)

	require.NoError(t, actions.InitAction(ctx, actions.InitOptions{Values: override(config.SectionTrunk, config.OptTrunkBranch, "develop")}))
	require.NoError(t, actions.InitAction(ctx, actions.InitOptions{Values: override(config.SectionFinish, config.OptFF, false)}))

	require.Equal(t, "develop", testhelpers.Must(scene.Repo.GetConfig("trunk.trunkbranch")))
	require.Equal(t, "false", testhelpers.Must(scene.Repo.GetConfig("trunk.finish.ff")))

	require.NoError(t, actions.InitAction(ctx, actions.InitOptions{Values: override(config.SectionTrunk, config.OptTrunkBranch, "main")}))
	require.Equal(t, "main", testhelpers.Must(scene.Repo.GetConfig("trunk.trunkbranch")))
	require.Equal(t, "false", testhelpers.Must(scene.Repo.GetConfig("trunk.finish.ff")))
}

func TestInitInSubmodule(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	lib, err := scene.NewSiblingRepo("lib")
	require.NoError(t, err)
	require.NoError(t, lib.CreateChangeAndCommit("lib", "lib"))
	require.NoError(t, scene.Repo.AddSubmodule(lib.Dir, "libs/lib"))

	ctx, out := newContext(t, filepath.Join(scene.Dir, "libs", "lib"))
	require.NoError(t, actions.InitAction(ctx, actions.InitOptions{Values: override(config.SectionTrunk, config.OptTrunkBranch, "main")}))
	require.Contains(t, out.String(), "submodule libs/lib")

	require.Equal(t, "main", testhelpers.Must(scene.Repo.GetConfig("trunk.libs/lib.trunkbranch")))
	require.Equal(t, "release/", testhelpers.Must(scene.Repo.GetConfig("trunk.libs/lib.release.releasebranchprefix")))
	_, err = scene.Repo.GetConfig("trunk.trunkbranch")
	require.Error(t, err)
}

func TestWorkflowWithoutConfiguration(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	ctx, _ := newContext(t, scene.Dir)

	err := actions.RefreshAction(ctx, actions.RefreshOptions{})
	require.ErrorIs(t, err, trunkerrors.ErrConfiguration)

	require.NoError(t, scene.Repo.SetConfig("trunk.trunkbranch", ""))
	err = actions.RefreshAction(ctx, actions.RefreshOptions{})
	require.ErrorIs(t, err, trunkerrors.ErrConfiguration)
	require.ErrorContains(t, err, "trunk branch is empty")
}
