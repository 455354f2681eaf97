// Package testhelpers provides testing utilities for git-trunk,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	sorted := append([]string{}, expected...)
	sort.Strings(sorted)

	require.Equal(t, sorted, branches, "Branches do not match")
}

// ExpectTags asserts that the repository has exactly the expected tags.
func ExpectTags(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	tags, err := repo.GetTags()
	require.NoError(t, err, "Failed to list tags")

	sort.Strings(tags)
	sorted := append([]string{}, expected...)
	sort.Strings(sorted)

	require.Equal(t, sorted, tags, "Tags do not match")
}

// ExpectCommitsAhead asserts how many commits branch has that base does not.
func ExpectCommitsAhead(t *testing.T, repo *GitRepo, base, branch string, expected int) {
	t.Helper()

	count, err := repo.GetCommitCount(base, branch)
	require.NoError(t, err)
	require.Equal(t, expected, count, "%s should be %d commits ahead of %s", branch, expected, base)
}
