package helpers

import (
	"github.com/spf13/cobra"

	"gittrunk.dev/gittrunk/internal/engine"
)

func openEngine(cmd *cobra.Command) (*engine.Engine, bool) {
	dir, err := WorkDir(cmd)
	if err != nil {
		return nil, false
	}
	eng, err := engine.Open(dir, nil)
	if err != nil {
		return nil, false
	}
	return eng, true
}

// CompleteBranches is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that returns all local branch names in the repository.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	eng, ok := openEngine(cmd)
	if !ok {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := eng.LocalBranches()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

// CompleteRefs returns local branches and tags, e.g. for a reference to release
func CompleteRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	branches, directive := CompleteBranches(cmd, args, toComplete)
	if directive == cobra.ShellCompDirectiveError {
		return nil, directive
	}
	eng, _ := openEngine(cmd)
	tags, err := eng.Tags()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return append(branches, tags...), cobra.ShellCompDirectiveNoFileComp
}
