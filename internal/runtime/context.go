package runtime

import (
	"context"

	"gittrunk.dev/gittrunk/internal/config"
	"gittrunk.dev/gittrunk/internal/engine"
	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/tui"
)

// Context provides access to engine and output for commands
type Context struct {
	Context  context.Context
	Engine   *engine.Engine
	Git      *git.Client
	Splog    *tui.Splog
	RepoRoot string
}

// NewContext opens the repository containing dir. Every git call made through
// the context is logged by splog at debug level.
func NewContext(ctx context.Context, dir string, splog *tui.Splog) (*Context, error) {
	if splog == nil {
		splog = tui.NewSplog()
	}
	eng, err := engine.Open(dir, splog)
	if err != nil {
		return nil, err
	}
	return &Context{
		Context:  ctx,
		Engine:   eng,
		Git:      eng.Git(),
		Splog:    splog,
		RepoRoot: eng.Dir(),
	}, nil
}

// ConfigStore creates a configuration store in the root repository. Inside a
// submodule the store is scoped to the submodule path.
func (c *Context) ConfigStore(opts ...config.StoreOption) (*config.Store, error) {
	root, err := c.Engine.RootDir(c.Context)
	if err != nil {
		return nil, err
	}
	rel, err := c.Engine.RelativePathFromRoot(c.Context)
	if err != nil {
		return nil, err
	}

	session := c.Engine.Repository()
	if root != c.RepoRoot {
		session, err = git.OpenRepository(root)
		if err != nil {
			return nil, err
		}
	}
	return config.NewStore(session, append([]config.StoreOption{config.WithPath(rel)}, opts...)...), nil
}
