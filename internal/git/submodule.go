package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	gogitconfig "github.com/go-git/go-git/v5/config"
)

// SubmoduleUpdateOptions contains options for `git submodule update`
type SubmoduleUpdateOptions struct {
	// Paths restricts the update to these submodules; empty means all
	Paths []string
	// Depth creates shallow clones when positive
	Depth        int
	SingleBranch bool
	Recursive    bool
}

// SubmoduleUpdate initializes and updates submodules
func (c *Client) SubmoduleUpdate(ctx context.Context, opts SubmoduleUpdateOptions) error {
	args := []string{"submodule", "update", "--init"}
	if opts.Recursive {
		args = append(args, "--recursive")
	}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.SingleBranch {
		args = append(args, "--single-branch")
	}
	if len(opts.Paths) > 0 {
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	if _, err := c.exec(ctx, execOptions{network: true}, args...); err != nil {
		return fmt.Errorf("failed to update submodules: %w", err)
	}
	return nil
}

// SubmoduleDeinit removes the working copies of submodules; empty paths means all
func (c *Client) SubmoduleDeinit(ctx context.Context, paths []string) error {
	args := []string{"submodule", "deinit", "--force"}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	} else {
		args = append(args, "--all")
	}

	if _, err := c.exec(ctx, execOptions{}, args...); err != nil {
		return fmt.Errorf("failed to deinit submodules: %w", err)
	}
	return nil
}

// SubmoduleCleanup deinitializes submodules and removes their git directories so
// the next update clones them from scratch; empty paths means all
func (c *Client) SubmoduleCleanup(ctx context.Context, paths []string) error {
	gitDirs, err := c.submoduleGitDirs(ctx, paths)
	if err != nil {
		return err
	}
	if err := c.SubmoduleDeinit(ctx, paths); err != nil {
		return err
	}
	for _, dir := range gitDirs {
		if c.logger != nil {
			c.logger.Debug("rm -rf %s", dir)
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove submodule git directory %s: %w", dir, err)
		}
	}
	return nil
}

// submoduleGitDirs resolves the git directories of the submodules under paths.
// paths are relative to the working directory, like git pathspecs.
func (c *Client) submoduleGitDirs(ctx context.Context, paths []string) ([]string, error) {
	top, err := c.ShowToplevel(ctx)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(top, ".gitmodules"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitmodules: %w", err)
	}
	modules := gogitconfig.NewModules()
	if err := modules.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("failed to parse .gitmodules: %w", err)
	}

	prefix, err := c.exec(ctx, execOptions{silent: true}, "rev-parse", "--show-prefix")
	if err != nil {
		return nil, err
	}
	selected := make([]string, 0, len(paths))
	for _, p := range paths {
		selected = append(selected, path.Clean(path.Join(prefix, filepath.ToSlash(p))))
	}

	names := make([]string, 0, len(modules.Submodules))
	for name, sub := range modules.Submodules {
		if underAny(path.Clean(sub.Path), selected) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	dirs := make([]string, 0, len(names))
	for _, name := range names {
		dir, err := c.exec(ctx, execOptions{silent: true}, "rev-parse", "--git-path", "modules/"+name)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(dir) && c.Dir() != "" {
			dir = filepath.Join(c.Dir(), dir)
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// underAny reports whether p equals or lies below one of dirs. No dirs matches everything.
func underAny(p string, dirs []string) bool {
	if len(dirs) == 0 {
		return true
	}
	for _, dir := range dirs {
		if dir == "." || p == dir || strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	return false
}
