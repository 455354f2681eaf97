// Package runtime provides the execution context for git-trunk commands.
//
// It carries the shared dependencies every action needs: the request context,
// the repository engine and git client, the logger, and access to the
// configuration store of the root repository.
package runtime
