// Package git provides low-level Git operations.
//
// Mutating operations run the git binary through Client, which logs every call:
//   - Branch management (checkout, create, delete, stash)
//   - History operations (merge, rebase, soft reset, amend, tag)
//   - Remote operations (fetch, push, pull --rebase)
//   - Submodule update and deinit
//
// Read-side introspection (HEAD, refs, tracking branches) and the transactional
// config session use go-git through Repository.
//
// This package should be the only place where direct git commands are executed.
package git
