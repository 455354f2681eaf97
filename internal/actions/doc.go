// Package actions implements the git-trunk workflow commands.
//
// Each action corresponds to a git-trunk command (init, start, finish, release,
// refresh, squash, submodule-update) and follows the same shape:
//   - load the configuration sections it needs from the root repository
//   - run every precondition check before touching the repository
//   - run the body, mutating the repository directly or staging follow-up git
//     operations on an invoker.Queue
//   - replay the queue
//
// Actions accept a runtime.Context which provides the Engine, git client,
// Splog and configuration store.
package actions
