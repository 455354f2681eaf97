// Package engine answers questions about the repository a workflow runs in.
//
// The Engine is a read-side facade over the git client and the go-git
// repository: the active reference, tracking relationships, remote resolution,
// commit counts between references and the position of the working copy in a
// tree of nested submodules. Every query consults the live repository except
// root discovery, which is memoized per Engine.
package engine
