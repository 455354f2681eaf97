package actions

import (
	"context"
	"fmt"

	"gittrunk.dev/gittrunk/internal/git"
	"gittrunk.dev/gittrunk/internal/invoker"
	"gittrunk.dev/gittrunk/internal/runtime"
	"gittrunk.dev/gittrunk/internal/tui"
	"gittrunk.dev/gittrunk/internal/tui/style"
)

// Operations that can be staged on a queue
const (
	// OpPush pushes a branch: remote, head
	OpPush invoker.Op = "push"
	// OpPushForce force pushes a branch: remote, head
	OpPushForce invoker.Op = "push-force"
	// OpPushDelete deletes a branch on a remote: remote, head
	OpPushDelete invoker.Op = "push-delete"
	// OpPushTags pushes every tag: remote
	OpPushTags invoker.Op = "push-tags"
	// OpRebase rebases the checked out branch: upstream
	OpRebase invoker.Op = "rebase"
	// OpCheckout checks out a reference: ref
	OpCheckout invoker.Op = "checkout"
	// OpStashPop restores stashed changes
	OpStashPop invoker.Op = "stash-pop"
)

var opArity = map[invoker.Op]int{
	OpPush:       2,
	OpPushForce:  2,
	OpPushDelete: 2,
	OpPushTags:   1,
	OpRebase:     1,
	OpCheckout:   1,
	OpStashPop:   0,
}

// gitDispatcher runs staged operations through the git client
type gitDispatcher struct {
	git   *git.Client
	splog *tui.Splog
}

// Dispatch runs one staged command
func (d *gitDispatcher) Dispatch(ctx context.Context, cmd invoker.Command) error {
	arity, ok := opArity[cmd.Op]
	if !ok {
		return fmt.Errorf("unknown operation %q", cmd.Op)
	}
	if len(cmd.Args) != arity {
		return fmt.Errorf("operation %s takes %d arguments, got %d", cmd.Op, arity, len(cmd.Args))
	}

	switch cmd.Op {
	case OpPush:
		return d.git.Push(ctx, git.PushOptions{Remote: cmd.Args[0], Refs: cmd.Args[1:]})
	case OpPushForce:
		return d.git.Push(ctx, git.PushOptions{Remote: cmd.Args[0], Refs: cmd.Args[1:], Force: true})
	case OpPushDelete:
		if err := d.git.Push(ctx, git.PushOptions{Remote: cmd.Args[0], Refs: cmd.Args[1:], Delete: true}); err != nil {
			return err
		}
		d.splog.Info(" - [deleted]         %s", style.ColorBranchName(cmd.Args[0]+"/"+cmd.Args[1]))
		return nil
	case OpPushTags:
		return d.git.Push(ctx, git.PushOptions{Remote: cmd.Args[0], Tags: true})
	case OpRebase:
		return d.git.Rebase(ctx, cmd.Args[0])
	case OpCheckout:
		return d.git.Checkout(ctx, cmd.Args[0])
	default:
		return d.git.StashPop(ctx)
	}
}

// NewQueue creates a queue whose commands run through the context's git client
func NewQueue(ctx *runtime.Context) *invoker.Queue {
	return invoker.New(&gitDispatcher{git: ctx.Git, splog: ctx.Splog})
}
