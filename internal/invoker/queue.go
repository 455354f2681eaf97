// Package invoker stages git operations and replays them later in FIFO or LIFO order.
//
// A Command is a plain record of an operation identifier and its arguments.
// Arguments are captured when the command is staged; the operation itself only
// runs when the queue is replayed, through a single Dispatcher.
package invoker

import (
	"context"
	"fmt"
	"strings"
)

// Op identifies a staged operation
type Op string

// Command is a deferred operation
type Command struct {
	Op   Op
	Args []string
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Op)
	}
	return string(c.Op) + " " + strings.Join(c.Args, " ")
}

// Order is the replay discipline of a Queue
type Order int

const (
	// FIFO replays commands in the order they were staged
	FIFO Order = iota
	// LIFO replays the most recently staged command first
	LIFO
)

func (o Order) String() string {
	if o == LIFO {
		return "LIFO"
	}
	return "FIFO"
}

// Dispatcher runs a single command
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd Command) error
}

// DispatcherFunc adapts a function to Dispatcher
type DispatcherFunc func(ctx context.Context, cmd Command) error

// Dispatch calls f(ctx, cmd)
func (f DispatcherFunc) Dispatch(ctx context.Context, cmd Command) error {
	return f(ctx, cmd)
}

// Queue holds staged commands until they are replayed
type Queue struct {
	dispatcher Dispatcher
	commands   []Command
}

// New creates an empty queue dispatching through d
func New(d Dispatcher) *Queue {
	return &Queue{dispatcher: d}
}

// Stage appends a command. It never runs anything.
func (q *Queue) Stage(op Op, args ...string) {
	q.commands = append(q.commands, Command{Op: op, Args: append([]string(nil), args...)})
}

// Len returns the number of staged commands
func (q *Queue) Len() int {
	return len(q.commands)
}

// Commands returns the staged commands in staging order
func (q *Queue) Commands() []Command {
	return append([]Command(nil), q.commands...)
}

// Replay runs every staged command in the given order and empties the queue.
// It stops at the first failure; the commands after it are dropped, not run,
// and nothing already run is undone.
func (q *Queue) Replay(ctx context.Context, order Order) error {
	commands := q.commands
	q.commands = nil

	for i := range commands {
		cmd := commands[i]
		if order == LIFO {
			cmd = commands[len(commands)-1-i]
		}
		if err := q.dispatcher.Dispatch(ctx, cmd); err != nil {
			return fmt.Errorf("%s: %w", cmd.Op, err)
		}
	}
	return nil
}
