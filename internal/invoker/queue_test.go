package invoker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gittrunk.dev/gittrunk/internal/invoker"
)

type recorder struct {
	ran    []string
	failOn invoker.Op
}

func (r *recorder) Dispatch(_ context.Context, cmd invoker.Command) error {
	r.ran = append(r.ran, cmd.String())
	if cmd.Op == r.failOn {
		return errors.New("boom")
	}
	return nil
}

func TestQueueReplayOrder(t *testing.T) {
	tests := []struct {
		name  string
		order invoker.Order
		want  []string
	}{
		{name: "fifo", order: invoker.FIFO, want: []string{"stash-pop", "rebase main", "checkout feature"}},
		{name: "lifo", order: invoker.LIFO, want: []string{"checkout feature", "rebase main", "stash-pop"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			q := invoker.New(rec)
			q.Stage("stash-pop")
			q.Stage("rebase", "main")
			q.Stage("checkout", "feature")

			require.Empty(t, rec.ran, "staging must not run anything")
			require.Equal(t, 3, q.Len())

			require.NoError(t, q.Replay(context.Background(), tt.order))
			require.Equal(t, tt.want, rec.ran)
			require.Zero(t, q.Len())
		})
	}
}

func TestQueueStopsOnFirstFailure(t *testing.T) {
	rec := &recorder{failOn: "delete"}
	q := invoker.New(rec)
	q.Stage("push", "origin", "main")
	q.Stage("delete", "origin", "feature")
	q.Stage("push-tags", "origin")

	err := q.Replay(context.Background(), invoker.FIFO)
	require.Error(t, err)
	require.Contains(t, err.Error(), "delete")
	require.Equal(t, []string{"push origin main", "delete origin feature"}, rec.ran)
	require.Zero(t, q.Len(), "queue is drained even after a failure")
}

func TestQueueCapturesArgumentsAtStaging(t *testing.T) {
	rec := &recorder{}
	q := invoker.New(rec)
	args := []string{"origin", "main"}
	q.Stage("push", args...)
	args[1] = "changed"

	require.NoError(t, q.Replay(context.Background(), invoker.FIFO))
	require.Equal(t, []string{"push origin main"}, rec.ran)
}

func TestDispatcherFunc(t *testing.T) {
	var got invoker.Command
	q := invoker.New(invoker.DispatcherFunc(func(_ context.Context, cmd invoker.Command) error {
		got = cmd
		return nil
	}))
	q.Stage("checkout", "main")
	require.Equal(t, []invoker.Command{{Op: "checkout", Args: []string{"main"}}}, q.Commands())

	require.NoError(t, q.Replay(context.Background(), invoker.LIFO))
	require.Equal(t, invoker.Command{Op: "checkout", Args: []string{"main"}}, got)

	require.NoError(t, q.Replay(context.Background(), invoker.FIFO), "replaying an empty queue is a no-op")
}
