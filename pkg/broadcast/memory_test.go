package broadcast

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// next waits for the next delivery on sub. ok is false once sub is closed.
func next[T any](t *testing.T, sub Subscriber[T]) (msg Message[T], ok bool) {
	t.Helper()
	select {
	case msg, ok = <-sub.Receive(context.Background()):
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("no delivery within 1s")
		return msg, false
	}
}

func requireClosed[T any](t *testing.T, sub Subscriber[T]) {
	t.Helper()
	for {
		if _, ok := next(t, sub); !ok {
			return
		}
	}
}

func TestMemoryBroadcaster_TopicIsolation(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBroadcaster[string](8)
	t.Cleanup(func() { _ = b.Close() })

	first := b.Subscribe(ctx, "session-1")
	second := b.Subscribe(ctx, "session-2")
	assert.Equal(t, "session-1", first.Topic())
	assert.Equal(t, 1, b.SubscriberCount("session-1"))

	require.NoError(t, b.Broadcast(ctx, Message[string]{Topic: "session-1", Data: "toast_added"}))

	msg, ok := next(t, first)
	require.True(t, ok)
	assert.Equal(t, Message[string]{Topic: "session-1", Data: "toast_added"}, msg)
	assert.Empty(t, second.Receive(ctx))

	require.NoError(t, b.Broadcast(ctx, Message[string]{Topic: "nobody", Data: "lost"}))
}

func TestMemoryBroadcaster_FanOutKeepsOrder(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBroadcaster[int](8)
	t.Cleanup(func() { _ = b.Close() })

	tabs := []Subscriber[int]{b.Subscribe(ctx, "s"), b.Subscribe(ctx, "s")}
	for i := range 5 {
		require.NoError(t, b.Broadcast(ctx, Message[int]{Topic: "s", Data: i}))
	}

	for _, tab := range tabs {
		for want := range 5 {
			msg, ok := next(t, tab)
			require.True(t, ok)
			assert.Equal(t, want, msg.Data)
		}
	}
}

func TestMemoryBroadcaster_SlowConsumer(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBroadcaster[int](0) // raised to one
	t.Cleanup(func() { _ = b.Close() })

	sub := b.Subscribe(ctx, "s")
	require.NoError(t, b.Broadcast(ctx, Message[int]{Topic: "s", Data: 1}))
	require.NoError(t, b.Broadcast(ctx, Message[int]{Topic: "s", Data: 2}))

	assert.Zero(t, b.SubscriberCount("s"))
	msg, ok := next(t, sub)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Data)
	requireClosed(t, sub)
}

func TestMemoryBroadcaster_Unsubscribe(t *testing.T) {
	t.Run("context cancel", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](4)
		t.Cleanup(func() { _ = b.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx, "s")
		cancel()

		require.Eventually(t, func() bool { return b.SubscriberCount("s") == 0 }, time.Second, 5*time.Millisecond)
		requireClosed(t, sub)
	})

	t.Run("subscriber close", func(t *testing.T) {
		b := NewMemoryBroadcaster[string](4)
		t.Cleanup(func() { _ = b.Close() })

		sub := b.Subscribe(context.Background(), "s")
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())
		assert.Zero(t, b.SubscriberCount("s"))
	})
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewMemoryBroadcaster[string](4)
	live := []Subscriber[string]{b.Subscribe(ctx, "a"), b.Subscribe(context.Background(), "b")}

	done := make(chan struct{})
	go func() {
		assert.NoError(t, b.Close())
		assert.NoError(t, b.Close())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close blocked on a live subscriber context")
	}

	for _, sub := range live {
		requireClosed(t, sub)
	}
	requireClosed(t, b.Subscribe(ctx, "late"))
	assert.ErrorIs(t, b.Broadcast(ctx, Message[string]{Topic: "a"}), ErrClosed)
}

func TestMemoryBroadcaster_ConcurrentBroadcastAndClose(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBroadcaster[int](100)
	_ = b.Subscribe(ctx, "s")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Broadcast(ctx, Message[int]{Topic: "s", Data: i})
		}()
	}
	require.NoError(t, b.Close())
	wg.Wait()
}

func TestSubscriber_CloseRunsReleaseOnce(t *testing.T) {
	sub := newSubscriber[string]("s", 1)
	released := 0
	sub.release = func() { released++ }

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	assert.Equal(t, 1, released)
	assert.False(t, sub.offer(Message[string]{Data: "late"}))
}
