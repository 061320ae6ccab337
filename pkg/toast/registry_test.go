package toast_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studentorbit/toastkit/pkg/broadcast"
	"github.com/studentorbit/toastkit/pkg/toast"
)

func newTestRegistry(t *testing.T, opts ...toast.RegistryOption) (*toast.Registry, *broadcast.MemoryBroadcaster[toast.Event], *toast.ManualClock) {
	t.Helper()

	clock := toast.NewManualClock(epoch)
	b := broadcast.NewMemoryBroadcaster[toast.Event](64)
	base := []toast.RegistryOption{
		toast.WithCenterOptions(toast.WithClock(clock), toast.WithIDGenerator(sequentialIDs())),
		toast.WithRegistryLogger(slog.New(slog.DiscardHandler)),
	}
	r := toast.NewRegistry(b, append(base, opts...)...)
	t.Cleanup(func() {
		_ = r.Close()
		_ = b.Close()
	})
	return r, b, clock
}

func nextEvent(t *testing.T, sub broadcast.Subscriber[toast.Event]) toast.Event {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive(context.Background()):
		require.True(t, ok, "subscriber closed")
		return msg.Data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return toast.Event{}
	}
}

func TestRegistry_GetReturnsSameCenter(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	a, err := r.Get("s1")
	require.NoError(t, err)
	b, err := r.Get("s1")
	require.NoError(t, err)
	other, err := r.Get("s2")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, r.Len())

	found, ok := r.Lookup("s1")
	assert.True(t, ok)
	assert.Same(t, a, found)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len(), "lookup must not create centers")
}

func TestRegistry_PublishesSessionEvents(t *testing.T) {
	r, _, clock := newTestRegistry(t)
	ctx := context.Background()

	sub := r.Subscribe(ctx, "s1")
	defer sub.Close()
	other := r.Subscribe(ctx, "s2")
	defer other.Close()

	c, err := r.Get("s1")
	require.NoError(t, err)
	_, err = c.Success(ctx, "Added to favorites!")
	require.NoError(t, err)
	clock.Advance(3300 * time.Millisecond)

	want := []toast.EventType{
		toast.EventStylesRegistered,
		toast.EventContainerCreated,
		toast.EventToastAdded,
		toast.EventToastSteady,
		toast.EventToastDismissing,
		toast.EventToastRemoved,
		toast.EventContainerRemoved,
	}
	for _, typ := range want {
		ev := nextEvent(t, sub)
		assert.Equal(t, typ, ev.Type)
		assert.Equal(t, "s1", ev.SessionID)
	}

	select {
	case msg := <-other.Receive(ctx):
		t.Fatalf("unexpected event on other session: %v", msg.Data.Type)
	default:
	}
}

func TestRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	r, _, _ := newTestRegistry(t, toast.WithMaxSessions(2))
	ctx := context.Background()

	sub := r.Subscribe(ctx, "s1")
	defer sub.Close()

	first, err := r.Get("s1")
	require.NoError(t, err)
	_, err = first.Info(ctx, "hello")
	require.NoError(t, err)
	for range 3 {
		nextEvent(t, sub)
	}

	_, err = r.Get("s2")
	require.NoError(t, err)
	_, err = r.Get("s3")
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	_, ok := r.Lookup("s1")
	assert.False(t, ok)

	ev := nextEvent(t, sub)
	assert.Equal(t, toast.EventContainerRemoved, ev.Type)

	_, err = first.Info(ctx, "too late")
	assert.ErrorIs(t, err, toast.ErrCenterClosed)

	fresh, err := r.Get("s1")
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
}

func TestRegistry_Close(t *testing.T) {
	r, _, _ := newTestRegistry(t)

	c, err := r.Get("s1")
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = c.Info(context.Background(), "closed")
	assert.ErrorIs(t, err, toast.ErrCenterClosed)

	_, err = r.Get("s2")
	assert.ErrorIs(t, err, toast.ErrCenterClosed)
	assert.Zero(t, r.Len())
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) Subscribe(ctx context.Context, topic string) broadcast.Subscriber[toast.Event] {
	args := m.Called(ctx, topic)
	return args.Get(0).(broadcast.Subscriber[toast.Event])
}

func (m *mockBroadcaster) Broadcast(ctx context.Context, msg broadcast.Message[toast.Event]) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockBroadcaster) Close() error {
	return m.Called().Error(0)
}

func TestRegistry_PublishFailureDoesNotFailNotify(t *testing.T) {
	b := &mockBroadcaster{}
	b.On("Broadcast", mock.Anything, mock.MatchedBy(func(msg broadcast.Message[toast.Event]) bool {
		return msg.Topic == "s1" && msg.Data.SessionID == "s1"
	})).Return(errors.New("redis down"))

	r := toast.NewRegistry(b,
		toast.WithCenterOptions(toast.WithClock(toast.NewManualClock(epoch))),
		toast.WithRegistryLogger(slog.New(slog.DiscardHandler)),
	)
	defer r.Close()

	c, err := r.Get("s1")
	require.NoError(t, err)

	n, err := c.Info(context.Background(), "still shown")
	require.NoError(t, err)
	assert.Equal(t, toast.StateEntering, n.State)
	assert.Equal(t, 1, c.Len())

	b.AssertNumberOfCalls(t, "Broadcast", 3)
}

func TestRegistry_NilBroadcaster(t *testing.T) {
	r := toast.NewRegistry(nil,
		toast.WithCenterOptions(toast.WithClock(toast.NewManualClock(epoch))),
		toast.WithRegistryLogger(slog.New(slog.DiscardHandler)),
	)
	defer r.Close()

	c, err := r.Get("s1")
	require.NoError(t, err)
	_, err = c.Info(context.Background(), "local only")
	assert.NoError(t, err)

	sub := r.Subscribe(context.Background(), "s1")
	assert.Equal(t, "s1", sub.Topic())
	_, open := <-sub.Receive(context.Background())
	assert.False(t, open)
}
